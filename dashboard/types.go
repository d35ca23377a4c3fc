package dashboard

// Network as returned by GET /organizations/{organizationId}/networks.
type Network struct {
	ID                      string   `json:"id"`
	OrganizationID          string   `json:"organizationId"`
	Name                    string   `json:"name"`
	ProductTypes            []string `json:"productTypes"`
	TimeZone                string   `json:"timeZone"`
	Tags                    []string `json:"tags"`
	EnrollmentString        string   `json:"enrollmentString"`
	URL                     string   `json:"url"`
	Notes                   string   `json:"notes"`
	IsBoundToConfigTemplate bool     `json:"isBoundToConfigTemplate"`
}

// HasTag reports whether tag is one of the network's tags. Null tags hold nothing.
func (n Network) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NetworkClient as returned by GET /networks/{networkId}/clients.
// Description is the client's display name; null decodes to "".
type NetworkClient struct {
	ID                 string `json:"id"`
	MAC                string `json:"mac"`
	Description        string `json:"description"`
	IP                 string `json:"ip"`
	IP6                string `json:"ip6"`
	User               string `json:"user"`
	Manufacturer       string `json:"manufacturer"`
	OS                 string `json:"os"`
	SSID               string `json:"ssid"`
	Status             string `json:"status"`
	RecentDeviceName   string `json:"recentDeviceName"`
	RecentDeviceSerial string `json:"recentDeviceSerial"`
}

// ProvisionClient is one {mac, name} pair of a provisioning request.
type ProvisionClient struct {
	MAC  string `json:"mac"`
	Name string `json:"name"`
}

// Body of POST /networks/{networkId}/clients/provision.
type ProvisionRequest struct {
	Clients      []ProvisionClient `json:"clients"`
	DevicePolicy string            `json:"devicePolicy"`
}

type ProvisionedClient struct {
	ClientID string `json:"clientId"`
	MAC      string `json:"mac"`
	Name     string `json:"name"`
	Message  string `json:"message"`
}

type ProvisionResponse struct {
	Clients      []ProvisionedClient `json:"clients"`
	DevicePolicy string              `json:"devicePolicy"`
}
