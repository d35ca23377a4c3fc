package clientnames

import (
	"github.com/twitter/copyclientnames/dashboard"
)

// Pair is a destination client and the source client that names it.
type Pair struct {
	Source      dashboard.NetworkClient
	Destination dashboard.NetworkClient
}

// Request is the provisioning call the pair produces.
func (p Pair) Request() dashboard.ProvisionClient {
	return dashboard.ProvisionClient{MAC: p.Source.MAC, Name: p.Source.Description}
}

// FindByMAC returns the first client whose MAC equals mac exactly.
func FindByMAC(clients []dashboard.NetworkClient, mac string) (dashboard.NetworkClient, bool) {
	for _, c := range clients {
		if c.MAC == mac {
			return c, true
		}
	}
	return dashboard.NetworkClient{}, false
}

// Match pairs every destination client with the first source client sharing
// its MAC, in destination order. Unpaired destination clients are dropped.
func Match(src, dst []dashboard.NetworkClient) []Pair {
	var pairs []Pair
	for _, d := range dst {
		if s, ok := FindByMAC(src, d.MAC); ok {
			pairs = append(pairs, Pair{Source: s, Destination: d})
		}
	}
	return pairs
}
