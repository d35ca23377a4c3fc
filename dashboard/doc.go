// Package dashboard is a minimal client for the three Meraki Dashboard API v1
// endpoints this tool needs: listing an organization's networks, listing the
// clients seen on a network, and provisioning client names on a network.
//
// Every request is a single attempt. Failures come back as *APIError, which
// records whether the failure would be safe to retry; nothing here retries.
package dashboard
