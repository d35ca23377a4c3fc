package clientnames

import (
	"context"
	"time"

	"github.com/twitter/copyclientnames/dashboard"
)

//go:generate mockgen -destination=mock_clientnames/api_mock.go -package=mock_clientnames github.com/twitter/copyclientnames/clientnames API

// API is the part of the dashboard a copy run talks to. *dashboard.Client implements it.
type API interface {
	ListNetworks(ctx context.Context, orgID string) ([]dashboard.Network, error)
	ListClients(ctx context.Context, networkID string, timespan time.Duration, perPage int) ([]dashboard.NetworkClient, error)
	ProvisionClients(ctx context.Context, networkID string, clients []dashboard.ProvisionClient, devicePolicy string) (*dashboard.ProvisionResponse, error)
}

var _ API = (*dashboard.Client)(nil)
