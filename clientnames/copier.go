package clientnames

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/twitter/copyclientnames/common"
	clog "github.com/twitter/copyclientnames/common/log"
	"github.com/twitter/copyclientnames/common/stats"
	"github.com/twitter/copyclientnames/dashboard"
)

type CopyConfig struct {
	SourceTag      string
	DestinationTag string
	// Trailing window of client activity to fetch.
	Timespan time.Duration
	PerPage  int
	// Device policy sent with every provisioning call.
	DevicePolicy string
	// Log the provisioning calls instead of sending them.
	DryRun bool
}

// DefaultCopyConfig returns the tags, window and policy the tool runs with by default.
func DefaultCopyConfig() CopyConfig {
	return CopyConfig{
		SourceTag:      common.DefaultSourceTag,
		DestinationTag: common.DefaultDestinationTag,
		Timespan:       common.DefaultClientTimespan,
		PerPage:        common.DefaultClientsPerPage,
		DevicePolicy:   common.DefaultDevicePolicy,
	}
}

// Result describes what one run found and did.
type Result struct {
	Selection
	SourceClients      int
	DestinationClients int
	// Provisioning calls made, in order. In a dry run, the calls that would have been made.
	Requests []dashboard.ProvisionClient
}

// Copier runs the select, fetch, match and provision steps once per Run call.
// It keeps nothing between runs.
type Copier struct {
	api  API
	cfg  CopyConfig
	log  *logrus.Entry
	stat stats.StatsReceiver
}

func NewCopier(api API, cfg CopyConfig, log *logrus.Entry, stat stats.StatsReceiver) *Copier {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &Copier{api: api, cfg: cfg, log: log, stat: stat.Scope("copy")}
}

// Run copies names for the organization's tagged networks. The first API
// error stops the run and is returned along with what was done so far.
func (c *Copier) Run(ctx context.Context, orgID string) (*Result, error) {
	res := &Result{}

	networks, err := c.api.ListNetworks(ctx, orgID)
	if err != nil {
		return res, err
	}
	c.stat.Gauge(stats.CopyNetworksListedGauge).Update(int64(len(networks)))
	c.log.Debugf("Listed %d networks in org %s", len(networks), orgID)

	res.Selection = SelectNetworks(networks, c.cfg.SourceTag, c.cfg.DestinationTag, c.named("selector"))

	src, err := c.fetch(ctx, res.Source, "source")
	if err != nil {
		return res, err
	}
	res.SourceClients = len(src)
	c.stat.Gauge(stats.CopySourceClientsGauge).Update(int64(len(src)))

	dst, err := c.fetch(ctx, res.Destination, "dest")
	if err != nil {
		return res, err
	}
	res.DestinationClients = len(dst)
	c.stat.Gauge(stats.CopyDestinationClientsGauge).Update(int64(len(dst)))

	err = c.provision(ctx, res, src, dst)
	return res, err
}

// fetch returns the clients of n, or nothing when no network holds the role.
func (c *Copier) fetch(ctx context.Context, n *dashboard.Network, role string) ([]dashboard.NetworkClient, error) {
	log := c.named("fetcher")
	if n == nil {
		log.Infof("No %s network tagged, using an empty client list", role)
		return nil, nil
	}
	clients, err := c.api.ListClients(ctx, n.ID, c.cfg.Timespan, c.cfg.PerPage)
	if err != nil {
		return nil, err
	}
	log.Infof("Fetched %d clients from %s network %s", len(clients), role, n.Name)
	return clients, nil
}

// provision walks the destination clients in order and names each one after
// the first source client with the same MAC, one call per client.
func (c *Copier) provision(ctx context.Context, res *Result, src, dst []dashboard.NetworkClient) error {
	log := c.named("provisioner")
	for _, d := range dst {
		log.Infof("Current Client: %s, %s", d.MAC, d.Description)
		s, ok := FindByMAC(src, d.MAC)
		if !ok {
			c.stat.Counter(stats.CopyUnmatchedCounter).Inc(1)
			continue
		}
		c.stat.Counter(stats.CopyMatchedCounter).Inc(1)
		req := Pair{Source: s, Destination: d}.Request()
		if c.cfg.DryRun {
			log.Infof("Dry run, would name %s %q on network %s", req.MAC, req.Name, res.Destination.Name)
			res.Requests = append(res.Requests, req)
			continue
		}
		if _, err := c.api.ProvisionClients(ctx, res.Destination.ID, []dashboard.ProvisionClient{req}, c.cfg.DevicePolicy); err != nil {
			return err
		}
		res.Requests = append(res.Requests, req)
		c.stat.Counter(stats.CopyProvisionedCounter).Inc(1)
		log.Debugf("Named %s %q on network %s", req.MAC, req.Name, res.Destination.Name)
	}
	return nil
}

func (c *Copier) named(name string) *logrus.Entry {
	return c.log.WithField(clog.NameKey, name)
}
