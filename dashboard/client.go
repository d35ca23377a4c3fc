package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sethgrid/pester"
	"github.com/sirupsen/logrus"

	"github.com/twitter/copyclientnames/common"
	"github.com/twitter/copyclientnames/common/stats"
)

const userAgent = "copy-client-names/1.0"

// Doer sends one HTTP request. *pester.Client and *http.Client both satisfy it.
type Doer interface {
	Do(req *http.Request) (resp *http.Response, err error)
}

type Config struct {
	// API root, e.g. https://api.meraki.com/api/v1
	BaseURL string
	APIKey  string
	// Per request timeout. Zero means common.DefaultClientTimeout.
	Timeout time.Duration
	// Attempts per request. 0 and 1 both mean a single attempt.
	Tries int
}

func MakePesterClient(cfg Config, log *logrus.Entry) *pester.Client {
	client := pester.New()
	client.Backoff = pester.ExponentialBackoff
	client.MaxRetries = cfg.Tries
	if client.MaxRetries < 1 {
		client.MaxRetries = common.DefaultHttpTries
	}
	client.Timeout = cfg.Timeout
	if client.Timeout <= 0 {
		client.Timeout = common.DefaultClientTimeout
	}
	client.LogHook = func(e pester.ErrEntry) {
		log.Warnf("Request attempt failed: %s %s: %v", e.Verb, e.URL, e.Err)
	}
	return client
}

type Client struct {
	base   *url.URL
	apiKey string
	http   Doer
	log    *logrus.Entry
	stat   stats.StatsReceiver
}

// NewClient returns a Client sending requests through a pester client built from cfg.
func NewClient(cfg Config, log *logrus.Entry, stat stats.StatsReceiver) (*Client, error) {
	return NewCustomClient(cfg, MakePesterClient(cfg, log), log, stat)
}

func NewCustomClient(cfg Config, doer Doer, log *logrus.Entry, stat stats.StatsReceiver) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = common.DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, errors.Wrapf(err, "parsing base url %q", cfg.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &Client{
		base:   base,
		apiKey: cfg.APIKey,
		http:   doer,
		log:    log,
		stat:   stat.Scope("dashboard"),
	}, nil
}

// ListNetworks returns every network of the organization, in listing order.
func (c *Client) ListNetworks(ctx context.Context, orgID string) ([]Network, error) {
	u := c.endpoint(fmt.Sprintf("organizations/%s/networks", orgID), nil)
	var networks []Network
	err := c.getAll(ctx, u, func(body []byte) error {
		var page []Network
		if err := json.Unmarshal(body, &page); err != nil {
			return err
		}
		networks = append(networks, page...)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "listing networks for org %s", orgID)
	}
	c.dump("networks", networks)
	return networks, nil
}

// ListClients returns every client seen on the network within the trailing
// timespan, following pagination perPage records at a time.
func (c *Client) ListClients(ctx context.Context, networkID string, timespan time.Duration, perPage int) ([]NetworkClient, error) {
	q := url.Values{}
	q.Set("timespan", strconv.FormatInt(int64(timespan/time.Second), 10))
	if perPage > 0 {
		q.Set("perPage", strconv.Itoa(perPage))
	}
	u := c.endpoint(fmt.Sprintf("networks/%s/clients", networkID), q)
	var clients []NetworkClient
	err := c.getAll(ctx, u, func(body []byte) error {
		var page []NetworkClient
		if err := json.Unmarshal(body, &page); err != nil {
			return err
		}
		clients = append(clients, page...)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "listing clients for network %s", networkID)
	}
	c.dump("clients", clients)
	return clients, nil
}

// ProvisionClients assigns names to clients of the network under the given device policy.
func (c *Client) ProvisionClients(ctx context.Context, networkID string, clients []ProvisionClient, devicePolicy string) (*ProvisionResponse, error) {
	u := c.endpoint(fmt.Sprintf("networks/%s/clients/provision", networkID), nil)
	reqBody, err := json.Marshal(ProvisionRequest{Clients: clients, DevicePolicy: devicePolicy})
	if err != nil {
		return nil, err
	}
	body, _, err := c.do(ctx, http.MethodPost, u, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "provisioning %d client(s) on network %s", len(clients), networkID)
	}
	resp := &ProvisionResponse{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, resp); err != nil {
			return nil, errors.Wrapf(err, "decoding provision response for network %s", networkID)
		}
	}
	c.dump("provision response", resp)
	return resp, nil
}

func (c *Client) endpoint(path string, q url.Values) *url.URL {
	u := c.base.ResolveReference(&url.URL{Path: path})
	if q != nil {
		u.RawQuery = q.Encode()
	}
	return u
}

// getAll GETs u and every page linked from it by rel=next, handing each body to onPage.
func (c *Client) getAll(ctx context.Context, u *url.URL, onPage func([]byte) error) error {
	for page := 1; u != nil; page++ {
		body, header, err := c.do(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		if err := onPage(body); err != nil {
			return errors.Wrapf(err, "decoding page %d of %s", page, u.Path)
		}
		next, ok := nextLink(u, header["Link"])
		if !ok {
			break
		}
		c.log.Debugf("Following page %d of %s", page+1, u.Path)
		u = next
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, u *url.URL, reqBody []byte) ([]byte, http.Header, error) {
	var rdr io.Reader
	if reqBody != nil {
		rdr = bytes.NewReader(reqBody)
	}
	req, err := http.NewRequest(method, u.String(), rdr)
	if err != nil {
		return nil, nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.stat.Counter(stats.DashboardRequestCounter).Inc(1)
	defer c.stat.Precision(time.Millisecond).Latency(stats.DashboardRequestLatency_ms).Time().Stop()

	c.log.Debugf("%s %s", method, u.RequestURI())
	resp, err := c.http.Do(req)
	if err != nil {
		c.stat.Counter(stats.DashboardRequestErrCounter).Inc(1)
		return nil, nil, &APIError{Method: method, Path: u.Path, Err: err}
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.stat.Counter(stats.DashboardRequestErrCounter).Inc(1)
		return nil, nil, &APIError{Method: method, Path: u.Path, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.stat.Counter(stats.DashboardRequestErrCounter).Inc(1)
		apiErr := &APIError{Method: method, Path: u.Path, StatusCode: resp.StatusCode, Status: resp.Status}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Errors = eb.Errors
		}
		c.log.Debugf("%s %s response status error: %s", method, u.Path, resp.Status)
		return nil, nil, apiErr
	}
	return body, resp.Header, nil
}

func (c *Client) dump(what string, v interface{}) {
	if c.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		c.log.Debugf("Decoded %s:\n%s", what, spew.Sdump(v))
	}
}
