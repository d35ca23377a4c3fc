package config

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/twitter/copyclientnames/clientnames"
	"github.com/twitter/copyclientnames/common"
	"github.com/twitter/copyclientnames/dashboard"
)

// The dashboard rejects client listings over a longer window.
const MaxClientTimespan = common.DefaultClientTimespan

type Config struct {
	BaseURL        string        `yaml:"base_url"`
	SourceTag      string        `yaml:"src_tag"`
	DestinationTag string        `yaml:"dst_tag"`
	Timespan       time.Duration `yaml:"timespan"`
	PerPage        int           `yaml:"per_page"`
	DevicePolicy   string        `yaml:"device_policy"`
	Timeout        time.Duration `yaml:"timeout"`
	HttpTries      int           `yaml:"http_tries"`
	LogDir         string        `yaml:"log_dir"`
	LogLevel       string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		BaseURL:        common.DefaultBaseURL,
		SourceTag:      common.DefaultSourceTag,
		DestinationTag: common.DefaultDestinationTag,
		Timespan:       common.DefaultClientTimespan,
		PerPage:        common.DefaultClientsPerPage,
		DevicePolicy:   common.DefaultDevicePolicy,
		Timeout:        common.DefaultClientTimeout,
		HttpTries:      common.DefaultHttpTries,
		LogLevel:       common.DefaultLogLevel,
	}
}

// Load overlays the YAML file at path on Default(). An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := cfg.parse(data); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// parse decodes data over cfg, rejecting unknown keys. Empty input is allowed.
func (c *Config) parse(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	if c.SourceTag == "" || c.DestinationTag == "" {
		return fmt.Errorf("src_tag and dst_tag must be set")
	}
	if c.SourceTag == c.DestinationTag {
		return fmt.Errorf("src_tag and dst_tag must differ, both are %q", c.SourceTag)
	}
	if c.Timespan <= 0 || c.Timespan > MaxClientTimespan {
		return fmt.Errorf("timespan must be in (0, %s], got %s", MaxClientTimespan, c.Timespan)
	}
	if c.PerPage <= 0 {
		return fmt.Errorf("per_page must be positive, got %d", c.PerPage)
	}
	if c.DevicePolicy == "" {
		return fmt.Errorf("device_policy must be set")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) DashboardConfig(apiKey string) dashboard.Config {
	return dashboard.Config{
		BaseURL: c.BaseURL,
		APIKey:  apiKey,
		Timeout: c.Timeout,
		Tries:   c.HttpTries,
	}
}

func (c Config) CopyConfig(dryRun bool) clientnames.CopyConfig {
	return clientnames.CopyConfig{
		SourceTag:      c.SourceTag,
		DestinationTag: c.DestinationTag,
		Timespan:       c.Timespan,
		PerPage:        c.PerPage,
		DevicePolicy:   c.DevicePolicy,
		DryRun:         dryRun,
	}
}
