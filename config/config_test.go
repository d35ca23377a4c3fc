package config

import (
	"io/ioutil"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/twitter/copyclientnames/clientnames"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := ioutil.WriteFile(path, []byte(text), 0600); err != nil {
		t.Fatalf("Couldn't write config: %v", err)
	}
	return path
}

func TestDefaultMatchesCopyDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}
	if got := cfg.CopyConfig(false); !reflect.DeepEqual(got, clientnames.DefaultCopyConfig()) {
		t.Fatalf("Expected %+v, got %+v", clientnames.DefaultCopyConfig(), got)
	}
	if cfg.Timespan != 2678400*time.Second {
		t.Fatalf("Expected a 2678400s window, got %s", cfg.Timespan)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
src_tag: from_here
timespan: 24h
per_page: 200
http_tries: 3
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error loading config: %v", err)
	}
	want := Default()
	want.SourceTag = "from_here"
	want.Timespan = 24 * time.Hour
	want.PerPage = 200
	want.HttpTries = 3
	want.LogLevel = "debug"
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("Expected %+v, got %+v", want, cfg)
	}
	if d := cfg.DashboardConfig("key"); d.APIKey != "key" || d.Tries != 3 || d.BaseURL != want.BaseURL {
		t.Fatalf("Unexpected dashboard config %+v", d)
	}
}

func TestLoadEmptyFileAndPath(t *testing.T) {
	for _, path := range []string{"", writeConfig(t, "")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Unexpected error loading %q: %v", path, err)
		}
		if !reflect.DeepEqual(cfg, Default()) {
			t.Fatalf("Expected defaults for %q, got %+v", path, cfg)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if _, err := Load(writeConfig(t, "api_key: secret\n")); err == nil || !strings.Contains(err.Error(), "api_key") {
		t.Fatalf("Expected unknown keys to be rejected, got %v", err)
	}
	if _, err := Load(writeConfig(t, "per_page: lots\n")); err == nil {
		t.Fatal("Expected a type error")
	}
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"same tags":     func(c *Config) { c.DestinationTag = c.SourceTag },
		"empty tag":     func(c *Config) { c.SourceTag = "" },
		"zero timespan": func(c *Config) { c.Timespan = 0 },
		"long timespan": func(c *Config) { c.Timespan = 32 * 24 * time.Hour },
		"zero per page": func(c *Config) { c.PerPage = 0 },
		"no policy":     func(c *Config) { c.DevicePolicy = "" },
		"bad log level": func(c *Config) { c.LogLevel = "loud" },
	} {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}
