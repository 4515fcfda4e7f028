package config

import (
	"fmt"
	"strings"
)

// Config is the optional stackdns configuration file. Everything in it can
// also be supplied on the command line; CLI arguments win over file values.
type Config struct {
	API  APIConfig  `yaml:"api"`
	Sync SyncConfig `yaml:"sync,omitempty"`
}

// APIConfig holds the ClouDNS API settings.
type APIConfig struct {
	// BaseURL overrides the production API endpoint, mainly for testing.
	BaseURL string `yaml:"base_url,omitempty"`
	// AuthUser is the ClouDNS API sub-user.
	AuthUser string `yaml:"auth_user,omitempty"`
	// PasswordParameter is the parameter-store name of the API password.
	PasswordParameter string `yaml:"password_parameter,omitempty"`
}

// SyncConfig holds per-run sync defaults.
type SyncConfig struct {
	// TTL applied to created and updated records, as a string because the
	// provider stores and echoes it that way.
	TTL string `yaml:"ttl,omitempty"`
	// Stacks restricts the pass to exports owned by these stacks (short
	// names or full ARNs). Empty means every export is scanned.
	Stacks []string `yaml:"stacks,omitempty"`
	// Region selects the AWS region for CloudFormation and SSM.
	Region string `yaml:"region,omitempty"`
}

// Validate performs validation on the Config struct
func (c *Config) Validate() error {
	if c.API.BaseURL != "" &&
		!strings.HasPrefix(c.API.BaseURL, "http://") &&
		!strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must start with http:// or https://, got %q", c.API.BaseURL)
	}
	return nil
}
