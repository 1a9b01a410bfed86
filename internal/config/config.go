// Package config provides configuration types for the Threat Hunter bridge.
//
// Configuration is read once at startup into an explicit struct that is passed
// by reference into the components that need it. There is no ambient global
// lookup after boot. Missing Wazuh credentials are deliberately not a boot
// error: the process must start and let each authentication attempt fail
// cleanly instead.
package config

import (
	"net"
	"time"
)

// Config is the top-level configuration for the Threat Hunter bridge.
type Config struct {
	// API configures the upstream Wazuh REST API connection.
	API APIConfig `yaml:"api" mapstructure:"api"`

	// Server configures the local process (logging).
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Metrics configures the optional Prometheus listener.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// APIConfig configures the Wazuh manager API endpoint and credentials.
type APIConfig struct {
	// Host is the Wazuh manager hostname or IP address.
	// Optional at boot: when empty, authentication fails per call instead.
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the Wazuh API port. Defaults to "55000" if empty.
	Port string `yaml:"port" mapstructure:"port" validate:"omitempty,numeric"`

	// Username and Password are the basic-auth credentials exchanged for a
	// bearer token. Optional at boot for the same reason as Host.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// Timeout bounds every upstream call, authentication and queries alike
	// (e.g. "5s"). Defaults to "5s" if empty.
	Timeout string `yaml:"timeout" mapstructure:"timeout" validate:"omitempty"`

	// InsecureSkipVerify disables TLS certificate validation for the upstream.
	// Off by default; opt in only for lab deployments where the Wazuh manager
	// serves a self-signed certificate.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`
}

// ServerConfig configures the local process.
type ServerConfig struct {
	// LogLevel sets the minimum log level.
	// Valid values: "debug", "info", "warn", "error".
	// Defaults to "info" if empty.
	LogLevel string `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
}

// MetricsConfig configures the optional Prometheus metrics listener.
// When Addr is empty (the default) no listener is started and the process
// surface is exactly the stdio MCP serve loop.
type MetricsConfig struct {
	// Addr is the address to serve /metrics and /healthz on
	// (e.g. "127.0.0.1:9090").
	Addr string `yaml:"addr" mapstructure:"addr" validate:"omitempty,hostname_port"`
}

// SetDefaults applies sensible default values to the configuration.
func (c *Config) SetDefaults() {
	if c.API.Port == "" {
		c.API.Port = "55000"
	}
	if c.API.Timeout == "" {
		c.API.Timeout = "5s"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
}

// BaseURL returns the Wazuh API base URL, e.g. "https://siem.internal:55000".
func (a APIConfig) BaseURL() string {
	return "https://" + net.JoinHostPort(a.Host, a.Port)
}

// HasCredentials reports whether enough of the credential set is present to
// attempt authentication at all.
func (a APIConfig) HasCredentials() bool {
	return a.Host != "" && a.Username != "" && a.Password != ""
}

// RequestTimeout parses Timeout, falling back to 5 seconds on bad input.
func (a APIConfig) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(a.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}
