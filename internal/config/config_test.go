package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.SetDefaults()

	if cfg.API.Port != "55000" {
		t.Errorf("API.Port = %q, want %q", cfg.API.Port, "55000")
	}
	if cfg.API.Timeout != "5s" {
		t.Errorf("API.Timeout = %q, want %q", cfg.API.Timeout, "5s")
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("Server.LogLevel = %q, want %q", cfg.Server.LogLevel, "info")
	}
	if cfg.Metrics.Addr != "" {
		t.Errorf("Metrics.Addr = %q, want empty (disabled by default)", cfg.Metrics.Addr)
	}
}

func TestConfig_SetDefaults_PreservesExistingValues(t *testing.T) {
	t.Parallel()

	cfg := Config{
		API: APIConfig{
			Port:    "8443",
			Timeout: "10s",
		},
		Server: ServerConfig{
			LogLevel: "debug",
		},
	}
	cfg.SetDefaults()

	if cfg.API.Port != "8443" {
		t.Errorf("API.Port was overwritten: got %q, want %q", cfg.API.Port, "8443")
	}
	if cfg.API.Timeout != "10s" {
		t.Errorf("API.Timeout was overwritten: got %q, want %q", cfg.API.Timeout, "10s")
	}
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("Server.LogLevel was overwritten: got %q, want %q", cfg.Server.LogLevel, "debug")
	}
}

func TestAPIConfig_BaseURL(t *testing.T) {
	t.Parallel()

	a := APIConfig{Host: "siem.internal", Port: "55000"}
	if got, want := a.BaseURL(), "https://siem.internal:55000"; got != want {
		t.Errorf("BaseURL() = %q, want %q", got, want)
	}
}

func TestAPIConfig_HasCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  APIConfig
		want bool
	}{
		{"complete", APIConfig{Host: "h", Username: "u", Password: "p"}, true},
		{"no host", APIConfig{Username: "u", Password: "p"}, false},
		{"no username", APIConfig{Host: "h", Password: "p"}, false},
		{"no password", APIConfig{Host: "h", Username: "u"}, false},
		{"empty", APIConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.cfg.HasCredentials(); got != tt.want {
				t.Errorf("HasCredentials() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIConfig_RequestTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout string
		want    time.Duration
	}{
		{"valid", "2s", 2 * time.Second},
		{"empty falls back", "", 5 * time.Second},
		{"garbage falls back", "soon", 5 * time.Second},
		{"negative falls back", "-1s", 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := APIConfig{Timeout: tt.timeout}
			if got := a.RequestTimeout(); got != tt.want {
				t.Errorf("RequestTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate_MissingCredentialsIsNotAnError(t *testing.T) {
	t.Parallel()

	// The bridge must boot without credentials; authentication fails per call.
	var cfg Config
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with no credentials = %v, want nil", err)
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.SetDefaults()
	cfg.Server.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with bad log level should fail")
	}
}

func TestValidate_BadPort(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.SetDefaults()
	cfg.API.Port = "https"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with non-numeric port should fail")
	}
}

func TestValidate_BadMetricsAddr(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.SetDefaults()
	cfg.Metrics.Addr = "not an address"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with bad metrics addr should fail")
	}
}

func TestValidate_LonelyCredential(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.SetDefaults()
	cfg.API.Username = "wazuh"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with username but no password should fail")
	}
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("WAZUH_API_HOST", "10.0.0.5")
	t.Setenv("WAZUH_API_USERNAME", "wazuh-wui")
	t.Setenv("WAZUH_API_PASSWORD", "secret")

	// No config file in any search location: env vars only.
	InitViper("")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.API.Host != "10.0.0.5" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "10.0.0.5")
	}
	if cfg.API.Port != "55000" {
		t.Errorf("API.Port = %q, want default %q", cfg.API.Port, "55000")
	}
	if !cfg.API.HasCredentials() {
		t.Error("HasCredentials() = false, want true")
	}
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "threat-hunter.yaml")
	content := `api:
  host: file-host
  port: "44000"
  username: file-user
  password: file-pass
server:
  log_level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("WAZUH_API_HOST", "env-host")

	InitViper(configPath)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.API.Host != "env-host" {
		t.Errorf("API.Host = %q, want env override %q", cfg.API.Host, "env-host")
	}
	if cfg.API.Port != "44000" {
		t.Errorf("API.Port = %q, want file value %q", cfg.API.Port, "44000")
	}
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("Server.LogLevel = %q, want %q", cfg.Server.LogLevel, "debug")
	}
}

func TestFindConfigFileInPaths(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "threat-hunter.yml")
	if err := os.WriteFile(configPath, []byte("api: {}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if got := findConfigFileInPaths([]string{t.TempDir(), dir}); got != configPath {
		t.Errorf("findConfigFileInPaths() = %q, want %q", got, configPath)
	}

	if got := findConfigFileInPaths([]string{t.TempDir()}); got != "" {
		t.Errorf("findConfigFileInPaths() = %q, want empty", got)
	}
}
