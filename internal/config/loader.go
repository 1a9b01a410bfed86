// Package config provides configuration loading for the Threat Hunter bridge.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// InitViper initializes Viper with the configuration file and environment
// variables. If configFile is empty, it searches standard locations for
// threat-hunter.yaml/.yml, starting with the directory above the executable
// (the deployment convention: the config file lives one directory up from the
// binary).
func InitViper(configFile string) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else if found := findConfigFile(); found != "" {
		viper.SetConfigFile(found)
	} else {
		// No config file found in any standard location. Set name/type without
		// search paths so ReadInConfig returns ConfigFileNotFoundError, which
		// callers handle gracefully (pure env var configuration).
		viper.SetConfigName("threat-hunter")
		viper.SetConfigType("yaml")
	}

	// Environment variable support: WAZUH_API_HOST, WAZUH_API_PORT,
	// WAZUH_API_USERNAME, WAZUH_API_PASSWORD, WAZUH_SERVER_LOG_LEVEL, ...
	viper.SetEnvPrefix("WAZUH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	bindNestedEnvKeys()
}

// findConfigFile searches standard locations for a threat-hunter config file
// with an explicit YAML extension. The executable's parent directory comes
// first so a bundled deployment (bin/threat-hunter next to threat-hunter.yaml
// one level up) works with no flags or environment.
func findConfigFile() string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(filepath.Dir(exe)))
	}
	paths = append(paths, ".")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".threat-hunter"))
	}
	paths = append(paths, "/etc/threat-hunter")
	return findConfigFileInPaths(paths)
}

// findConfigFileInPaths searches the given directories for threat-hunter.yaml
// or .yml. Returns the full path of the first match, or empty string.
func findConfigFileInPaths(paths []string) string {
	for _, dir := range paths {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, "threat-hunter"+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// bindNestedEnvKeys binds all config keys for environment variable support.
// Example: WAZUH_API_HOST overrides api.host.
func bindNestedEnvKeys() {
	_ = viper.BindEnv("api.host")
	_ = viper.BindEnv("api.port")
	_ = viper.BindEnv("api.username")
	_ = viper.BindEnv("api.password")
	_ = viper.BindEnv("api.timeout")
	_ = viper.BindEnv("api.insecure_skip_verify")

	_ = viper.BindEnv("server.log_level")

	_ = viper.BindEnv("metrics.addr")
}

// LoadConfig reads the configuration file, applies environment overrides,
// sets defaults, validates, and returns the Config.
func LoadConfig() (*Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - continue with env vars only.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// ConfigFileUsed returns the path to the configuration file that was loaded,
// or empty string if none was found (env vars only mode).
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
