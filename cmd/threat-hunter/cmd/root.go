// Package cmd provides the CLI commands for the Threat Hunter bridge.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/threat-hunter/wazuh-mcp/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "threat-hunter",
	Short: "Threat Hunter - Wazuh MCP bridge",
	Long: `Threat Hunter exposes read-only Wazuh SIEM queries as MCP tools
for an AI assistant.

Running the binary with no arguments starts the MCP serve loop on stdio.
Register it with an MCP-capable assistant runtime as a stdio server.

Configuration:
  Config is loaded from threat-hunter.yaml in the directory above the
  executable, the current directory, $HOME/.threat-hunter/, or
  /etc/threat-hunter/.

  Environment variables override config values with the WAZUH_ prefix:
  WAZUH_API_HOST, WAZUH_API_PORT, WAZUH_API_USERNAME, WAZUH_API_PASSWORD.

Tools:
  list_agents                 List monitored hosts and their connection state
  get_infrastructure_status   Aggregate agent status counters`,
	RunE:         runServe,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: searched, see help)")
}

func initConfig() {
	config.InitViper(cfgFile)
}
