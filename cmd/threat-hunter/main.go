package main

import "github.com/threat-hunter/wazuh-mcp/cmd/threat-hunter/cmd"

func main() {
	cmd.Execute()
}
