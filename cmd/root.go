package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the entry point when the application is called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "k8s-mcp-server",
	Short: "MCP server for Kubernetes cluster management",
	Long: `k8s-mcp-server is a Model Context Protocol (MCP) server that exposes
Kubernetes cluster management operations as tools: listing and
describing pods, deployments, services, namespaces, nodes and jobs,
scaling and restarting deployments, fetching and applying YAML
manifests, and inspecting cluster events.

When run without subcommands, it starts the MCP server (equivalent to
'k8s-mcp-server serve').`,
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from main to
// inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the CLI. Called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "k8s-mcp-server version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd())
}
