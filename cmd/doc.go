// Package cmd implements the command line interface of the server.
//
// The root command starts the MCP server by default; the serve
// subcommand exposes the transport and Kubernetes client flags.
package cmd
