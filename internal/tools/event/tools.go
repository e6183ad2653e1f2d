package event

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// RegisterEventTools registers the event inspection tools with the MCP
// server.
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listEventsTool := mcp.NewTool("list_events",
		mcp.WithDescription("List recent events, newest first"),
		mcp.WithString("namespace",
			mcp.Description("The namespace to list events from (optional, defaults to 'default')"),
		),
		mcp.WithBoolean("all_namespaces",
			mcp.Description("List events across all namespaces (optional, defaults to false)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of events to show (optional, defaults to 50)"),
		),
	)

	s.AddTool(listEventsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListEvents(ctx, request, sc)
	})

	return nil
}
