package service

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// RegisterServiceTools registers all service management tools with the
// MCP server.
func RegisterServiceTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listServicesTool := mcp.NewTool("list_services",
		mcp.WithDescription("List all services in a namespace"),
		mcp.WithString("namespace",
			mcp.Description("Namespace name (optional, defaults to 'default')"),
		),
	)

	s.AddTool(listServicesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListServices(ctx, request, sc)
	})

	describeServiceTool := mcp.NewTool("describe_service",
		mcp.WithDescription("Get detailed information about a service"),
		mcp.WithString("service_name",
			mcp.Required(),
			mcp.Description("Name of the service"),
		),
		mcp.WithString("namespace",
			mcp.Description("Namespace name (optional, defaults to 'default')"),
		),
	)

	s.AddTool(describeServiceTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDescribeService(ctx, request, sc)
	})

	return nil
}
