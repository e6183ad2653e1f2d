package namespace

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// RegisterNamespaceTools registers all namespace management tools with
// the MCP server.
func RegisterNamespaceTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listNamespacesTool := mcp.NewTool("list_namespaces",
		mcp.WithDescription("List all namespaces in the cluster"),
	)

	s.AddTool(listNamespacesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListNamespaces(ctx, request, sc)
	})

	createNamespaceTool := mcp.NewTool("create_namespace",
		mcp.WithDescription("Create a new namespace"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the namespace"),
		),
		mcp.WithObject("labels",
			mcp.Description("Labels to apply to the namespace (optional)"),
		),
	)

	s.AddTool(createNamespaceTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateNamespace(ctx, request, sc)
	})

	deleteNamespaceTool := mcp.NewTool("delete_namespace",
		mcp.WithDescription("Delete a namespace"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the namespace"),
		),
	)

	s.AddTool(deleteNamespaceTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteNamespace(ctx, request, sc)
	})

	return nil
}
