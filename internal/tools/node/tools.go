package node

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// RegisterNodeTools registers all node inspection tools with the MCP
// server.
func RegisterNodeTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listNodesTool := mcp.NewTool("list_nodes",
		mcp.WithDescription("List all nodes in the cluster with status and version information"),
	)

	s.AddTool(listNodesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListNodes(ctx, request, sc)
	})

	describeNodeTool := mcp.NewTool("describe_node",
		mcp.WithDescription("Get detailed information about a specific node"),
		mcp.WithString("node_name",
			mcp.Required(),
			mcp.Description("Name of the node"),
		),
	)

	s.AddTool(describeNodeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDescribeNode(ctx, request, sc)
	})

	listPodsByNodeTool := mcp.NewTool("list_pods_by_node",
		mcp.WithDescription("List pods grouped by the node they are scheduled on"),
		mcp.WithString("namespace",
			mcp.Description("Restrict the listing to one namespace (optional, defaults to all namespaces)"),
		),
	)

	s.AddTool(listPodsByNodeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListPodsByNode(ctx, request, sc)
	})

	clusterInfoTool := mcp.NewTool("cluster_info",
		mcp.WithDescription("Get a summary of the cluster: node counts by role, namespace count and Kubernetes version"),
	)

	s.AddTool(clusterInfoTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleClusterInfo(ctx, request, sc)
	})

	return nil
}
