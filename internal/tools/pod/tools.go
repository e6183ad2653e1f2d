package pod

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// RegisterPodTools registers all pod management tools with the MCP server.
func RegisterPodTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listPodsTool := mcp.NewTool("list_pods",
		mcp.WithDescription("List pods in a namespace"),
		mcp.WithString("namespace",
			mcp.Description("Namespace name (optional, defaults to 'default')"),
		),
		mcp.WithBoolean("all_namespaces",
			mcp.Description("List pods across all namespaces (optional, overrides namespace)"),
		),
	)

	s.AddTool(listPodsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListPods(ctx, request, sc)
	})

	describePodTool := mcp.NewTool("describe_pod",
		mcp.WithDescription("Get detailed information about a pod"),
		mcp.WithString("pod_name",
			mcp.Required(),
			mcp.Description("Name of the pod"),
		),
		mcp.WithString("namespace",
			mcp.Description("Namespace name (optional, defaults to 'default')"),
		),
	)

	s.AddTool(describePodTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDescribePod(ctx, request, sc)
	})

	getPodLogsTool := mcp.NewTool("get_pod_logs",
		mcp.WithDescription("Get logs from a pod"),
		mcp.WithString("pod_name",
			mcp.Required(),
			mcp.Description("Name of the pod"),
		),
		mcp.WithString("namespace",
			mcp.Description("Namespace name (optional, defaults to 'default')"),
		),
		mcp.WithNumber("tail",
			mcp.Description("Number of lines from the end of the logs to show (default: 100)"),
		),
	)

	s.AddTool(getPodLogsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetPodLogs(ctx, request, sc)
	})

	return nil
}
