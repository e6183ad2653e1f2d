package deployment

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// RegisterDeploymentTools registers all deployment management tools
// with the MCP server.
func RegisterDeploymentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listDeploymentsTool := mcp.NewTool("list_deployments",
		mcp.WithDescription("List all deployments in a namespace"),
		mcp.WithString("namespace",
			mcp.Description("Namespace name (optional, defaults to 'default')"),
		),
	)

	s.AddTool(listDeploymentsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListDeployments(ctx, request, sc)
	})

	scaleDeploymentTool := mcp.NewTool("scale_deployment",
		mcp.WithDescription("Scale a deployment to a specific number of replicas"),
		mcp.WithString("deployment_name",
			mcp.Required(),
			mcp.Description("Name of the deployment"),
		),
		mcp.WithNumber("replicas",
			mcp.Required(),
			mcp.Description("Number of replicas"),
		),
		mcp.WithString("namespace",
			mcp.Description("Namespace name (optional, defaults to 'default')"),
		),
	)

	s.AddTool(scaleDeploymentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleScaleDeployment(ctx, request, sc)
	})

	restartDeploymentTool := mcp.NewTool("restart_deployment",
		mcp.WithDescription("Restart a deployment by rolling out restart"),
		mcp.WithString("deployment_name",
			mcp.Required(),
			mcp.Description("Name of the deployment"),
		),
		mcp.WithString("namespace",
			mcp.Description("Namespace name (optional, defaults to 'default')"),
		),
	)

	s.AddTool(restartDeploymentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRestartDeployment(ctx, request, sc)
	})

	return nil
}
