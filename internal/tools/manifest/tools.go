package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// RegisterManifestTools registers the YAML manifest tools with the MCP
// server.
func RegisterManifestTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getYAMLTool := mcp.NewTool("get_yaml",
		mcp.WithDescription(fmt.Sprintf("Get the YAML manifest of a resource. Supported kinds: %s",
			strings.Join(k8s.SupportedManifestKinds, ", "))),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Kind of the resource (e.g. Pod, Deployment)"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the resource"),
		),
		mcp.WithString("namespace",
			mcp.Description("The namespace of the resource (required for namespaced kinds)"),
		),
	)

	s.AddTool(getYAMLTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetYAML(ctx, request, sc)
	})

	applyYAMLTool := mcp.NewTool("apply_yaml",
		mcp.WithDescription("Apply a YAML manifest to the cluster (create or update resources)"),
		mcp.WithString("yaml_content",
			mcp.Required(),
			mcp.Description("The YAML manifest content to apply"),
		),
	)

	s.AddTool(applyYAMLTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleApplyYAML(ctx, request, sc)
	})

	return nil
}
