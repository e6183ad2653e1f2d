package manifest

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// handleGetYAML handles the get_yaml tool. All supported kinds are
// namespaced, so the namespace argument is validated here rather than
// defaulted silently.
func handleGetYAML(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	kind, ok := tools.RequiredString(args, "kind")
	if !ok {
		return tools.MissingArgument("kind"), nil
	}
	name, ok := tools.RequiredString(args, "name")
	if !ok {
		return tools.MissingArgument("name"), nil
	}
	namespace, ok := tools.OptionalString(args, "namespace")
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Namespace required for %s resources", kind)), nil
	}

	yamlContent, err := sc.K8sClient().GetManifest(ctx, kind, namespace, name)
	if err != nil {
		return tools.ErrorResult("fetching manifest", err), nil
	}

	return mcp.NewToolResultText(FormatManifest(kind, name, yamlContent)), nil
}

// handleApplyYAML handles the apply_yaml tool. Failures render with the
// dedicated apply formatting instead of the generic error mapping so
// kubectl's own output reaches the caller intact.
func handleApplyYAML(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	yamlContent, ok := tools.RequiredString(args, "yaml_content")
	if !ok {
		return tools.MissingArgument("yaml_content"), nil
	}

	stdout, err := sc.K8sClient().ApplyManifest(ctx, yamlContent)
	if err != nil {
		return mcp.NewToolResultError(FormatApplyError(err)), nil
	}

	return mcp.NewToolResultText(FormatApplySuccess(stdout)), nil
}
