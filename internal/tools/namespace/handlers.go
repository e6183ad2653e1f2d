package namespace

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// handleListNamespaces handles the list_namespaces tool.
func handleListNamespaces(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	namespaces, err := sc.K8sClient().ListNamespaces(ctx)
	if err != nil {
		return tools.ErrorResult("listing namespaces", err), nil
	}

	return mcp.NewToolResultText(FormatNamespaceList(namespaces)), nil
}

// handleCreateNamespace handles the create_namespace tool. An
// already-exists outcome is a distinguished, non-fatal result.
func handleCreateNamespace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := tools.RequiredString(args, "name")
	if !ok {
		return tools.MissingArgument("name"), nil
	}
	labels := tools.OptionalStringMap(args, "labels")

	if err := sc.K8sClient().CreateNamespace(ctx, name, labels); err != nil {
		return tools.ErrorResult("creating namespace", err), nil
	}

	return mcp.NewToolResultText(FormatCreateSuccess(name)), nil
}

// handleDeleteNamespace handles the delete_namespace tool. A not-found
// outcome is a distinguished, non-fatal result.
func handleDeleteNamespace(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := tools.RequiredString(args, "name")
	if !ok {
		return tools.MissingArgument("name"), nil
	}

	if err := sc.K8sClient().DeleteNamespace(ctx, name); err != nil {
		return tools.ErrorResult("deleting namespace", err), nil
	}

	return mcp.NewToolResultText(FormatDeleteSuccess(name)), nil
}
