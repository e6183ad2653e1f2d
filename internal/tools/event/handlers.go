package event

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// handleListEvents handles the list_events tool.
func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)
	allNamespaces := tools.OptionalBool(args, "all_namespaces")
	limit := tools.OptionalInt(args, "limit", k8s.DefaultEventLimit)
	if limit <= 0 {
		limit = k8s.DefaultEventLimit
	}

	listNamespace := namespace
	if allNamespaces {
		listNamespace = ""
	}

	events, err := sc.K8sClient().ListEvents(ctx, listNamespace, limit)
	if err != nil {
		return tools.ErrorResult("listing events", err), nil
	}

	return mcp.NewToolResultText(FormatEventList(events, namespace, allNamespaces, limit)), nil
}
