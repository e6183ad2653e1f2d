package service

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// handleListServices handles the list_services tool.
func handleListServices(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	services, err := sc.K8sClient().ListServices(ctx, namespace)
	if err != nil {
		return tools.ErrorResult("listing services", err), nil
	}

	return mcp.NewToolResultText(FormatServiceList(services, namespace)), nil
}

// handleDescribeService handles the describe_service tool.
func handleDescribeService(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	serviceName, ok := tools.RequiredString(args, "service_name")
	if !ok {
		return tools.MissingArgument("service_name"), nil
	}
	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	service, err := sc.K8sClient().GetService(ctx, namespace, serviceName)
	if err != nil {
		return tools.ErrorResult("describing service", err), nil
	}

	return mcp.NewToolResultText(FormatServiceDetails(service)), nil
}
