package deployment

import (
	"context"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// handleListDeployments handles the list_deployments tool.
func handleListDeployments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	deployments, err := sc.K8sClient().ListDeployments(ctx, namespace)
	if err != nil {
		return tools.ErrorResult("listing deployments", err), nil
	}

	return mcp.NewToolResultText(FormatDeploymentList(deployments, namespace)), nil
}

// handleScaleDeployment handles the scale_deployment tool.
func handleScaleDeployment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	deploymentName, ok := tools.RequiredString(args, "deployment_name")
	if !ok {
		return tools.MissingArgument("deployment_name"), nil
	}
	if _, present := args["replicas"]; !present {
		return tools.MissingArgument("replicas"), nil
	}
	replicas := tools.OptionalInt(args, "replicas", 0)
	if replicas < 0 {
		return mcp.NewToolResultError("replicas must not be negative"), nil
	}
	if replicas > math.MaxInt32 {
		return mcp.NewToolResultError(fmt.Sprintf("replicas must not exceed %d", math.MaxInt32)), nil
	}
	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	if err := sc.K8sClient().ScaleDeployment(ctx, namespace, deploymentName, int32(replicas)); err != nil {
		return tools.ErrorResult("scaling deployment", err), nil
	}

	return mcp.NewToolResultText(FormatScaleSuccess(deploymentName, replicas, namespace)), nil
}

// handleRestartDeployment handles the restart_deployment tool.
func handleRestartDeployment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	deploymentName, ok := tools.RequiredString(args, "deployment_name")
	if !ok {
		return tools.MissingArgument("deployment_name"), nil
	}
	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	if err := sc.K8sClient().RestartDeployment(ctx, namespace, deploymentName); err != nil {
		return tools.ErrorResult("restarting deployment", err), nil
	}

	return mcp.NewToolResultText(FormatRestartSuccess(deploymentName, namespace)), nil
}
