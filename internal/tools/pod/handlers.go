package pod

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// handleListPods handles the list_pods tool.
func handleListPods(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)
	allNamespaces := tools.OptionalBool(args, "all_namespaces")

	pods, err := sc.K8sClient().ListPods(ctx, namespace, allNamespaces)
	if err != nil {
		return tools.ErrorResult("listing pods", err), nil
	}

	return mcp.NewToolResultText(FormatPodList(pods, namespace, allNamespaces)), nil
}

// handleDescribePod handles the describe_pod tool.
func handleDescribePod(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	podName, ok := tools.RequiredString(args, "pod_name")
	if !ok {
		return tools.MissingArgument("pod_name"), nil
	}
	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	pod, err := sc.K8sClient().GetPod(ctx, namespace, podName)
	if err != nil {
		return tools.ErrorResult("describing pod", err), nil
	}

	return mcp.NewToolResultText(FormatPodDetails(pod)), nil
}

// handleGetPodLogs handles the get_pod_logs tool.
func handleGetPodLogs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	podName, ok := tools.RequiredString(args, "pod_name")
	if !ok {
		return tools.MissingArgument("pod_name"), nil
	}
	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)
	tail := tools.OptionalInt(args, "tail", k8s.DefaultLogTailLines)

	logs, err := sc.K8sClient().GetPodLogs(ctx, namespace, podName, tail)
	if err != nil {
		return tools.ErrorResult("getting logs", err), nil
	}

	return mcp.NewToolResultText(FormatPodLogs(podName, namespace, logs)), nil
}
