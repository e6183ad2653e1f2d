package node

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// handleListNodes handles the list_nodes tool.
func handleListNodes(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	nodes, err := sc.K8sClient().ListNodes(ctx)
	if err != nil {
		return tools.ErrorResult("listing nodes", err), nil
	}

	return mcp.NewToolResultText(FormatNodeList(nodes)), nil
}

// handleDescribeNode handles the describe_node tool.
func handleDescribeNode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	nodeName, ok := tools.RequiredString(args, "node_name")
	if !ok {
		return tools.MissingArgument("node_name"), nil
	}

	node, err := sc.K8sClient().GetNode(ctx, nodeName)
	if err != nil {
		return tools.ErrorResult("describing node", err), nil
	}

	return mcp.NewToolResultText(FormatNodeDetails(node)), nil
}

// handleListPodsByNode handles the list_pods_by_node tool. The node and
// pod listings are fetched separately; a node that gains or loses pods
// between the two calls is rendered from whichever state each call saw.
func handleListPodsByNode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	namespace, _ := tools.OptionalString(args, "namespace")

	nodes, err := sc.K8sClient().ListNodes(ctx)
	if err != nil {
		return tools.ErrorResult("listing nodes", err), nil
	}

	allNamespaces := namespace == ""
	pods, err := sc.K8sClient().ListPods(ctx, namespace, allNamespaces)
	if err != nil {
		return tools.ErrorResult("listing pods", err), nil
	}

	return mcp.NewToolResultText(FormatPodsByNode(nodes, pods, namespace)), nil
}

// handleClusterInfo handles the cluster_info tool.
func handleClusterInfo(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	nodes, err := sc.K8sClient().ListNodes(ctx)
	if err != nil {
		return tools.ErrorResult("listing nodes", err), nil
	}

	namespaces, err := sc.K8sClient().ListNamespaces(ctx)
	if err != nil {
		return tools.ErrorResult("listing namespaces", err), nil
	}

	return mcp.NewToolResultText(FormatClusterInfo(nodes, namespaces)), nil
}
