package node

import (
	"fmt"
	"sort"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// FormatNodeList renders a node listing.
func FormatNodeList(nodes []corev1.Node) string {
	if len(nodes) == 0 {
		return "No nodes found in cluster"
	}

	var b strings.Builder
	b.WriteString("Cluster Nodes:\n\n")
	for i := range nodes {
		node := &nodes[i]
		fmt.Fprintf(&b, "  - %s\n", node.Name)
		fmt.Fprintf(&b, "    Status: Ready=%s\n", readyStatus(node))
		fmt.Fprintf(&b, "    OS: %s/%s\n", node.Status.NodeInfo.OperatingSystem, node.Status.NodeInfo.Architecture)
		fmt.Fprintf(&b, "    Kubernetes: %s\n", node.Status.NodeInfo.KubeletVersion)
		fmt.Fprintf(&b, "    Container Runtime: %s\n", node.Status.NodeInfo.ContainerRuntimeVersion)
		fmt.Fprintf(&b, "    Allocatable: CPU=%s, Memory=%s\n",
			quantityOrNA(node.Status.Allocatable, corev1.ResourceCPU),
			quantityOrNA(node.Status.Allocatable, corev1.ResourceMemory))
		fmt.Fprintf(&b, "    Role: %s\n", nodeRole(node))
		fmt.Fprintf(&b, "    Age: %s\n", tools.FormatTime(node.CreationTimestamp))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatNodeDetails renders the describe_node report.
func FormatNodeDetails(node *corev1.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Node: %s\n", node.Name)
	fmt.Fprintf(&b, "Created: %s\n\n", tools.FormatTime(node.CreationTimestamp))

	b.WriteString("Conditions:\n")
	for _, condition := range node.Status.Conditions {
		reason := condition.Reason
		if reason == "" {
			reason = "N/A"
		}
		fmt.Fprintf(&b, "  %s: %s - %s\n", condition.Type, condition.Status, reason)
		if condition.Message != "" {
			fmt.Fprintf(&b, "    Message: %s\n", condition.Message)
		}
	}

	b.WriteString("\nNode Info:\n")
	fmt.Fprintf(&b, "  OS: %s\n", node.Status.NodeInfo.OperatingSystem)
	fmt.Fprintf(&b, "  Architecture: %s\n", node.Status.NodeInfo.Architecture)
	fmt.Fprintf(&b, "  Kernel: %s\n", node.Status.NodeInfo.KernelVersion)
	fmt.Fprintf(&b, "  Kubernetes: %s\n", node.Status.NodeInfo.KubeletVersion)
	fmt.Fprintf(&b, "  Container Runtime: %s\n", node.Status.NodeInfo.ContainerRuntimeVersion)

	b.WriteString("\nCapacity:\n")
	writeResourceList(&b, node.Status.Capacity)

	b.WriteString("\nAllocatable:\n")
	writeResourceList(&b, node.Status.Allocatable)

	if len(node.Labels) > 0 {
		b.WriteString("\nLabels:\n")
		for _, key := range tools.SortedKeys(node.Labels) {
			fmt.Fprintf(&b, "  %s=%s\n", key, node.Labels[key])
		}
	}

	return b.String()
}

// FormatPodsByNode groups pods by the node they are scheduled on. Nodes
// with no scheduled pods still appear, and node order is lexicographic
// regardless of the API return order.
func FormatPodsByNode(nodes []corev1.Node, pods []corev1.Pod, namespace string) string {
	podsByNode := make(map[string][]corev1.Pod)
	for _, pod := range pods {
		if pod.Spec.NodeName == "" {
			continue
		}
		podsByNode[pod.Spec.NodeName] = append(podsByNode[pod.Spec.NodeName], pod)
	}
	for i := range nodes {
		if _, exists := podsByNode[nodes[i].Name]; !exists {
			podsByNode[nodes[i].Name] = nil
		}
	}

	if len(podsByNode) == 0 {
		return "No nodes or pods found"
	}

	scope := "all namespaces"
	if namespace != "" {
		scope = fmt.Sprintf("namespace '%s'", namespace)
	}

	nodesByName := make(map[string]*corev1.Node, len(nodes))
	for i := range nodes {
		nodesByName[nodes[i].Name] = &nodes[i]
	}

	nodeNames := make([]string, 0, len(podsByNode))
	for name := range podsByNode {
		nodeNames = append(nodeNames, name)
	}
	sort.Strings(nodeNames)

	var b strings.Builder
	fmt.Fprintf(&b, "Pods by Node (%s):\n\n", scope)
	for _, nodeName := range nodeNames {
		if node, exists := nodesByName[nodeName]; exists {
			fmt.Fprintf(&b, "Node: %s (Ready=%s)\n", nodeName, readyStatus(node))
		} else {
			fmt.Fprintf(&b, "Node: %s\n", nodeName)
		}

		nodePods := podsByNode[nodeName]
		if len(nodePods) == 0 {
			b.WriteString("  Pods: None\n")
		} else {
			fmt.Fprintf(&b, "  Pods (%d):\n", len(nodePods))
			for _, pod := range nodePods {
				fmt.Fprintf(&b, "    - %s (%s) [ns: %s]\n", pod.Name, pod.Status.Phase, pod.Namespace)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatClusterInfo renders the cluster_info summary. Node counts are
// exact tallies: a node is control-plane if it carries either
// well-known role label, worker otherwise.
func FormatClusterInfo(nodes []corev1.Node, namespaces []corev1.Namespace) string {
	controlPlane := 0
	for i := range nodes {
		if isControlPlane(&nodes[i]) {
			controlPlane++
		}
	}
	workers := len(nodes) - controlPlane

	var b strings.Builder
	b.WriteString("Cluster Information:\n\n")
	fmt.Fprintf(&b, "Total Nodes: %d\n", len(nodes))
	fmt.Fprintf(&b, "  Control Plane: %d\n", controlPlane)
	fmt.Fprintf(&b, "  Workers: %d\n", workers)
	fmt.Fprintf(&b, "Total Namespaces: %d\n", len(namespaces))
	if len(nodes) > 0 && nodes[0].Status.NodeInfo.KubeletVersion != "" {
		fmt.Fprintf(&b, "Kubernetes Version: %s\n", nodes[0].Status.NodeInfo.KubeletVersion)
	}
	return b.String()
}

// readyStatus returns the status of the Ready condition, or Unknown
// when the condition is absent.
func readyStatus(node *corev1.Node) string {
	for _, condition := range node.Status.Conditions {
		if condition.Type == corev1.NodeReady {
			return string(condition.Status)
		}
	}
	return "Unknown"
}

func isControlPlane(node *corev1.Node) bool {
	if _, ok := node.Labels[k8s.LabelControlPlane]; ok {
		return true
	}
	_, ok := node.Labels[k8s.LabelMaster]
	return ok
}

func nodeRole(node *corev1.Node) string {
	if isControlPlane(node) {
		return "control-plane"
	}
	return "worker"
}

func quantityOrNA(resources corev1.ResourceList, name corev1.ResourceName) string {
	if quantity, ok := resources[name]; ok {
		return quantity.String()
	}
	return "N/A"
}

func writeResourceList(b *strings.Builder, resources corev1.ResourceList) {
	quantities := make(map[string]string, len(resources))
	for name, quantity := range resources {
		quantities[string(name)] = quantity.String()
	}
	for _, name := range tools.SortedKeys(quantities) {
		fmt.Fprintf(b, "  %s: %s\n", name, quantities[name])
	}
}
