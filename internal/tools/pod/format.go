package pod

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// FormatPodList renders a pod listing. The record order follows the API
// return order; field order within a record is fixed.
func FormatPodList(pods []corev1.Pod, namespace string, allNamespaces bool) string {
	scope := fmt.Sprintf("namespace '%s'", namespace)
	if allNamespaces {
		scope = "all namespaces"
	}

	if len(pods) == 0 {
		return fmt.Sprintf("No pods found in %s", scope)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Pods in %s:\n\n", scope)
	for i := range pods {
		pod := &pods[i]
		fmt.Fprintf(&b, "  - %s (%s)\n", pod.Name, pod.Status.Phase)
		fmt.Fprintf(&b, "    Namespace: %s\n", pod.Namespace)
		fmt.Fprintf(&b, "    Node: %s\n", nodeNameOrNA(pod))
		for _, status := range pod.Status.ContainerStatuses {
			fmt.Fprintf(&b, "    Container: %s - Ready: %t\n", status.Name, status.Ready)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPodDetails renders the describe_pod report for a single pod.
func FormatPodDetails(pod *corev1.Pod) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pod: %s\n", pod.Name)
	fmt.Fprintf(&b, "Namespace: %s\n", pod.Namespace)
	fmt.Fprintf(&b, "Status: %s\n", pod.Status.Phase)
	fmt.Fprintf(&b, "Node: %s\n", nodeNameOrNA(pod))
	fmt.Fprintf(&b, "Created: %s\n\n", tools.FormatTime(pod.CreationTimestamp))

	b.WriteString("Containers:\n")
	for _, container := range pod.Spec.Containers {
		fmt.Fprintf(&b, "  - %s\n", container.Name)
		fmt.Fprintf(&b, "    Image: %s\n", container.Image)
		if len(container.Resources.Requests) > 0 {
			fmt.Fprintf(&b, "    Requests: %s\n", formatResourceList(container.Resources.Requests))
		}
		if len(container.Resources.Limits) > 0 {
			fmt.Fprintf(&b, "    Limits: %s\n", formatResourceList(container.Resources.Limits))
		}
	}

	b.WriteString("\nContainer Statuses:\n")
	for _, status := range pod.Status.ContainerStatuses {
		fmt.Fprintf(&b, "  - %s: Ready=%t, Restarts=%d\n", status.Name, status.Ready, status.RestartCount)
		switch {
		case status.State.Running != nil:
			fmt.Fprintf(&b, "    State: Running (started: %s)\n", tools.FormatTime(status.State.Running.StartedAt))
		case status.State.Waiting != nil:
			fmt.Fprintf(&b, "    State: Waiting - %s\n", status.State.Waiting.Reason)
		case status.State.Terminated != nil:
			fmt.Fprintf(&b, "    State: Terminated - %s\n", status.State.Terminated.Reason)
		}
	}

	return b.String()
}

// FormatPodLogs renders the log report header plus the raw log lines.
func FormatPodLogs(name, namespace, logs string) string {
	return fmt.Sprintf("Logs from pod '%s' in namespace '%s':\n\n%s", name, namespace, logs)
}

func nodeNameOrNA(pod *corev1.Pod) string {
	if pod.Spec.NodeName == "" {
		return "N/A"
	}
	return pod.Spec.NodeName
}

// formatResourceList renders resource quantities with sorted keys so
// output is stable across invocations.
func formatResourceList(resources corev1.ResourceList) string {
	quantities := make(map[string]string, len(resources))
	for name, quantity := range resources {
		quantities[string(name)] = quantity.String()
	}

	pairs := make([]string, 0, len(quantities))
	for _, name := range tools.SortedKeys(quantities) {
		pairs = append(pairs, name+"="+quantities[name])
	}
	return strings.Join(pairs, ", ")
}
