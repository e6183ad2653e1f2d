package deployment

import (
	"fmt"
	"strings"

	appsv1 "k8s.io/api/apps/v1"

	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// FormatDeploymentList renders a deployment listing.
func FormatDeploymentList(deployments []appsv1.Deployment, namespace string) string {
	if len(deployments) == 0 {
		return fmt.Sprintf("No deployments found in namespace '%s'", namespace)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Deployments in namespace '%s':\n\n", namespace)
	for i := range deployments {
		deployment := &deployments[i]

		var replicas int32
		if deployment.Spec.Replicas != nil {
			replicas = *deployment.Spec.Replicas
		}

		fmt.Fprintf(&b, "  - %s\n", deployment.Name)
		fmt.Fprintf(&b, "    Replicas: %d/%d ready, %d available\n",
			deployment.Status.ReadyReplicas, replicas, deployment.Status.AvailableReplicas)
		fmt.Fprintf(&b, "    Age: %s\n", tools.FormatTime(deployment.CreationTimestamp))
		fmt.Fprintf(&b, "    Strategy: %s\n", strategyType(deployment))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatScaleSuccess renders the scale_deployment success message.
func FormatScaleSuccess(name string, replicas int64, namespace string) string {
	return fmt.Sprintf("Successfully scaled deployment '%s' to %d replicas in namespace '%s'",
		name, replicas, namespace)
}

// FormatRestartSuccess renders the restart_deployment success message.
func FormatRestartSuccess(name, namespace string) string {
	return fmt.Sprintf("Successfully triggered rolling restart for deployment '%s' in namespace '%s'",
		name, namespace)
}

func strategyType(deployment *appsv1.Deployment) string {
	if deployment.Spec.Strategy.Type == "" {
		return string(appsv1.RollingUpdateDeploymentStrategyType)
	}
	return string(deployment.Spec.Strategy.Type)
}
