package k8s

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

// DeploymentManager implementation

// ListDeployments lists deployments in a namespace.
func (c *kubernetesClient) ListDeployments(ctx context.Context, namespace string) ([]appsv1.Deployment, error) {
	c.logOperation("list-deployments", namespace, "Deployment", "")

	deployments, err := c.clientset.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classify(err, "Deployment", "", namespace)
	}

	return deployments.Items, nil
}

// ScaleDeployment patches a deployment's desired replica count. The
// preceding Get exists to surface a distinct not-found outcome; no
// resourceVersion precondition is carried into the patch, so a
// concurrent writer wins or loses on API-server ordering alone.
func (c *kubernetesClient) ScaleDeployment(ctx context.Context, namespace, name string, replicas int32) error {
	c.logOperation("scale-deployment", namespace, "Deployment", name)

	if _, err := c.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{}); err != nil {
		return classify(err, "Deployment", name, namespace)
	}

	patch := fmt.Sprintf(`{"spec":{"replicas":%d}}`, replicas)
	_, err := c.clientset.AppsV1().Deployments(namespace).Patch(ctx, name,
		types.StrategicMergePatchType, []byte(patch), metav1.PatchOptions{})
	if err != nil {
		return classify(err, "Deployment", name, namespace)
	}

	return nil
}

// RestartDeployment stamps the restart annotation on the pod template
// with the current time at second precision. The deployment controller
// performs the actual rollout; this call does not wait for it.
func (c *kubernetesClient) RestartDeployment(ctx context.Context, namespace, name string) error {
	c.logOperation("restart-deployment", namespace, "Deployment", name)

	if _, err := c.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{}); err != nil {
		return classify(err, "Deployment", name, namespace)
	}

	patch, err := json.Marshal(map[string]any{
		"spec": map[string]any{
			"template": map[string]any{
				"metadata": map[string]any{
					"annotations": map[string]string{
						RestartedAtAnnotation: time.Now().UTC().Format(time.RFC3339),
					},
				},
			},
		},
	})
	if err != nil {
		return classify(fmt.Errorf("failed to build restart patch: %w", err), "Deployment", name, namespace)
	}

	_, err = c.clientset.AppsV1().Deployments(namespace).Patch(ctx, name,
		types.StrategicMergePatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return classify(err, "Deployment", name, namespace)
	}

	return nil
}
