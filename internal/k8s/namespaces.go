package k8s

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NamespaceManager implementation

// ListNamespaces lists all namespaces in the cluster.
func (c *kubernetesClient) ListNamespaces(ctx context.Context) ([]corev1.Namespace, error) {
	c.logOperation("list-namespaces", "", "Namespace", "")

	namespaces, err := c.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classify(err, "Namespace", "", "")
	}

	return namespaces.Items, nil
}

// CreateNamespace creates a namespace with optional labels. An
// already-exists outcome classifies as a conflict, which callers report
// distinctly from other failures.
func (c *kubernetesClient) CreateNamespace(ctx context.Context, name string, labels map[string]string) error {
	c.logOperation("create-namespace", "", "Namespace", name)

	namespace := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: labels,
		},
	}

	if _, err := c.clientset.CoreV1().Namespaces().Create(ctx, namespace, metav1.CreateOptions{}); err != nil {
		return classify(err, "Namespace", name, "")
	}

	return nil
}

// DeleteNamespace initiates deletion of a namespace. The cluster
// finalizes asynchronously; success here means deletion was initiated.
func (c *kubernetesClient) DeleteNamespace(ctx context.Context, name string) error {
	c.logOperation("delete-namespace", "", "Namespace", name)

	if err := c.clientset.CoreV1().Namespaces().Delete(ctx, name, metav1.DeleteOptions{}); err != nil {
		return classify(err, "Namespace", name, "")
	}

	return nil
}
