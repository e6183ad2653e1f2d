package k8s

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NodeManager implementation

// ListNodes lists all nodes in the cluster.
func (c *kubernetesClient) ListNodes(ctx context.Context) ([]corev1.Node, error) {
	c.logOperation("list-nodes", "", "Node", "")

	nodes, err := c.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classify(err, "Node", "", "")
	}

	return nodes.Items, nil
}

// GetNode retrieves a single node by name.
func (c *kubernetesClient) GetNode(ctx context.Context, name string) (*corev1.Node, error) {
	c.logOperation("get-node", "", "Node", name)

	node, err := c.clientset.CoreV1().Nodes().Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classify(err, "Node", name, "")
	}

	return node, nil
}
