package k8s

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// EventManager implementation

// ListEvents lists events in a namespace, or cluster-wide when the
// namespace is empty. The limit is passed through to the API; final
// ordering and truncation happen in the formatter.
func (c *kubernetesClient) ListEvents(ctx context.Context, namespace string, limit int64) ([]corev1.Event, error) {
	c.logOperation("list-events", namespace, "Event", "")

	if limit <= 0 {
		limit = DefaultEventLimit
	}

	events, err := c.clientset.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{Limit: limit})
	if err != nil {
		return nil, classify(err, "Event", "", namespace)
	}

	return events.Items, nil
}
