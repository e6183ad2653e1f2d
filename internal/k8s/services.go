package k8s

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ServiceManager implementation

// ListServices lists services in a namespace.
func (c *kubernetesClient) ListServices(ctx context.Context, namespace string) ([]corev1.Service, error) {
	c.logOperation("list-services", namespace, "Service", "")

	services, err := c.clientset.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classify(err, "Service", "", namespace)
	}

	return services.Items, nil
}

// GetService retrieves a single service by name.
func (c *kubernetesClient) GetService(ctx context.Context, namespace, name string) (*corev1.Service, error) {
	c.logOperation("get-service", namespace, "Service", name)

	service, err := c.clientset.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classify(err, "Service", name, namespace)
	}

	return service, nil
}
