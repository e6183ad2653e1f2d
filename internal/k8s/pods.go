package k8s

import (
	"context"
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PodManager implementation

// ListPods lists pods in a namespace, or across all namespaces.
func (c *kubernetesClient) ListPods(ctx context.Context, namespace string, allNamespaces bool) ([]corev1.Pod, error) {
	if allNamespaces {
		namespace = metav1.NamespaceAll
	}

	c.logOperation("list-pods", namespace, "Pod", "")

	pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classify(err, "Pod", "", namespace)
	}

	return pods.Items, nil
}

// GetPod retrieves a single pod by name.
func (c *kubernetesClient) GetPod(ctx context.Context, namespace, name string) (*corev1.Pod, error) {
	c.logOperation("get-pod", namespace, "Pod", name)

	pod, err := c.clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classify(err, "Pod", name, namespace)
	}

	return pod, nil
}

// GetPodLogs returns up to tailLines trailing log lines from a pod.
func (c *kubernetesClient) GetPodLogs(ctx context.Context, namespace, name string, tailLines int64) (string, error) {
	c.logOperation("get-pod-logs", namespace, "Pod", name)

	if tailLines <= 0 {
		tailLines = DefaultLogTailLines
	}

	req := c.clientset.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{
		TailLines: &tailLines,
	})

	stream, err := req.Stream(ctx)
	if err != nil {
		return "", classify(err, "Pod", name, namespace)
	}
	defer stream.Close()

	logs, err := io.ReadAll(stream)
	if err != nil {
		return "", classify(fmt.Errorf("failed to read logs for pod %s/%s: %w", namespace, name, err), "Pod", name, namespace)
	}

	return string(logs), nil
}
