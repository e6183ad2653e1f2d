package k8s

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
)

// Client defines the interface for all Kubernetes operations exposed
// as MCP tools. Implementations must be safe for concurrent use; tool
// invocations share a single Client and carry no state of their own.
type Client interface {
	PodManager
	DeploymentManager
	ServiceManager
	NamespaceManager
	NodeManager
	JobManager
	EventManager
	ManifestManager
}

// PodManager handles pod read operations.
type PodManager interface {
	// ListPods lists pods in a namespace, or cluster-wide when
	// allNamespaces is set (namespace is ignored in that case).
	ListPods(ctx context.Context, namespace string, allNamespaces bool) ([]corev1.Pod, error)

	// GetPod retrieves a single pod by name.
	GetPod(ctx context.Context, namespace, name string) (*corev1.Pod, error)

	// GetPodLogs returns up to tailLines trailing log lines from a pod.
	GetPodLogs(ctx context.Context, namespace, name string, tailLines int64) (string, error)
}

// DeploymentManager handles deployment operations.
type DeploymentManager interface {
	// ListDeployments lists deployments in a namespace.
	ListDeployments(ctx context.Context, namespace string) ([]appsv1.Deployment, error)

	// ScaleDeployment patches a deployment's desired replica count.
	// The read-then-patch sequence is not atomic; a concurrent mutation
	// between the two calls is last-write-wins at the API layer.
	ScaleDeployment(ctx context.Context, namespace, name string, replicas int32) error

	// RestartDeployment triggers a rolling restart by stamping the
	// restart annotation on the pod template. It does not wait for the
	// rollout to complete.
	RestartDeployment(ctx context.Context, namespace, name string) error
}

// ServiceManager handles service read operations.
type ServiceManager interface {
	// ListServices lists services in a namespace.
	ListServices(ctx context.Context, namespace string) ([]corev1.Service, error)

	// GetService retrieves a single service by name.
	GetService(ctx context.Context, namespace, name string) (*corev1.Service, error)
}

// NamespaceManager handles namespace operations.
type NamespaceManager interface {
	// ListNamespaces lists all namespaces in the cluster.
	ListNamespaces(ctx context.Context) ([]corev1.Namespace, error)

	// CreateNamespace creates a namespace with optional labels.
	CreateNamespace(ctx context.Context, name string, labels map[string]string) error

	// DeleteNamespace initiates deletion of a namespace. Deletion is
	// asynchronous on the cluster side; success means initiated.
	DeleteNamespace(ctx context.Context, name string) error
}

// NodeManager handles node and cluster-level read operations.
type NodeManager interface {
	// ListNodes lists all nodes in the cluster.
	ListNodes(ctx context.Context) ([]corev1.Node, error)

	// GetNode retrieves a single node by name.
	GetNode(ctx context.Context, name string) (*corev1.Node, error)
}

// JobManager handles batch job operations.
type JobManager interface {
	// ListJobs lists jobs in a namespace.
	ListJobs(ctx context.Context, namespace string) ([]batchv1.Job, error)

	// GetJob retrieves a single job by name.
	GetJob(ctx context.Context, namespace, name string) (*batchv1.Job, error)

	// DeleteJob initiates deletion of a job and its pods.
	DeleteJob(ctx context.Context, namespace, name string) error

	// ListCronJobs lists cron jobs in a namespace.
	ListCronJobs(ctx context.Context, namespace string) ([]batchv1.CronJob, error)
}

// EventManager handles event read operations.
type EventManager interface {
	// ListEvents lists events in a namespace, or cluster-wide when
	// namespace is empty. The API may return them in any order; sorting
	// is the caller's concern.
	ListEvents(ctx context.Context, namespace string, limit int64) ([]corev1.Event, error)
}

// ManifestManager handles YAML manifest operations.
type ManifestManager interface {
	// GetManifest fetches a resource and serializes it as a YAML
	// document with fields in API emission order.
	GetManifest(ctx context.Context, kind, namespace, name string) (string, error)

	// ApplyManifest validates the YAML content locally, then applies it
	// via the kubectl CLI with a bounded deadline. It returns kubectl's
	// standard output on success.
	ApplyManifest(ctx context.Context, content string) (string, error)
}
