package k8s

import (
	"context"

	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// JobManager implementation

// ListJobs lists jobs in a namespace.
func (c *kubernetesClient) ListJobs(ctx context.Context, namespace string) ([]batchv1.Job, error) {
	c.logOperation("list-jobs", namespace, "Job", "")

	jobs, err := c.clientset.BatchV1().Jobs(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classify(err, "Job", "", namespace)
	}

	return jobs.Items, nil
}

// GetJob retrieves a single job by name.
func (c *kubernetesClient) GetJob(ctx context.Context, namespace, name string) (*batchv1.Job, error) {
	c.logOperation("get-job", namespace, "Job", name)

	job, err := c.clientset.BatchV1().Jobs(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classify(err, "Job", name, namespace)
	}

	return job, nil
}

// DeleteJob initiates deletion of a job. Background propagation removes
// the job's pods as well, matching kubectl delete job behavior.
func (c *kubernetesClient) DeleteJob(ctx context.Context, namespace, name string) error {
	c.logOperation("delete-job", namespace, "Job", name)

	propagation := metav1.DeletePropagationBackground
	err := c.clientset.BatchV1().Jobs(namespace).Delete(ctx, name, metav1.DeleteOptions{
		PropagationPolicy: &propagation,
	})
	if err != nil {
		return classify(err, "Job", name, namespace)
	}

	return nil
}

// ListCronJobs lists cron jobs in a namespace.
func (c *kubernetesClient) ListCronJobs(ctx context.Context, namespace string) ([]batchv1.CronJob, error) {
	c.logOperation("list-cronjobs", namespace, "CronJob", "")

	cronJobs, err := c.clientset.BatchV1().CronJobs(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classify(err, "CronJob", "", namespace)
	}

	return cronJobs.Items, nil
}
