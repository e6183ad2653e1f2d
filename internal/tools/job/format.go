package job

import (
	"fmt"
	"strings"

	batchv1 "k8s.io/api/batch/v1"

	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// FormatJobList renders a job listing.
func FormatJobList(jobs []batchv1.Job, namespace string) string {
	if len(jobs) == 0 {
		return fmt.Sprintf("No jobs found in namespace '%s'", namespace)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Jobs in namespace '%s':\n\n", namespace)
	for i := range jobs {
		job := &jobs[i]
		fmt.Fprintf(&b, "  - %s\n", job.Name)
		fmt.Fprintf(&b, "    Status: %s\n", jobStatus(job))
		fmt.Fprintf(&b, "    Completions: %d/%s\n", job.Status.Succeeded, completionsTarget(job))
		fmt.Fprintf(&b, "    Age: %s\n", tools.FormatTime(job.CreationTimestamp))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatJobDetails renders the describe_job report.
func FormatJobDetails(job *batchv1.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job: %s\n", job.Name)
	fmt.Fprintf(&b, "Namespace: %s\n", job.Namespace)
	fmt.Fprintf(&b, "Created: %s\n", tools.FormatTime(job.CreationTimestamp))
	fmt.Fprintf(&b, "Status: %s\n\n", jobStatus(job))

	fmt.Fprintf(&b, "Completions: %d/%s\n", job.Status.Succeeded, completionsTarget(job))
	fmt.Fprintf(&b, "Active: %d\n", job.Status.Active)
	fmt.Fprintf(&b, "Failed: %d\n", job.Status.Failed)
	if job.Spec.BackoffLimit != nil {
		fmt.Fprintf(&b, "Backoff Limit: %d\n", *job.Spec.BackoffLimit)
	}
	if job.Status.StartTime != nil {
		fmt.Fprintf(&b, "Started: %s\n", tools.FormatTime(*job.Status.StartTime))
	}
	if job.Status.CompletionTime != nil {
		fmt.Fprintf(&b, "Completed: %s\n", tools.FormatTime(*job.Status.CompletionTime))
	}

	if len(job.Status.Conditions) > 0 {
		b.WriteString("\nConditions:\n")
		for _, condition := range job.Status.Conditions {
			reason := condition.Reason
			if reason == "" {
				reason = "N/A"
			}
			fmt.Fprintf(&b, "  %s: %s - %s\n", condition.Type, condition.Status, reason)
			if condition.Message != "" {
				fmt.Fprintf(&b, "    Message: %s\n", condition.Message)
			}
		}
	}

	if labels := tools.FormatLabels(job.Labels); labels != "" {
		fmt.Fprintf(&b, "\nLabels: %s\n", labels)
	}

	return b.String()
}

// FormatCronJobList renders a cron job listing.
func FormatCronJobList(cronJobs []batchv1.CronJob, namespace string) string {
	if len(cronJobs) == 0 {
		return fmt.Sprintf("No cron jobs found in namespace '%s'", namespace)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cron jobs in namespace '%s':\n\n", namespace)
	for i := range cronJobs {
		cronJob := &cronJobs[i]
		fmt.Fprintf(&b, "  - %s\n", cronJob.Name)
		fmt.Fprintf(&b, "    Schedule: %s\n", cronJob.Spec.Schedule)
		suspended := cronJob.Spec.Suspend != nil && *cronJob.Spec.Suspend
		fmt.Fprintf(&b, "    Suspended: %t\n", suspended)
		fmt.Fprintf(&b, "    Active: %d\n", len(cronJob.Status.Active))
		if cronJob.Status.LastScheduleTime != nil {
			fmt.Fprintf(&b, "    Last Schedule: %s\n", tools.FormatTime(*cronJob.Status.LastScheduleTime))
		} else {
			b.WriteString("    Last Schedule: N/A\n")
		}
		fmt.Fprintf(&b, "    Age: %s\n", tools.FormatTime(cronJob.CreationTimestamp))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatDeleteSuccess renders the delete_job success message. The pods
// the job created are removed in the background.
func FormatDeleteSuccess(name, namespace string) string {
	return fmt.Sprintf("Successfully deleted job '%s' in namespace '%s'", name, namespace)
}

// jobStatus derives a one-word status from the job conditions.
func jobStatus(job *batchv1.Job) string {
	for _, condition := range job.Status.Conditions {
		if condition.Status != "True" {
			continue
		}
		switch condition.Type {
		case batchv1.JobComplete:
			return "Complete"
		case batchv1.JobFailed:
			return "Failed"
		}
	}
	if job.Status.Active > 0 {
		return "Active"
	}
	return "Pending"
}

func completionsTarget(job *batchv1.Job) string {
	if job.Spec.Completions != nil {
		return fmt.Sprintf("%d", *job.Spec.Completions)
	}
	return "1"
}
