package job

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// handleListJobs handles the list_jobs tool.
func handleListJobs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	jobs, err := sc.K8sClient().ListJobs(ctx, namespace)
	if err != nil {
		return tools.ErrorResult("listing jobs", err), nil
	}

	return mcp.NewToolResultText(FormatJobList(jobs, namespace)), nil
}

// handleDescribeJob handles the describe_job tool.
func handleDescribeJob(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	jobName, ok := tools.RequiredString(args, "job_name")
	if !ok {
		return tools.MissingArgument("job_name"), nil
	}
	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	job, err := sc.K8sClient().GetJob(ctx, namespace, jobName)
	if err != nil {
		return tools.ErrorResult("describing job", err), nil
	}

	return mcp.NewToolResultText(FormatJobDetails(job)), nil
}

// handleDeleteJob handles the delete_job tool. A not-found outcome is a
// distinguished, non-fatal result.
func handleDeleteJob(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	jobName, ok := tools.RequiredString(args, "job_name")
	if !ok {
		return tools.MissingArgument("job_name"), nil
	}
	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	if err := sc.K8sClient().DeleteJob(ctx, namespace, jobName); err != nil {
		return tools.ErrorResult("deleting job", err), nil
	}

	return mcp.NewToolResultText(FormatDeleteSuccess(jobName, namespace)), nil
}

// handleListCronJobs handles the list_cronjobs tool.
func handleListCronJobs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	namespace := tools.OptionalNamespace(args, sc.Config().DefaultNamespace)

	cronJobs, err := sc.K8sClient().ListCronJobs(ctx, namespace)
	if err != nil {
		return tools.ErrorResult("listing cron jobs", err), nil
	}

	return mcp.NewToolResultText(FormatCronJobList(cronJobs, namespace)), nil
}
