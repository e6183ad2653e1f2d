package job

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

// RegisterJobTools registers all job management tools with the MCP
// server.
func RegisterJobTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listJobsTool := mcp.NewTool("list_jobs",
		mcp.WithDescription("List jobs in a namespace with completion status"),
		mcp.WithString("namespace",
			mcp.Description("The namespace to list jobs from (optional, defaults to 'default')"),
		),
	)

	s.AddTool(listJobsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListJobs(ctx, request, sc)
	})

	describeJobTool := mcp.NewTool("describe_job",
		mcp.WithDescription("Get detailed information about a specific job"),
		mcp.WithString("job_name",
			mcp.Required(),
			mcp.Description("Name of the job"),
		),
		mcp.WithString("namespace",
			mcp.Description("The namespace of the job (optional, defaults to 'default')"),
		),
	)

	s.AddTool(describeJobTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDescribeJob(ctx, request, sc)
	})

	deleteJobTool := mcp.NewTool("delete_job",
		mcp.WithDescription("Delete a job and the pods it created"),
		mcp.WithString("job_name",
			mcp.Required(),
			mcp.Description("Name of the job"),
		),
		mcp.WithString("namespace",
			mcp.Description("The namespace of the job (optional, defaults to 'default')"),
		),
	)

	s.AddTool(deleteJobTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteJob(ctx, request, sc)
	})

	listCronJobsTool := mcp.NewTool("list_cronjobs",
		mcp.WithDescription("List cron jobs in a namespace with schedule and last run"),
		mcp.WithString("namespace",
			mcp.Description("The namespace to list cron jobs from (optional, defaults to 'default')"),
		),
	)

	s.AddTool(listCronJobsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListCronJobs(ctx, request, sc)
	})

	return nil
}
