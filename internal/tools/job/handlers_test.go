package job

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
	"github.com/k8s-mcp/k8s-mcp-server/internal/server"
)

func newTestContext(t *testing.T, objects ...runtime.Object) *server.ServerContext {
	t.Helper()
	client := k8s.NewFromClientset(fake.NewSimpleClientset(objects...),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	sc, err := server.NewServerContext(context.Background(), server.WithK8sClient(client))
	require.NoError(t, err)
	return sc
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleDeleteJob(t *testing.T) {
	t.Run("deletes and reports success", func(t *testing.T) {
		sc := newTestContext(t, &batchv1.Job{
			ObjectMeta: metav1.ObjectMeta{Name: "migrate", Namespace: "default"},
		})

		result, err := handleDeleteJob(context.Background(),
			newRequest(map[string]any{"job_name": "migrate"}), sc)
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "Successfully deleted job 'migrate' in namespace 'default'", resultText(t, result))
	})

	t.Run("missing job reports not found", func(t *testing.T) {
		sc := newTestContext(t)

		result, err := handleDeleteJob(context.Background(),
			newRequest(map[string]any{"job_name": "ghost"}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "Job 'ghost' not found in namespace 'default'", resultText(t, result))
	})
}

func TestHandleDescribeJob(t *testing.T) {
	sc := newTestContext(t, &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{Name: "migrate", Namespace: "default"},
	})

	result, err := handleDescribeJob(context.Background(),
		newRequest(map[string]any{"job_name": "migrate"}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Job: migrate")
}
