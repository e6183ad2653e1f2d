package manifest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
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

func TestHandleGetYAML(t *testing.T) {
	sc := newTestContext(t, &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "p1", Namespace: "default"},
	})

	t.Run("missing namespace is rejected", func(t *testing.T) {
		result, err := handleGetYAML(context.Background(),
			newRequest(map[string]any{"kind": "Pod", "name": "p1"}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "Namespace required for Pod resources", resultText(t, result))
	})

	t.Run("renders manifest with header", func(t *testing.T) {
		result, err := handleGetYAML(context.Background(),
			newRequest(map[string]any{"kind": "Pod", "name": "p1", "namespace": "default"}), sc)
		require.NoError(t, err)
		assert.False(t, result.IsError)

		out := resultText(t, result)
		assert.Contains(t, out, "YAML for Pod/p1:\n\n")
		assert.Contains(t, out, "kind: Pod")
	})

	t.Run("missing resource reports not found", func(t *testing.T) {
		result, err := handleGetYAML(context.Background(),
			newRequest(map[string]any{"kind": "Pod", "name": "ghost", "namespace": "default"}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "Pod 'ghost' not found in namespace 'default'", resultText(t, result))
	})

	t.Run("unsupported kind", func(t *testing.T) {
		result, err := handleGetYAML(context.Background(),
			newRequest(map[string]any{"kind": "Ingress", "name": "web", "namespace": "default"}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "unsupported resource kind: Ingress")
	})
}

func TestHandleApplyYAML(t *testing.T) {
	sc := newTestContext(t)

	t.Run("missing content argument", func(t *testing.T) {
		result, err := handleApplyYAML(context.Background(), newRequest(map[string]any{}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "yaml_content is required", resultText(t, result))
	})

	t.Run("parse error renders with marker", func(t *testing.T) {
		result, err := handleApplyYAML(context.Background(),
			newRequest(map[string]any{"yaml_content": "not: [valid\n"}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "✗ YAML parsing error")
	})

	t.Run("document stream with no resources", func(t *testing.T) {
		result, err := handleApplyYAML(context.Background(),
			newRequest(map[string]any{"yaml_content": "---\n---\n"}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "✗ Error: No valid resources found in YAML", resultText(t, result))
	})
}

func TestFormatApplySuccess(t *testing.T) {
	out := FormatApplySuccess("deployment.apps/web created\n")
	assert.Equal(t, "✓ Successfully applied YAML:\n\ndeployment.apps/web created", out)
}

func TestFormatApplyError(t *testing.T) {
	t.Run("kubectl failure includes stderr", func(t *testing.T) {
		err := &k8s.OpError{
			Kind:   k8s.ErrorKindAPI,
			Reason: "kubectl apply failed",
			Body:   "error validating data: unknown field",
		}
		assert.Equal(t, "✗ Error applying YAML:\n\nerror validating data: unknown field", FormatApplyError(err))
	})

	t.Run("timeout", func(t *testing.T) {
		err := k8s.NewTimeoutError("kubectl apply timed out after %d seconds", 60)
		assert.Equal(t, "✗ Error: kubectl apply timed out after 60 seconds", FormatApplyError(err))
	})

	t.Run("unclassified error", func(t *testing.T) {
		assert.Equal(t, "✗ Error: boom", FormatApplyError(fmt.Errorf("boom")))
	})
}
