package namespace

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

func TestHandleCreateNamespace(t *testing.T) {
	t.Run("creates namespace", func(t *testing.T) {
		sc := newTestContext(t)

		result, err := handleCreateNamespace(context.Background(),
			newRequest(map[string]any{"name": "staging", "labels": map[string]any{"team": "platform"}}), sc)
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "Successfully created namespace 'staging'", resultText(t, result))
	})

	t.Run("duplicate reports already exists", func(t *testing.T) {
		sc := newTestContext(t, &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "staging"}})

		result, err := handleCreateNamespace(context.Background(),
			newRequest(map[string]any{"name": "staging"}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "Namespace 'staging' already exists", resultText(t, result))
	})

	t.Run("missing name argument", func(t *testing.T) {
		sc := newTestContext(t)

		result, err := handleCreateNamespace(context.Background(), newRequest(map[string]any{}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "name is required", resultText(t, result))
	})
}

func TestHandleDeleteNamespace(t *testing.T) {
	t.Run("reports initiation only", func(t *testing.T) {
		sc := newTestContext(t, &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "staging"}})

		result, err := handleDeleteNamespace(context.Background(),
			newRequest(map[string]any{"name": "staging"}), sc)
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "Successfully initiated deletion of namespace 'staging'", resultText(t, result))
	})

	t.Run("missing namespace reports not found", func(t *testing.T) {
		sc := newTestContext(t)

		result, err := handleDeleteNamespace(context.Background(),
			newRequest(map[string]any{"name": "ghost"}), sc)
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "Namespace 'ghost' not found", resultText(t, result))
	})
}

func TestFormatNamespaceList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No namespaces found", FormatNamespaceList(nil))
	})

	t.Run("renders records with sorted labels", func(t *testing.T) {
		namespaces := []corev1.Namespace{{
			ObjectMeta: metav1.ObjectMeta{
				Name:              "staging",
				Labels:            map[string]string{"tier": "pre-prod", "team": "platform"},
				CreationTimestamp: metav1.NewTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
			Status: corev1.NamespaceStatus{Phase: corev1.NamespaceActive},
		}}

		out := FormatNamespaceList(namespaces)
		assert.Contains(t, out, "  - staging\n")
		assert.Contains(t, out, "    Status: Active\n")
		assert.Contains(t, out, "    Age: 2026-01-01T00:00:00Z\n")
		assert.Contains(t, out, "    Labels: team=platform, tier=pre-prod\n")
	})
}
