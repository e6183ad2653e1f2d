package tools

import (
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestRequiredString(t *testing.T) {
	args := map[string]any{"name": "web", "empty": "", "number": 3.0}

	t.Run("present", func(t *testing.T) {
		value, ok := RequiredString(args, "name")
		assert.True(t, ok)
		assert.Equal(t, "web", value)
	})

	t.Run("empty string is missing", func(t *testing.T) {
		_, ok := RequiredString(args, "empty")
		assert.False(t, ok)
	})

	t.Run("wrong type is missing", func(t *testing.T) {
		_, ok := RequiredString(args, "number")
		assert.False(t, ok)
	})
}

func TestOptionalNamespace(t *testing.T) {
	assert.Equal(t, "staging", OptionalNamespace(map[string]any{"namespace": "staging"}, "default"))
	assert.Equal(t, "default", OptionalNamespace(map[string]any{}, "default"))
	assert.Equal(t, "default", OptionalNamespace(map[string]any{"namespace": ""}, "default"))
}

func TestOptionalInt(t *testing.T) {
	// JSON numbers arrive as float64 through the MCP layer
	assert.Equal(t, int64(5), OptionalInt(map[string]any{"replicas": 5.0}, "replicas", 0))
	assert.Equal(t, int64(50), OptionalInt(map[string]any{}, "limit", 50))
	assert.Equal(t, int64(7), OptionalInt(map[string]any{"limit": int64(7)}, "limit", 0))
}

func TestMissingArgument(t *testing.T) {
	result := MissingArgument("pod_name")
	assert.True(t, result.IsError)
	assert.Equal(t, "pod_name is required", resultText(t, result))
}

func TestErrorResult(t *testing.T) {
	t.Run("not found uses resource message", func(t *testing.T) {
		err := &k8s.OpError{Kind: k8s.ErrorKindNotFound, ResourceKind: "Pod", Name: "p1", Namespace: "default"}
		result := ErrorResult("describing pod", err)
		assert.True(t, result.IsError)
		assert.Equal(t, "Pod 'p1' not found in namespace 'default'", resultText(t, result))
	})

	t.Run("conflict uses resource message", func(t *testing.T) {
		err := &k8s.OpError{Kind: k8s.ErrorKindConflict, ResourceKind: "Namespace", Name: "staging"}
		result := ErrorResult("creating namespace", err)
		assert.Equal(t, "Namespace 'staging' already exists", resultText(t, result))
	})

	t.Run("api failure names the operation", func(t *testing.T) {
		err := &k8s.OpError{Kind: k8s.ErrorKindAPI, Reason: "Forbidden", Body: "pods is forbidden"}
		result := ErrorResult("listing pods", err)
		assert.Equal(t, "Error listing pods: Forbidden - pods is forbidden", resultText(t, result))
	})

	t.Run("unclassified error is unexpected", func(t *testing.T) {
		result := ErrorResult("listing pods", fmt.Errorf("boom"))
		assert.Equal(t, "Unexpected error: boom", resultText(t, result))
	})
}
