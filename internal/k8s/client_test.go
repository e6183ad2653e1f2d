package k8s

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/kubernetes/fake"
)

// testLogger returns a logger that discards output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFakeClient builds a client over the fake clientset so the real
// manager implementations run without a cluster.
func newFakeClient(t *testing.T, clientset *fake.Clientset) Client {
	t.Helper()
	return NewFromClientset(clientset, testLogger())
}

func TestNewClient_NilConfig(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration is required")
}

func TestLogOperation_AttributeKeys(t *testing.T) {
	var buf bytes.Buffer
	client := NewFromClientset(fake.NewSimpleClientset(),
		slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := client.GetPod(context.Background(), "default", "web-1")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "operation=get-pod")
	assert.Contains(t, out, "namespace=default")
	assert.Contains(t, out, "resource_kind=Pod")
	assert.Contains(t, out, "resource_name=web-1")
}

func TestNewFromClientset_Defaults(t *testing.T) {
	client := NewFromClientset(fake.NewSimpleClientset(), nil)
	require.NotNil(t, client)

	impl, ok := client.(*kubernetesClient)
	require.True(t, ok)
	assert.Equal(t, defaultKubectlPath, impl.kubectlPath)
	assert.Equal(t, defaultApplyTimeout, impl.applyTimeout)
	assert.NotNil(t, impl.logger)
}
