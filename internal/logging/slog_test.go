package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "<empty>"},
		{"ipv4 url", "https://192.168.1.100:6443", "https://<redacted-ip>:6443"},
		{"hostname url unchanged", "https://api.cluster.example.com:6443", "https://api.cluster.example.com:6443"},
		{"bare ipv4", "10.0.0.1", "<redacted-ip>"},
		{"bare ipv6", "2001:db8::1", "<redacted-ip>"},
		{"listen addr without ip", ":8080", ":8080"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeHost(tc.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("info level by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, false)

		logger.Debug("hidden")
		logger.Info("visible")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("debug level when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, true)

		logger.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})
}

func TestAttrHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Info("op",
		Operation("list-pods"),
		Namespace("default"),
		ResourceKind("Pod"),
		Status(StatusSuccess),
	)

	out := buf.String()
	assert.Contains(t, out, "operation=list-pods")
	assert.Contains(t, out, "namespace=default")
	assert.Contains(t, out, "resource_kind=Pod")
	assert.Contains(t, out, "status=success")
}

func TestSanitizedErr(t *testing.T) {
	attr := SanitizedErr(assert.AnError)
	assert.Equal(t, KeyError, attr.Key)

	attr = SanitizedErr(nil)
	assert.Equal(t, "", attr.Value.String())
}
