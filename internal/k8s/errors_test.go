package k8s

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestClassify(t *testing.T) {
	podResource := schema.GroupResource{Group: "", Resource: "pods"}

	t.Run("not found", func(t *testing.T) {
		err := classify(apierrors.NewNotFound(podResource, "p1"), "Pod", "p1", "default")

		assert.Equal(t, ErrorKindNotFound, err.Kind)
		assert.Equal(t, "Pod 'p1' not found in namespace 'default'", err.Error())
	})

	t.Run("not found without namespace", func(t *testing.T) {
		err := classify(apierrors.NewNotFound(podResource, "node-1"), "Node", "node-1", "")

		assert.Equal(t, "Node 'node-1' not found", err.Error())
	})

	t.Run("already exists", func(t *testing.T) {
		nsResource := schema.GroupResource{Group: "", Resource: "namespaces"}
		err := classify(apierrors.NewAlreadyExists(nsResource, "staging"), "Namespace", "staging", "")

		assert.Equal(t, ErrorKindConflict, err.Kind)
		assert.Equal(t, "Namespace 'staging' already exists", err.Error())
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		err := classify(context.DeadlineExceeded, "Pod", "p1", "default")

		assert.Equal(t, ErrorKindTimeout, err.Kind)
	})

	t.Run("status error carries reason and body", func(t *testing.T) {
		statusErr := apierrors.NewForbidden(podResource, "p1", fmt.Errorf("denied"))
		err := classify(statusErr, "Pod", "p1", "default")

		assert.Equal(t, ErrorKindAPI, err.Kind)
		assert.Equal(t, "Forbidden", err.Reason)
		assert.NotEmpty(t, err.Body)
	})

	t.Run("plain error is unexpected", func(t *testing.T) {
		err := classify(fmt.Errorf("connection refused"), "Pod", "", "default")

		assert.Equal(t, ErrorKindUnexpected, err.Kind)
		assert.Equal(t, "connection refused", err.Error())
	})
}

func TestAsOpError(t *testing.T) {
	t.Run("wrapped OpError is extracted", func(t *testing.T) {
		inner := NewArgumentError("replicas must not be negative")
		wrapped := fmt.Errorf("scale failed: %w", inner)

		opErr, ok := AsOpError(wrapped)
		require.True(t, ok)
		assert.Equal(t, ErrorKindArgument, opErr.Kind)
	})

	t.Run("unclassified error reports false", func(t *testing.T) {
		_, ok := AsOpError(fmt.Errorf("boom"))
		assert.False(t, ok)
	})
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("kubectl apply timed out after %d seconds", 60)

	assert.Equal(t, ErrorKindTimeout, err.Kind)
	assert.Equal(t, "kubectl apply timed out after 60 seconds", err.Error())
}
