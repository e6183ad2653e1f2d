package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestFormatTime(t *testing.T) {
	t.Run("zero time", func(t *testing.T) {
		assert.Equal(t, "N/A", FormatTime(metav1.Time{}))
	})

	t.Run("renders RFC3339 UTC", func(t *testing.T) {
		ts := metav1.NewTime(time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600)))
		assert.Equal(t, "2026-03-14T08:26:53Z", FormatTime(ts))
	})
}

func TestFormatLabels(t *testing.T) {
	t.Run("empty map", func(t *testing.T) {
		assert.Equal(t, "", FormatLabels(nil))
	})

	t.Run("keys are sorted", func(t *testing.T) {
		labels := map[string]string{"zone": "eu-west", "app": "web", "team": "platform"}
		assert.Equal(t, "app=web, team=platform, zone=eu-west", FormatLabels(labels))
	})
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
