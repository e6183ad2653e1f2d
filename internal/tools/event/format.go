package event

import (
	"fmt"
	"sort"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// effectiveTimestamp picks the most meaningful timestamp an event
// carries. FirstTimestamp is preferred, then the newer EventTime field,
// then the object creation time. Events missing all three sort last.
func effectiveTimestamp(event *corev1.Event) time.Time {
	if !event.FirstTimestamp.IsZero() {
		return event.FirstTimestamp.Time
	}
	if !event.EventTime.IsZero() {
		return event.EventTime.Time
	}
	return event.CreationTimestamp.Time
}

// FormatEventList renders the most recent events, newest first. The
// sort is stable so events sharing a timestamp keep their API order.
// At most limit events are rendered.
func FormatEventList(events []corev1.Event, namespace string, allNamespaces bool, limit int64) string {
	scope := fmt.Sprintf("namespace '%s'", namespace)
	if allNamespaces {
		scope = "all namespaces"
	}

	if len(events) == 0 {
		return fmt.Sprintf("No events found in %s", scope)
	}

	sorted := make([]corev1.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return effectiveTimestamp(&sorted[i]).After(effectiveTimestamp(&sorted[j]))
	})

	if limit > 0 && int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent events in %s (showing %d):\n\n", scope, len(sorted))
	for i := range sorted {
		event := &sorted[i]
		fmt.Fprintf(&b, "[%s] %s - %s\n", formatEventTime(event), event.Type, event.Reason)
		fmt.Fprintf(&b, "  Object: %s/%s\n", event.InvolvedObject.Kind, event.InvolvedObject.Name)
		fmt.Fprintf(&b, "  Namespace: %s\n", event.Namespace)
		fmt.Fprintf(&b, "  Message: %s\n", event.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func formatEventTime(event *corev1.Event) string {
	ts := effectiveTimestamp(event)
	if ts.IsZero() {
		return "N/A"
	}
	return ts.UTC().Format(time.RFC3339)
}
