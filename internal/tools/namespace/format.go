package namespace

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/k8s-mcp/k8s-mcp-server/internal/tools"
)

// FormatNamespaceList renders a namespace listing.
func FormatNamespaceList(namespaces []corev1.Namespace) string {
	if len(namespaces) == 0 {
		return "No namespaces found"
	}

	var b strings.Builder
	b.WriteString("Namespaces:\n\n")
	for i := range namespaces {
		namespace := &namespaces[i]
		fmt.Fprintf(&b, "  - %s\n", namespace.Name)
		fmt.Fprintf(&b, "    Status: %s\n", namespace.Status.Phase)
		fmt.Fprintf(&b, "    Age: %s\n", tools.FormatTime(namespace.CreationTimestamp))
		if labels := tools.FormatLabels(namespace.Labels); labels != "" {
			fmt.Fprintf(&b, "    Labels: %s\n", labels)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCreateSuccess renders the create_namespace success message.
func FormatCreateSuccess(name string) string {
	return fmt.Sprintf("Successfully created namespace '%s'", name)
}

// FormatDeleteSuccess renders the delete_namespace success message.
// Deletion is asynchronous; the message reports initiation only.
func FormatDeleteSuccess(name string) string {
	return fmt.Sprintf("Successfully initiated deletion of namespace '%s'", name)
}
