package manifest

import (
	"fmt"
	"strings"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
)

// FormatManifest renders the get_yaml response.
func FormatManifest(kind, name, yamlContent string) string {
	return fmt.Sprintf("YAML for %s/%s:\n\n%s", kind, name, yamlContent)
}

// FormatApplySuccess renders the apply_yaml success message with the
// kubectl output so the caller sees what was created or configured.
func FormatApplySuccess(stdout string) string {
	return fmt.Sprintf("✓ Successfully applied YAML:\n\n%s", strings.TrimSpace(stdout))
}

// FormatApplyError renders an apply_yaml failure. Validation failures
// keep their own phrasing; kubectl failures include the full stderr.
func FormatApplyError(err error) string {
	opErr, ok := k8s.AsOpError(err)
	if !ok {
		return fmt.Sprintf("✗ Error: %v", err)
	}

	switch opErr.Kind {
	case k8s.ErrorKindArgument:
		message := opErr.Error()
		if strings.HasPrefix(message, "YAML parsing error") {
			return "✗ " + message
		}
		return "✗ Error: " + message
	case k8s.ErrorKindAPI:
		return fmt.Sprintf("✗ Error applying YAML:\n\n%s", opErr.Body)
	default:
		return fmt.Sprintf("✗ Error: %v", opErr)
	}
}
