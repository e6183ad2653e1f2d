// Package tools provides shared utilities for MCP tool implementations.
package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/k8s-mcp/k8s-mcp-server/internal/k8s"
)

// RequiredString extracts a required string argument. The second return
// value is false when the argument is missing or empty; callers respond
// with MissingArgument in that case.
func RequiredString(args map[string]any, key string) (string, bool) {
	return OptionalString(args, key)
}

// OptionalString extracts a string argument. The second return value
// is false when the argument is missing or empty.
func OptionalString(args map[string]any, key string) (string, bool) {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// OptionalNamespace extracts the namespace argument, falling back to
// the given default when it is absent or empty.
func OptionalNamespace(args map[string]any, fallback string) string {
	if namespace, ok := args["namespace"].(string); ok && namespace != "" {
		return namespace
	}
	return fallback
}

// OptionalInt extracts an integer argument. JSON numbers arrive as
// float64 through the MCP layer.
func OptionalInt(args map[string]any, key string, fallback int64) int64 {
	switch v := args[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return fallback
	}
}

// OptionalBool extracts a boolean argument.
func OptionalBool(args map[string]any, key string) bool {
	value, _ := args[key].(bool)
	return value
}

// OptionalStringMap extracts a string-to-string mapping argument, such
// as labels. Non-string values are ignored.
func OptionalStringMap(args map[string]any, key string) map[string]string {
	raw, ok := args[key].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	result := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			result[k] = s
		}
	}
	return result
}

// MissingArgument builds the result for a required argument that was
// not supplied. The call is never attempted.
func MissingArgument(key string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s is required", key))
}

// ErrorResult renders a classified operation error as a tool result.
// The verbPhrase names the operation in progressive form ("listing
// pods", "scaling deployment") for the generic API failure message.
// The MCP layer returns this as text; nothing propagates as a
// transport-level fault.
func ErrorResult(verbPhrase string, err error) *mcp.CallToolResult {
	opErr, ok := k8s.AsOpError(err)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unexpected error: %v", err))
	}

	switch opErr.Kind {
	case k8s.ErrorKindNotFound, k8s.ErrorKindConflict:
		return mcp.NewToolResultError(opErr.Error())
	case k8s.ErrorKindAPI:
		return mcp.NewToolResultError(fmt.Sprintf("Error %s: %s - %s", verbPhrase, opErr.Reason, opErr.Body))
	case k8s.ErrorKindArgument, k8s.ErrorKindTimeout:
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", opErr))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unexpected error: %v", opErr))
	}
}
