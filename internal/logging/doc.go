// Package logging provides slog construction and shared attribute
// helpers so log lines carry consistent keys across the server.
package logging
