// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad  Op = "load slider configuration"
	OpConfigWatch Op = "watch slider configuration"
	OpConfigApply Op = "apply slider configuration"

	// Parsing
	OpParseOrientation Op = "parse orientation"
	OpParseDirection   Op = "parse direction"

	// Clipboard
	OpCopyValue Op = "copy value to clipboard"

	// Startup
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize slider"
	OpEncode     Op = "encode result"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
