package pub

import "fmt"

// ValidationError represents a construction-time validation failure.
type ValidationError struct {
	Field   string // Field name (e.g., "authors", "title")
	Code    string // Error code (e.g., "required", "out_of_range")
	Message string // Human-readable message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
