// Package errors enriches folder-level mirror failures with a category and
// actionable suggestions for the final report. Failures here are report
// material, not control flow: the session records them and moves on.
package errors

import "strings"

// Exported constants.
const (
	CategoryDiskSpace  ErrorCategory = "disk_space"
	CategoryNetwork    ErrorCategory = "network"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategorySpawn      ErrorCategory = "spawn"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ErrorCategory represents the type of failure that occurred.
type ErrorCategory string

// ActionableError is an error carrying a category and suggestions for the user.
type ActionableError interface {
	error
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates an ActionableError with the given details.
func NewActionableError(message string, category ErrorCategory, suggestions []string, affectedPath string) ActionableError {
	return &actionableError{
		message:      message,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

type actionableError struct {
	message      string
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

func (e *actionableError) Error() string {
	return e.message
}

func (e *actionableError) Category() ErrorCategory {
	return e.category
}

func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// FormatSuggestions formats an ActionableError's suggestions as a bulleted
// list for display. Returns an empty string for nil or non-actionable errors.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok || len(actionable.Suggestions()) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("Try these solutions:")
	for _, suggestion := range actionable.Suggestions() {
		builder.WriteString("\n  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}
