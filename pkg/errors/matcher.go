package errors

import "strings"

// PatternMatcher maps error messages to a category using substring patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a PatternMatcher covering the failures a mirror
// run actually produces: the tool not starting, and the access/path/space/
// network errors its exit summary hints at.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: map[ErrorCategory][]string{
			CategorySpawn: {
				"executable file not found",
				"exec format error",
			},
			CategoryPermission: {
				"permission denied",
				"access denied",
				"access is denied",
				"operation not permitted",
			},
			CategoryDiskSpace: {
				"no space left on device",
				"disk full",
				"not enough space",
				"quota exceeded",
			},
			CategoryPath: {
				"no such file or directory",
				"file not found",
				"path not found",
				"path does not exist",
			},
			CategoryNetwork: {
				"network path was not found",
				"network name cannot be found",
				"connection reset",
				"broken pipe",
				"i/o timeout",
			},
		},
	}
}

type patternMatcher struct {
	patterns map[ErrorCategory][]string
}

// Match returns the category whose patterns match the message, or
// CategoryUnknown when nothing matches.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for category, patterns := range m.patterns {
		for _, pattern := range patterns {
			if strings.Contains(lowerMsg, pattern) {
				return category
			}
		}
	}

	return CategoryUnknown
}
