package filesystem

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExcludeFilter drops entries whose relative path or base name matches any of
// a set of glob patterns. Matching is case-insensitive so that release-junk
// patterns like "*sample*" catch "SAMPLE.mkv" too.
type ExcludeFilter struct {
	patterns []string
}

// NewExcludeFilter creates a filter from the given doublestar patterns.
// A nil or empty pattern list excludes nothing.
func NewExcludeFilter(patterns []string) *ExcludeFilter {
	normalized := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		normalized = append(normalized, strings.ToLower(pattern))
	}

	return &ExcludeFilter{patterns: normalized}
}

// Excluded returns true if the entry at relativePath matches any pattern.
func (f *ExcludeFilter) Excluded(relativePath string) bool {
	if f == nil || len(f.patterns) == 0 {
		return false
	}

	// doublestar expects forward slashes regardless of platform
	normalizedPath := strings.ToLower(filepath.ToSlash(relativePath))
	baseName := strings.ToLower(filepath.Base(relativePath))

	for _, pattern := range f.patterns {
		if matched, err := doublestar.Match(pattern, normalizedPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, baseName); err == nil && matched {
			return true
		}
	}

	return false
}
