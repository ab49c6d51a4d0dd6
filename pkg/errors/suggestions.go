package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions for an error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

type suggestionGenerator struct{}

// Generate returns suggestions for the category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategorySpawn:
		return []string{
			"Verify the mirroring tool is installed and on PATH",
			"Point at the executable explicitly with --tool",
		}
	case CategoryPermission:
		suggestions := []string{
			"Ensure you have read access to the source and write access to the destination",
		}
		if affectedPath != "" {
			suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", affectedPath))
		}
		return append(suggestions, "Re-run with appropriate permissions or as a privileged user")
	case CategoryDiskSpace:
		return []string{
			"Free up space on the backup destination",
			"Check available space with 'df -h'",
			"Exclude large junk folders with --exclude to shrink the mirror",
		}
	case CategoryPath:
		suggestions := []string{
			"Verify the configured source and destination paths are spelled correctly",
		}
		if affectedPath != "" {
			suggestions = append(suggestions, "Check that the path exists: "+affectedPath)
		}
		return append(suggestions, "A missing source is skipped automatically; a missing destination parent is not")
	case CategoryNetwork:
		return []string{
			"Check that the backup share or host is reachable",
			"Remount the network path and re-run; completed folders are skipped on the next pass",
			"Raise --retry-count / --retry-wait for flaky links",
		}
	default:
		suggestions := []string{
			"Check the run log for per-file detail",
			"Verify permissions and free space on both sides",
		}
		if affectedPath != "" {
			suggestions = append(suggestions, "Verify the path is accessible: "+affectedPath)
		}
		return suggestions
	}
}
