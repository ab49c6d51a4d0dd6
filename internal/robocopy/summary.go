package robocopy

// RunStats is the machine-usable result record for one folder's mirror pass,
// reduced from the tool's terminal summary block. Every field defaults to
// zero when the block is absent or unparseable; absence of data is zero,
// not an error.
type RunStats struct {
	FilesCopied  int
	FilesSkipped int
	FilesDeleted int
	FilesFailed  int
	BytesCopied  int64
}

// Add accumulates another folder's stats field-wise.
func (s *RunStats) Add(other RunStats) {
	s.FilesCopied += other.FilesCopied
	s.FilesSkipped += other.FilesSkipped
	s.FilesDeleted += other.FilesDeleted
	s.FilesFailed += other.FilesFailed
	s.BytesCopied += other.BytesCopied
}

// Reduce folds the buffered output lines of one invocation into a RunStats.
// If the tool re-emits a summary row, the last one observed wins; summaries
// are not additive within a single invocation.
func Reduce(lines []string) RunStats {
	var stats RunStats

	for _, line := range lines {
		switch event := Classify(line).(type) {
		case SummaryFiles:
			stats.FilesCopied = event.Copied
			stats.FilesSkipped = event.Skipped
			stats.FilesFailed = event.Failed
		case SummaryBytes:
			stats.BytesCopied = event.Copied
		case SummaryExtras:
			stats.FilesDeleted = event.Deleted
		}
	}

	return stats
}
