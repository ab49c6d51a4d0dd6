package mirror

import (
	"math"
	"time"

	"github.com/kliatsko/librarymirror/pkg/formatters"
)

// ProgressSnapshot is the live-pass progress state, recomputed on every
// observed file line and never persisted.
type ProgressSnapshot struct {
	FilesProcessed int
	FilesToProcess int
	BytesSoFar     int64
	Elapsed        time.Duration

	// ETASeconds is valid only when HasETA is true. An estimate with zero
	// samples is not a valid estimate and is omitted rather than fabricated,
	// so there is no ETA before the first file or once the count is reached.
	ETASeconds int64
	HasETA     bool
}

// EstimateProgress computes a snapshot from cumulative counters. The
// files-to-process total comes from the list-only pre-pass and is a display
// estimate only; the percentage clamps rather than overflowing when the live
// pass sees more files than the dry pass did.
func EstimateProgress(filesProcessed, filesToProcess int, bytesSoFar int64, elapsed time.Duration) ProgressSnapshot {
	snapshot := ProgressSnapshot{
		FilesProcessed: filesProcessed,
		FilesToProcess: filesToProcess,
		BytesSoFar:     bytesSoFar,
		Elapsed:        elapsed,
	}

	if filesProcessed == 0 || filesProcessed >= filesToProcess {
		return snapshot
	}

	avgSecondsPerFile := elapsed.Seconds() / float64(filesProcessed)
	remaining := float64(filesToProcess - filesProcessed)
	snapshot.ETASeconds = int64(math.Round(avgSecondsPerFile * remaining))
	snapshot.HasETA = true

	return snapshot
}

// Percent returns completion as a percentage rounded to one decimal place,
// guarded to 0 when there is nothing to process and clamped to 100.
func (s ProgressSnapshot) Percent() float64 {
	if s.FilesToProcess == 0 {
		return 0
	}

	percent := float64(s.FilesProcessed) / float64(s.FilesToProcess) * 100
	if percent > 100 {
		percent = 100
	}

	return math.Round(percent*10) / 10
}

// ETA returns the formatted time-remaining estimate, or an empty string when
// no valid estimate exists.
func (s ProgressSnapshot) ETA() string {
	if !s.HasETA {
		return ""
	}

	return formatters.FormatETA(s.ETASeconds)
}
