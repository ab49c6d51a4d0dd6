package mirror

import (
	"github.com/kliatsko/librarymirror/internal/config"
	"github.com/kliatsko/librarymirror/internal/robocopy"
	"github.com/kliatsko/librarymirror/pkg/filesystem"
)

// Event is the interface implemented by all mirror engine events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// SessionStarted is emitted once before the first folder.
type SessionStarted struct {
	FolderCount int
}

func (SessionStarted) isEvent() {}

// FolderStarted is emitted when a folder's pre-scan begins.
type FolderStarted struct {
	Index  int // 0-based position in the configured order
	Name   string
	Source string
	Dest   string
}

func (FolderStarted) isEvent() {}

// ScanComplete is emitted when both pre-operation scans finish for a folder.
type ScanComplete struct {
	Name   string
	Source filesystem.FolderStats
	Dest   filesystem.FolderStats
}

func (ScanComplete) isEvent() {}

// DryRunComplete is emitted when the list-only pre-pass finishes.
// FilesToProcess is a display estimate; the live pass may see a different
// count if the tree changes between passes.
type DryRunComplete struct {
	Name           string
	FilesToProcess int
}

func (DryRunComplete) isEvent() {}

// CopyProgress is emitted for every file line observed during the live pass.
type CopyProgress struct {
	Name     string
	Path     string
	Snapshot ProgressSnapshot
}

func (CopyProgress) isEvent() {}

// FolderComplete is emitted when a folder reaches a terminal state.
type FolderComplete struct {
	Result FolderResult
}

func (FolderComplete) isEvent() {}

// SessionComplete is emitted once after the last folder.
type SessionComplete struct {
	Result SessionResult
}

func (SessionComplete) isEvent() {}

// FolderStatus is the terminal state of one folder's run.
type FolderStatus int

// Exported constants.
const (
	// StatusDone means the mirror pass completed with a success exit code.
	StatusDone FolderStatus = iota
	// StatusSourceMissing means the source path did not exist; the folder
	// was skipped with zero stats.
	StatusSourceMissing
	// StatusSpawnFailed means the external tool could not be started.
	StatusSpawnFailed
	// StatusFailed means the external tool reported a failure exit code.
	StatusFailed
)

// String returns the report label for the status.
func (s FolderStatus) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusSourceMissing:
		return "skipped (source missing)"
	case StatusSpawnFailed:
		return "failed (could not start tool)"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FolderResult is one folder's row in the final report: the pre-scan stats,
// the reduced run stats, and the terminal status. A folder whose source is
// missing still appears here, with zero contribution to every total.
type FolderResult struct {
	Target         config.Target
	Source         filesystem.FolderStats
	Dest           filesystem.FolderStats
	FilesToProcess int
	Stats          robocopy.RunStats
	ExitCode       robocopy.ExitCode
	Status         FolderStatus
	Err            error
}

// Failed reports whether the folder terminated in a failing state.
func (r FolderResult) Failed() bool {
	return r.Status == StatusSpawnFailed || r.Status == StatusFailed
}
