package mirror

import (
	"context"
	"time"

	"github.com/kliatsko/librarymirror/internal/config"
	"github.com/kliatsko/librarymirror/internal/robocopy"
	"github.com/kliatsko/librarymirror/pkg/filesystem"
)

// SessionResult aggregates a whole run: one FolderResult per configured
// target, in configuration order, plus field-wise totals and the session's
// wall-clock elapsed time.
type SessionResult struct {
	Folders []FolderResult
	Totals  robocopy.RunStats
	Elapsed time.Duration
}

// Failed returns true if any folder failed. Skipped folders (missing source)
// do not fail the session.
func (s SessionResult) Failed() bool {
	for _, folder := range s.Folders {
		if folder.Failed() {
			return true
		}
	}

	return false
}

// Session runs the configured targets one after another. Folders are never
// mirrored concurrently: the disks on either side are the bottleneck and
// interleaved mirrors would only fragment both.
type Session struct {
	Runner  *Runner
	Targets []config.Target

	// ScanOnly reports source and destination statistics without invoking
	// the mirror tool at all.
	ScanOnly bool

	emitter EventEmitter
}

// NewSession creates a Session over the resolved target list.
func NewSession(runner *Runner, cfg *config.Config) *Session {
	return &Session{
		Runner:   runner,
		Targets:  cfg.Targets,
		ScanOnly: cfg.ScanOnly,
	}
}

// SetEventEmitter sets the event emitter for the session and its runner.
func (s *Session) SetEventEmitter(emitter EventEmitter) {
	s.emitter = emitter
	s.Runner.SetEventEmitter(emitter)
}

func (s *Session) emit(event Event) {
	if s.emitter != nil {
		s.emitter.Emit(event)
	}
}

// Run mirrors every target sequentially and returns the aggregated result.
// Elapsed time is measured once around the whole loop, so per-folder scan
// and summary overhead is included rather than lost between folders.
func (s *Session) Run(ctx context.Context) SessionResult {
	s.emit(SessionStarted{FolderCount: len(s.Targets)})

	start := s.Runner.Clock.Now()
	result := SessionResult{Folders: make([]FolderResult, 0, len(s.Targets))}

	for index, target := range s.Targets {
		var folder FolderResult
		if s.ScanOnly {
			folder = s.scanFolder(index, target)
		} else {
			folder = s.Runner.RunFolder(ctx, index, target)
		}

		result.Folders = append(result.Folders, folder)
		result.Totals.Add(folder.Stats)
	}

	result.Elapsed = s.Runner.Clock.Now().Sub(start)
	s.emit(SessionComplete{Result: result})

	return result
}

// scanFolder reports statistics for one target without running the tool.
func (s *Session) scanFolder(index int, target config.Target) FolderResult {
	s.emit(FolderStarted{Index: index, Name: target.Name, Source: target.Source, Dest: target.Dest})

	result := FolderResult{Target: target}

	if !filesystem.Exists(target.Source) {
		result.Status = StatusSourceMissing
		s.emit(FolderComplete{Result: result})
		return result
	}

	source, dest, err := ScanTarget(target, s.Runner.Filter)
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		s.emit(FolderComplete{Result: result})
		return result
	}

	result.Source = source
	result.Dest = dest
	result.Status = StatusDone
	s.emit(ScanComplete{Name: target.Name, Source: source, Dest: dest})
	s.emit(FolderComplete{Result: result})

	return result
}
