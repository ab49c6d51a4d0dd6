package mirror

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kliatsko/librarymirror/internal/config"
	"github.com/kliatsko/librarymirror/internal/robocopy"
	apperrors "github.com/kliatsko/librarymirror/pkg/errors"
	"github.com/kliatsko/librarymirror/pkg/filesystem"
)

// Runner orchestrates the mirror of a single folder: pre-scan of both sides,
// a list-only dry pass to count the work, the live pass streaming the
// external tool's stdout, and the final summary reduction. Folders move
// through Scanning -> DryRun -> LiveRun -> Summarizing -> Done, with a
// SourceMissing short-circuit out of Scanning.
type Runner struct {
	Tool       robocopy.Tool
	RetryCount int
	RetryWait  int

	// ListOnly runs even the live pass in list-only mode: the whole run
	// changes nothing but still reports what it would have done.
	ListOnly bool

	Filter  *filesystem.ExcludeFilter
	Clock   Clock
	Log     zerolog.Logger
	emitter EventEmitter

	enricher apperrors.Enricher
}

// NewRunner creates a Runner around the given tool.
func NewRunner(tool robocopy.Tool, cfg *config.Config, log zerolog.Logger) *Runner {
	return &Runner{
		Tool:       tool,
		RetryCount: cfg.RetryCount,
		RetryWait:  cfg.RetryWait,
		ListOnly:   cfg.ListOnly,
		Filter:     filesystem.NewExcludeFilter(cfg.Exclude),
		Clock:      RealClock{},
		Log:        log,
		enricher:   apperrors.NewEnricher(),
	}
}

// SetEventEmitter sets the event emitter. The emitter is optional; if nil,
// no events are emitted.
func (r *Runner) SetEventEmitter(emitter EventEmitter) {
	r.emitter = emitter
}

func (r *Runner) emit(event Event) {
	if r.emitter != nil {
		r.emitter.Emit(event)
	}
}

// RunFolder mirrors one folder to completion and returns its result. Nothing
// here aborts the session: parse anomalies degrade to Unrecognized lines,
// spawn failures and failure exit codes are recorded on the result, and a
// missing source short-circuits to a zero-stats skip.
func (r *Runner) RunFolder(ctx context.Context, index int, target config.Target) FolderResult {
	r.emit(FolderStarted{Index: index, Name: target.Name, Source: target.Source, Dest: target.Dest})

	result := FolderResult{Target: target}

	// Scanning
	if !filesystem.Exists(target.Source) {
		r.Log.Warn().Str("folder", target.Name).Str("source", target.Source).
			Msg("source missing, folder skipped")
		result.Status = StatusSourceMissing
		r.emit(FolderComplete{Result: result})
		return result
	}

	result.Source, result.Dest, _ = ScanTarget(target, r.Filter)
	r.emit(ScanComplete{Name: target.Name, Source: result.Source, Dest: result.Dest})

	// DryRun: count the files the live pass is expected to touch. The
	// count is a progress-display estimate, never a correctness input.
	filesToProcess, err := r.dryRun(ctx, target)
	if err != nil {
		return r.spawnFailed(result, target, err)
	}
	result.FilesToProcess = filesToProcess
	r.emit(DryRunComplete{Name: target.Name, FilesToProcess: filesToProcess})

	// LiveRun + Summarizing
	return r.liveRun(ctx, target, result)
}

// dryRun invokes the tool in list-only mode and counts file-copy lines.
func (r *Runner) dryRun(ctx context.Context, target config.Target) (int, error) {
	inv := r.invocation(target)
	inv.ListOnly = true

	count := 0
	_, err := r.Tool.Run(ctx, inv, func(line string) {
		if _, ok := robocopy.Classify(line).(robocopy.FileCopied); ok {
			count++
		}
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// liveRun spawns the tool for real, streams its stdout through the
// classifier to drive progress, buffers every raw line, and reduces the
// buffer into the folder's RunStats once the process exits.
func (r *Runner) liveRun(ctx context.Context, target config.Target, result FolderResult) FolderResult {
	inv := r.invocation(target)
	inv.ListOnly = r.ListOnly

	start := r.Clock.Now()
	var (
		buffered       []string
		filesProcessed int
		bytesSoFar     int64
	)

	exitCode, err := r.Tool.Run(ctx, inv, func(line string) {
		buffered = append(buffered, line)

		event, ok := robocopy.Classify(line).(robocopy.FileCopied)
		if !ok {
			return
		}

		filesProcessed++
		bytesSoFar += event.Size

		snapshot := EstimateProgress(filesProcessed, result.FilesToProcess, bytesSoFar, r.Clock.Now().Sub(start))
		r.emit(CopyProgress{Name: target.Name, Path: event.Path, Snapshot: snapshot})
	})
	if err != nil {
		return r.spawnFailed(result, target, err)
	}

	result.Stats = robocopy.Reduce(buffered)
	result.ExitCode = exitCode

	// The exit code is authoritative for pass/fail; the parsed summary
	// counts are supplementary detail.
	if exitCode.Failed() {
		result.Status = StatusFailed
		r.Log.Error().Str("folder", target.Name).Stringer("exit", exitCode).
			Int("failed", result.Stats.FilesFailed).Msg("mirror pass failed")
	} else {
		result.Status = StatusDone
		r.Log.Info().Str("folder", target.Name).Stringer("exit", exitCode).
			Int("copied", result.Stats.FilesCopied).
			Int("skipped", result.Stats.FilesSkipped).
			Int("deleted", result.Stats.FilesDeleted).
			Int64("bytes", result.Stats.BytesCopied).
			Msg("mirror pass complete")
	}

	r.emit(FolderComplete{Result: result})
	return result
}

// spawnFailed records a tool-start failure: fatal to this folder only.
func (r *Runner) spawnFailed(result FolderResult, target config.Target, err error) FolderResult {
	result.Status = StatusSpawnFailed
	result.Err = r.enricher.Enrich(err, target.Source)
	r.Log.Error().Str("folder", target.Name).Err(err).Msg("could not run mirror tool")
	r.emit(FolderComplete{Result: result})
	return result
}

func (r *Runner) invocation(target config.Target) robocopy.Invocation {
	return robocopy.Invocation{
		Source:     target.Source,
		Dest:       target.Dest,
		RetryCount: r.RetryCount,
		RetryWait:  r.RetryWait,
	}
}
