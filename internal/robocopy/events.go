// Package robocopy owns the invocation and output contract of the external
// mirroring utility: building its argument list, classifying its line-oriented
// stdout stream into typed events, reducing its terminal summary block, and
// interpreting its bit-flag exit codes.
package robocopy

// Event is the interface implemented by all classified output-line events.
type Event interface {
	isEvent()
}

// FileCopied is a per-file line from the live stream: a byte count followed by
// the file path. One is emitted for every file the tool lists or copies.
type FileCopied struct {
	Size int64
	Path string
}

func (FileCopied) isEvent() {}

// SummaryFiles is the file-count row of the terminal summary block. Of the six
// positional columns (total, copied, skipped, mismatch, failed, extras) only
// copied, skipped, and failed are retained here.
type SummaryFiles struct {
	Copied  int
	Skipped int
	Failed  int
}

func (SummaryFiles) isEvent() {}

// SummaryBytes is the byte-count row of the terminal summary block.
type SummaryBytes struct {
	Copied int64
}

func (SummaryBytes) isEvent() {}

// SummaryExtras is the extras row of the terminal summary block: files present
// at the destination but absent from the source, deleted during a mirror.
type SummaryExtras struct {
	Deleted int
}

func (SummaryExtras) isEvent() {}

// Unrecognized is any line that matches no known shape. It is a normal,
// silent outcome - display noise from the tool - never an error.
type Unrecognized struct{}

func (Unrecognized) isEvent() {}
