package robocopy

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// maxLineBytes bounds a single output line. Paths are the longest thing the
// tool prints; a megabyte is far beyond any real path.
const maxLineBytes = 1 << 20

// Tool runs the external mirroring utility and streams its stdout back one
// line at a time. The onLine callback is invoked synchronously for every line
// as it is produced, so the caller can render progress while the operation is
// in flight; ordering is preserved because there is exactly one consumer.
//
// Implementations return the tool's exit code and a non-nil error only for
// spawn or stream failures - a failure exit code is a result, not an error.
type Tool interface {
	Run(ctx context.Context, inv Invocation, onLine func(string)) (ExitCode, error)
}

// ExecTool is the production Tool: it spawns the resolved executable as a
// child process.
type ExecTool struct {
	Path string
}

// NewExecTool creates an ExecTool for the executable at path.
func NewExecTool(path string) *ExecTool {
	return &ExecTool{Path: path}
}

// Run spawns the tool and blocks reading its stdout line by line until the
// stream ends, then reaps the process and returns its exit code. Cancelling
// the context kills the child; there is no finer-grained cancellation.
func (t *ExecTool) Run(ctx context.Context, inv Invocation, onLine func(string)) (ExitCode, error) {
	cmd := exec.CommandContext(ctx, t.Path, inv.Args()...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", t.Path, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	for scanner.Scan() {
		onLine(scanner.Text())
	}
	scanErr := scanner.Err()

	waitErr := cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		// Non-zero exit is the normal case for this tool; the code
		// carries the result and is interpreted by the caller.
		return ExitCode(exitErr.ExitCode()), scanErr
	}
	if waitErr != nil {
		return 0, fmt.Errorf("wait for %s: %w", t.Path, waitErr)
	}

	return 0, scanErr
}
