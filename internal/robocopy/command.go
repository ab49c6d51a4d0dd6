package robocopy

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// DefaultToolName is the executable searched for when no explicit tool path
// is configured.
const DefaultToolName = "robocopy"

// wellKnownToolPaths are checked before falling back to PATH lookup.
var wellKnownToolPaths = []string{
	`C:\Windows\System32\Robocopy.exe`,
	"/usr/bin/robocopy",
	"/usr/local/bin/robocopy",
	"/opt/homebrew/bin/robocopy",
}

// Invocation describes one run of the external tool against a single folder.
type Invocation struct {
	Source string
	Dest   string

	// RetryCount and RetryWait bound the tool's own per-file retry loop.
	RetryCount int
	RetryWait  int

	// ListOnly requests the dry-run variant: list what would change,
	// change nothing. Used for the pre-pass file count.
	ListOnly bool
}

// Args builds the tool's argument list: positional source and destination,
// then the fixed flag set this system always passes - full mirror with
// deletion, bounded retry, no junction traversal, byte-exact size reporting,
// and suppressed directory/class/percentage noise so the stream stays
// parseable.
func (inv Invocation) Args() []string {
	args := []string{
		inv.Source,
		inv.Dest,
		"/MIR",
		"/R:" + strconv.Itoa(inv.RetryCount),
		"/W:" + strconv.Itoa(inv.RetryWait),
		"/XJ",
		"/BYTES",
		"/NDL",
		"/NC",
		"/NP",
	}

	if inv.ListOnly {
		args = append(args, "/L")
	}

	return args
}

// FindTool resolves the external tool executable. An explicit override is
// verified and returned as-is; otherwise well-known install locations are
// checked first, then PATH.
func FindTool(override string) (string, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", fmt.Errorf("mirror tool not found at %s: %w", override, err)
		}
		return override, nil
	}

	for _, path := range wellKnownToolPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	path, err := exec.LookPath(DefaultToolName)
	if err != nil {
		return "", fmt.Errorf("mirror tool %q not found on PATH: %w", DefaultToolName, err)
	}

	return path, nil
}
