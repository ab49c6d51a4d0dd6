package robocopy

import (
	"fmt"
	"strings"
)

// ExitCode is the external tool's bit-flag exit status. Values below the
// failure threshold are success variants whose bits are informational; values
// at or above it mean the operation hit failures (mismatches it could not
// resolve, access denied, fatal errors).
type ExitCode int

// Exported constants.
const (
	// FlagCopied is set when at least one file was copied.
	FlagCopied ExitCode = 1
	// FlagExtras is set when extra files or directories were detected.
	FlagExtras ExitCode = 2
	// FlagMismatches is set when mismatched files or directories were detected.
	FlagMismatches ExitCode = 4
	// FailureThreshold is the first exit code that indicates failure.
	FailureThreshold ExitCode = 8
)

// Failed reports whether the exit code indicates the operation encountered
// failures. The exit code is authoritative for the failed/success
// classification; summary counts are supplementary detail.
func (c ExitCode) Failed() bool {
	return c >= FailureThreshold
}

// CopiedFiles reports whether the copied-files informational bit is set.
func (c ExitCode) CopiedFiles() bool {
	return c&FlagCopied != 0
}

// FoundExtras reports whether the extras informational bit is set.
func (c ExitCode) FoundExtras() bool {
	return c&FlagExtras != 0
}

// FoundMismatches reports whether the mismatches informational bit is set.
func (c ExitCode) FoundMismatches() bool {
	return c&FlagMismatches != 0
}

// String renders the code with its decoded meaning, for logs and reports.
func (c ExitCode) String() string {
	if c.Failed() {
		return fmt.Sprintf("%d (failed)", int(c))
	}

	var flags []string
	if c.CopiedFiles() {
		flags = append(flags, "copied")
	}
	if c.FoundExtras() {
		flags = append(flags, "extras")
	}
	if c.FoundMismatches() {
		flags = append(flags, "mismatches")
	}

	if len(flags) == 0 {
		return fmt.Sprintf("%d (no changes)", int(c))
	}

	return fmt.Sprintf("%d (%s)", int(c), strings.Join(flags, ", "))
}
