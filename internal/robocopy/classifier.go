package robocopy

import (
	"regexp"
	"strconv"
	"strings"
)

// unexported variables.
var (
	// A file-copy line: leading whitespace, a decimal byte count, whitespace,
	// then the file path for the rest of the line.
	fileCopiedPattern = regexp.MustCompile(`^\s*(\d+)\s+(\S.*)$`)

	// The Files summary row: label, then exactly six positional integers
	// (total, copied, skipped, mismatch, failed, extras).
	summaryFilesPattern = regexp.MustCompile(`^\s*Files\s*:?\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s*$`)

	// The Bytes summary row: label, a numeric value, and an optional
	// power-of-two unit suffix.
	summaryBytesPattern = regexp.MustCompile(`^\s*Bytes\s*:?\s+(\d+(?:\.\d+)?)\s*([tgmkTGMK])?(?:\s|$)`)

	// The Extras summary row: label and the deleted-from-destination count.
	summaryExtrasPattern = regexp.MustCompile(`^\s*Extras\s*:?\s+(\d+)\b`)
)

// byteSuffixMultipliers maps the tool's unit suffixes to power-of-two
// multipliers.
var byteSuffixMultipliers = map[string]float64{
	"k": 1 << 10,
	"m": 1 << 20,
	"g": 1 << 30,
	"t": 1 << 40,
}

// Classify parses one line of the tool's stdout stream into a typed event.
// Lines that match no recognized shape classify as Unrecognized and are
// otherwise ignored; format drift in the tool's output is never fatal.
//
// Summary rows are checked before file-copy lines: the positional patterns are
// strictly more specific, and a malformed summary row must not be mistaken for
// a file named like a number.
func Classify(line string) Event {
	if match := summaryFilesPattern.FindStringSubmatch(line); match != nil {
		return SummaryFiles{
			Copied:  mustAtoi(match[2]),
			Skipped: mustAtoi(match[3]),
			Failed:  mustAtoi(match[5]),
		}
	}

	if match := summaryExtrasPattern.FindStringSubmatch(line); match != nil {
		return SummaryExtras{Deleted: mustAtoi(match[1])}
	}

	if match := summaryBytesPattern.FindStringSubmatch(line); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return Unrecognized{}
		}

		if suffix := strings.ToLower(match[2]); suffix != "" {
			value *= byteSuffixMultipliers[suffix]
		}

		return SummaryBytes{Copied: int64(value)}
	}

	if match := fileCopiedPattern.FindStringSubmatch(line); match != nil {
		size, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			// Overflows a signed 64-bit count; nothing real gets here
			return Unrecognized{}
		}

		path := strings.TrimSpace(match[2])
		if path == "" {
			return Unrecognized{}
		}

		return FileCopied{Size: size, Path: path}
	}

	return Unrecognized{}
}

// mustAtoi converts a digits-only regex capture. The pattern guarantees the
// parse succeeds for any count that fits an int.
func mustAtoi(digits string) int {
	value, _ := strconv.Atoi(digits)
	return value
}
