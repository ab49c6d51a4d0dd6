// Package logging sets up the run log: structured JSON to a per-run file,
// human-readable output on the console.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options controls the logger construction.
type Options struct {
	// LogFile overrides the default timestamped log file name. Empty means
	// librarymirror_<timestamp>.log in the working directory.
	LogFile string

	// Verbose lowers the console threshold from info to debug. The file
	// always records debug and up.
	Verbose bool

	// Console receives the human-readable stream; nil means stderr. Stdout
	// is reserved for the progress display and the final report.
	Console io.Writer

	// Quiet drops console output entirely, for when the live display owns
	// the terminal.
	Quiet bool
}

// DefaultLogFileName returns the timestamped per-run log file name.
func DefaultLogFileName(now time.Time) string {
	return fmt.Sprintf("librarymirror_%s.log", now.Format("20060102_150405"))
}

// New creates the run logger and returns it with a close function for the
// underlying log file.
func New(opts Options) (zerolog.Logger, func() error, error) {
	path := opts.LogFile
	if path == "" {
		path = DefaultLogFileName(time.Now())
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	writer := buildWriter(file, opts)
	logger := zerolog.New(writer).
		With().
		Timestamp().
		Logger()

	return logger, file.Close, nil
}

func buildWriter(file io.Writer, opts Options) io.Writer {
	if opts.Quiet {
		return file
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}
	leveled := leveledWriter{writer: consoleWriter, level: level}

	return zerolog.MultiLevelWriter(leveled, file)
}

// leveledWriter filters one branch of the multi-writer by level, so the
// console can stay at info while the file keeps everything.
type leveledWriter struct {
	writer io.Writer
	level  zerolog.Level
}

func (w leveledWriter) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

func (w leveledWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < w.level {
		return len(p), nil
	}

	return w.writer.Write(p)
}
