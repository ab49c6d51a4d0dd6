// Package config handles application configuration: command-line argument
// parsing and the mirror target list file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/kliatsko/librarymirror/pkg/filesystem"
)

// Exported constants.
const (
	// DefaultRetryCount bounds the external tool's per-file retry loop.
	DefaultRetryCount = 3
	// DefaultRetryWait is the seconds the external tool waits between retries.
	DefaultRetryWait = 2
)

// Target is one folder to mirror: a display name, a source tree, and a backup
// destination. Constructed from configuration and consumed read-only.
type Target struct {
	Name   string `mapstructure:"name"`
	Source string `mapstructure:"source"`
	Dest   string `mapstructure:"dest"`
}

// Config holds the application configuration.
type Config struct {
	SourcePath string   `arg:"-s,--source" help:"Source directory for a single-folder run"`
	DestPath   string   `arg:"-d,--dest" help:"Backup destination for a single-folder run"`
	Name       string   `arg:"--name" help:"Display name for a single-folder run (default: source base name)"`
	ConfigFile string   `arg:"-c,--config" help:"Target-list config file (default: $HOME/.librarymirror.yaml)"`
	ToolPath   string   `arg:"--tool" help:"Path to the mirroring executable (default: discovered)"`
	RetryCount int      `arg:"--retry-count" default:"3" help:"Per-file retry count passed to the mirroring tool"`
	RetryWait  int      `arg:"--retry-wait" default:"2" help:"Seconds between retries passed to the mirroring tool"`
	Exclude    []string `arg:"--exclude,separate" help:"Glob pattern excluded from pre-scan counts (repeatable)"`
	ScanOnly   bool     `arg:"--scan-only" help:"Only report source/destination statistics, mirror nothing"`
	ListOnly   bool     `arg:"--list-only" help:"Run every folder in list-only mode, change nothing"`
	NoTUI      bool     `arg:"--no-tui" help:"Disable the live progress display"`
	LogFile    string   `arg:"--log-file" help:"Run log path (default: librarymirror_<timestamp>.log)"`
	Verbose    bool     `arg:"-v,--verbose" help:"Verbose console logging"`

	// Targets is the ordered folder list resolved from flags or the config
	// file. Report order follows this order.
	Targets []Target `arg:"-"`
}

// Description returns the program description for go-arg.
func (Config) Description() string {
	return "Mirror media library folders to a backup destination with live progress and per-folder statistics"
}

// Version returns the version string for go-arg.
func (Config) Version() string {
	return "librarymirror 1.0.0"
}

// ParseFlags parses command-line flags and resolves the target list.
func ParseFlags() (*Config, error) {
	cfg := &Config{
		RetryCount: DefaultRetryCount,
		RetryWait:  DefaultRetryWait,
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig resolves the target list from flags or the config file
// and validates it. An empty or invalid target list is the one fatal
// configuration error: nothing has been attempted yet, so there is nothing
// to record as skipped.
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.SourcePath != "" || cfg.DestPath != "" {
		if cfg.SourcePath == "" || cfg.DestPath == "" {
			return nil, fmt.Errorf("single-folder mode needs both --source and --dest")
		}

		name := cfg.Name
		if name == "" {
			name = filepath.Base(cfg.SourcePath)
		}

		cfg.Targets = []Target{{Name: name, Source: cfg.SourcePath, Dest: cfg.DestPath}}
	} else {
		targets, err := LoadTargets(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.Targets = targets
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the resolved target list.
func (cfg *Config) Validate() error {
	if len(cfg.Targets) == 0 {
		return fmt.Errorf("no mirror targets configured (use --source/--dest or a targets config file)")
	}

	if cfg.RetryCount < 0 || cfg.RetryWait < 0 {
		return fmt.Errorf("retry count and wait must be non-negative")
	}

	for i := range cfg.Targets {
		target := &cfg.Targets[i]

		if target.Source == "" || target.Dest == "" {
			return fmt.Errorf("target %d: source and dest are required", i+1)
		}

		if target.Name == "" {
			target.Name = filepath.Base(target.Source)
		}

		if strings.HasPrefix(target.Source, "sftp://") {
			return fmt.Errorf("target %q: sftp:// sources are not supported", target.Name)
		}

		parsed, err := filesystem.ParsePath(target.Dest)
		if err != nil {
			return fmt.Errorf("target %q: %w", target.Name, err)
		}

		// The external tool only takes local or UNC paths; remote
		// destinations can be scanned and reported but not mirrored.
		if parsed.IsRemote && !cfg.ScanOnly {
			return fmt.Errorf("target %q: sftp:// destinations require --scan-only", target.Name)
		}
	}

	return nil
}
