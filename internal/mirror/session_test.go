package mirror_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Gomega convention

	"github.com/kliatsko/librarymirror/internal/config"
	"github.com/kliatsko/librarymirror/internal/mirror"
	"github.com/kliatsko/librarymirror/internal/robocopy"
)

func newTestSession(tool robocopy.Tool, targets []config.Target, scanOnly bool) *mirror.Session {
	cfg := &config.Config{RetryCount: 3, RetryWait: 2, Targets: targets, ScanOnly: scanOnly}
	return mirror.NewSession(newTestRunner(tool), cfg)
}

func TestSessionAggregatesFolderStatsExactly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	sources := []string{t.TempDir(), t.TempDir(), t.TempDir()}
	tool := newScriptedTool()
	tool.script(sources[0], folderScript{
		liveLines: []string{
			"   Files :        50        10        40         0         0         0",
			"   Bytes :   1000",
			"   Extras :        2",
		},
		exitCode: robocopy.ExitCode(3),
	})
	tool.script(sources[1], folderScript{
		liveLines: []string{
			"   Files :        30         0        29         0         1         0",
			"   Bytes :   0",
		},
		exitCode: robocopy.ExitCode(8),
	})
	tool.script(sources[2], folderScript{
		liveLines: []string{
			"   Files :        20         5        15         0         0         0",
			"   Bytes :   500",
			"   Extras :        1",
		},
		exitCode: robocopy.ExitCode(1),
	})

	targets := []config.Target{
		{Name: "Movies", Source: sources[0], Dest: t.TempDir()},
		{Name: "Shows", Source: sources[1], Dest: t.TempDir()},
		{Name: "Music", Source: sources[2], Dest: t.TempDir()},
	}

	session := newTestSession(tool, targets, false)
	result := session.Run(context.Background())

	g.Expect(result.Folders).To(HaveLen(3))
	g.Expect(result.Folders[0].Target.Name).To(Equal("Movies"))
	g.Expect(result.Folders[1].Status).To(Equal(mirror.StatusFailed))
	g.Expect(result.Folders[2].Status).To(Equal(mirror.StatusDone))

	// total of every folder's stats, the failed one included
	g.Expect(result.Totals).To(Equal(robocopy.RunStats{
		FilesCopied:  15,
		FilesSkipped: 84,
		FilesDeleted: 3,
		FilesFailed:  1,
		BytesCopied:  1500,
	}))

	g.Expect(result.Failed()).To(BeTrue())
	g.Expect(result.Elapsed).To(BeNumerically(">", 0))
}

func TestSessionTwoFolderEndToEnd(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	movies := t.TempDir()
	shows := t.TempDir()

	tool := newScriptedTool()
	tool.script(movies, folderScript{
		dryLines: []string{
			"         1048576   Movies/new1.mkv",
			"          524288   Movies/new2.mkv",
		},
		liveLines: []string{
			"         1048576   Movies/new1.mkv",
			"          524288   Movies/new2.mkv",
			"   Files :       120         2       118         0         0         0",
			"   Bytes :   1572864",
		},
		exitCode: robocopy.ExitCode(1),
	})
	tool.script(shows, folderScript{
		liveLines: []string{
			"   Files :        80         0        80         0         0         0",
			"   Bytes :   0",
			"   Extras :        3",
		},
		exitCode: robocopy.ExitCode(2),
	})

	targets := []config.Target{
		{Name: "Movies", Source: movies, Dest: t.TempDir()},
		{Name: "Shows", Source: shows, Dest: t.TempDir()},
	}

	session := newTestSession(tool, targets, false)
	result := session.Run(context.Background())

	g.Expect(result.Folders[0].FilesToProcess).To(Equal(2))
	g.Expect(result.Folders[0].Stats.FilesCopied).To(Equal(2))
	g.Expect(result.Folders[0].Stats.FilesSkipped).To(Equal(118))
	g.Expect(result.Folders[1].Stats.FilesDeleted).To(Equal(3))
	g.Expect(result.Failed()).To(BeFalse())

	g.Expect(result.Totals).To(Equal(robocopy.RunStats{
		FilesCopied:  2,
		FilesSkipped: 198,
		FilesDeleted: 3,
		BytesCopied:  1572864,
	}))
}

func TestSessionMissingSourceContributesZeroes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	good := t.TempDir()
	tool := newScriptedTool()
	tool.script(good, folderScript{
		liveLines: []string{
			"   Files :        10         4         6         0         0         0",
			"   Bytes :   2048",
		},
		exitCode: robocopy.ExitCode(1),
	})

	targets := []config.Target{
		{Name: "Gone", Source: "/no/such/library", Dest: t.TempDir()},
		{Name: "Movies", Source: good, Dest: t.TempDir()},
	}

	session := newTestSession(tool, targets, false)
	result := session.Run(context.Background())

	g.Expect(result.Folders).To(HaveLen(2))
	g.Expect(result.Folders[0].Status).To(Equal(mirror.StatusSourceMissing))
	g.Expect(result.Folders[0].Stats).To(Equal(robocopy.RunStats{}))

	// a skipped folder neither fails the session nor touches the totals
	g.Expect(result.Failed()).To(BeFalse())
	g.Expect(result.Totals).To(Equal(robocopy.RunStats{
		FilesCopied:  4,
		FilesSkipped: 6,
		BytesCopied:  2048,
	}))
}

func TestSessionScanOnlyNeverSpawnsTheTool(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source := t.TempDir()
	g.Expect(os.WriteFile(filepath.Join(source, "a.mkv"), make([]byte, 2048), 0o600)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(source, "b.mkv"), make([]byte, 1024), 0o600)).To(Succeed())

	tool := newScriptedTool()
	targets := []config.Target{{Name: "Movies", Source: source, Dest: t.TempDir()}}

	session := newTestSession(tool, targets, true)
	result := session.Run(context.Background())

	g.Expect(tool.invocations).To(BeEmpty())
	g.Expect(result.Folders).To(HaveLen(1))
	g.Expect(result.Folders[0].Status).To(Equal(mirror.StatusDone))
	g.Expect(result.Folders[0].Source.FileCount).To(Equal(2))
	g.Expect(result.Folders[0].Source.TotalBytes).To(Equal(int64(3072)))
	g.Expect(result.Folders[0].Dest.FileCount).To(BeZero())
}

func TestSessionEmitsLifecycleEvents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source := t.TempDir()
	tool := newScriptedTool()
	tool.script(source, folderScript{exitCode: robocopy.ExitCode(0)})

	targets := []config.Target{{Name: "Movies", Source: source, Dest: t.TempDir()}}
	session := newTestSession(tool, targets, false)

	recorder := &eventRecorder{}
	session.SetEventEmitter(recorder)

	result := session.Run(context.Background())

	g.Expect(recorder.events[0]).To(Equal(mirror.SessionStarted{FolderCount: 1}))

	last, ok := recorder.events[len(recorder.events)-1].(mirror.SessionComplete)
	g.Expect(ok).To(BeTrue())
	g.Expect(last.Result.Folders).To(HaveLen(1))
	g.Expect(last.Result.Totals).To(Equal(result.Totals))
}
