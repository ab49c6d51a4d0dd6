package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Gomega convention

	"github.com/kliatsko/librarymirror/internal/config"
)

func TestPostProcessConfig_SingleFolderMode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{
		SourcePath: "/media/Movies",
		DestPath:   "/mnt/backup/Movies",
		RetryCount: config.DefaultRetryCount,
		RetryWait:  config.DefaultRetryWait,
	}

	resolved, err := config.PostProcessConfig(cfg)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(resolved.Targets).To(HaveLen(1))
	g.Expect(resolved.Targets[0]).To(Equal(config.Target{
		Name:   "Movies",
		Source: "/media/Movies",
		Dest:   "/mnt/backup/Movies",
	}))
}

func TestPostProcessConfig_SourceWithoutDest(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{SourcePath: "/media/Movies"}

	_, err := config.PostProcessConfig(cfg)

	g.Expect(err).To(HaveOccurred())
}

func TestValidate_EmptyTargetListIsFatal(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{}

	g.Expect(cfg.Validate()).To(HaveOccurred())
}

func TestValidate_NamesDefaultToSourceBase(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{
		Targets: []config.Target{{Source: "/media/Shows", Dest: "/mnt/backup/Shows"}},
	}

	g.Expect(cfg.Validate()).ToNot(HaveOccurred())
	g.Expect(cfg.Targets[0].Name).To(Equal("Shows"))
}

func TestValidate_RemoteDestNeedsScanOnly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{
		Targets: []config.Target{{Name: "Movies", Source: "/media/Movies", Dest: "sftp://nick@nas.local/backup"}},
	}

	g.Expect(cfg.Validate()).To(HaveOccurred())

	cfg.ScanOnly = true
	g.Expect(cfg.Validate()).ToNot(HaveOccurred())
}

func TestValidate_RemoteSourceRejected(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{
		ScanOnly: true,
		Targets:  []config.Target{{Name: "Movies", Source: "sftp://nick@nas.local/media", Dest: "/mnt/backup"}},
	}

	g.Expect(cfg.Validate()).To(HaveOccurred())
}

func TestLoadTargets_ReadsOrderedList(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "targets.yaml")
	content := `targets:
  - name: Movies
    source: /media/Movies
    dest: /mnt/backup/Movies
  - name: Shows
    source: /media/Shows
    dest: /mnt/backup/Shows
`
	g.Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

	targets, err := config.LoadTargets(path)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(targets).To(Equal([]config.Target{
		{Name: "Movies", Source: "/media/Movies", Dest: "/mnt/backup/Movies"},
		{Name: "Shows", Source: "/media/Shows", Dest: "/mnt/backup/Shows"},
	}))
}

func TestLoadTargets_MissingFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := config.LoadTargets(filepath.Join(t.TempDir(), "nope.yaml"))

	g.Expect(err).To(HaveOccurred())
}
