package filesystem

import (
	"os"
	"path/filepath"
)

// localScanner implements FileScanner over a local directory tree using
// filepath.Walk.
type localScanner struct {
	root    string
	filter  *ExcludeFilter
	files   []FileInfo
	index   int
	err     error
	scanned bool
}

// NewLocalScanner creates a scanner for the given local directory.
// filter may be nil to include everything.
func NewLocalScanner(root string, filter *ExcludeFilter) FileScanner {
	return &localScanner{
		root:   root,
		filter: filter,
		index:  -1,
	}
}

// Next advances to the next entry and returns its info.
func (s *localScanner) Next() (FileInfo, bool) {
	// Scan on first call
	if !s.scanned {
		s.scan()
		s.scanned = true
	}

	s.index++
	if s.index >= len(s.files) {
		return FileInfo{}, false
	}

	return s.files[s.index], true
}

// Err returns any error that occurred during scanning.
func (s *localScanner) Err() error {
	return s.err
}

// scan walks the tree and collects entries. Unreadable subtrees are skipped
// rather than failing the walk; the resulting stats are a best-effort snapshot.
func (s *localScanner) scan() {
	s.err = filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return nil
		}

		// Skip the root directory itself
		if relPath == "." {
			return nil
		}

		if s.filter.Excluded(relPath) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Count regular files only; symlinks and devices are the
		// external tool's concern during the mirror itself.
		if !info.IsDir() && !info.Mode().IsRegular() {
			return nil
		}

		s.files = append(s.files, FileInfo{
			RelativePath: relPath,
			Size:         info.Size(),
			IsDir:        info.IsDir(),
		})

		return nil
	})
}

// LocalStats scans a local folder and returns its statistics. A path that
// does not exist or cannot be read returns zero-valued stats.
func LocalStats(root string, filter *ExcludeFilter) FolderStats {
	if _, err := os.Stat(root); err != nil {
		return FolderStats{}
	}

	return ScanStats(NewLocalScanner(root, filter))
}

// Exists reports whether a local path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
