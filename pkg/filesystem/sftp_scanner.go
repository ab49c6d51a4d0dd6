package filesystem

import (
	"path"

	"github.com/kr/fs"
	"github.com/pkg/sftp"
)

// sftpScanner implements FileScanner over a remote tree using the SFTP
// client's walker.
type sftpScanner struct {
	walker *fs.Walker
	root   string
	filter *ExcludeFilter
	err    error
}

// NewSFTPScanner creates a scanner over the remote tree rooted at root.
// filter may be nil to include everything.
func NewSFTPScanner(client *sftp.Client, root string, filter *ExcludeFilter) FileScanner {
	return &sftpScanner{
		walker: client.Walk(root),
		root:   root,
		filter: filter,
	}
}

// Next advances to the next remote entry and returns its info.
func (s *sftpScanner) Next() (FileInfo, bool) {
	for s.walker.Step() {
		if err := s.walker.Err(); err != nil {
			// Remember the first error but keep walking what we can
			if s.err == nil {
				s.err = err
			}
			s.walker.SkipDir()
			continue
		}

		fullPath := s.walker.Path()
		relPath := relativeTo(s.root, fullPath)
		if relPath == "" {
			continue
		}

		info := s.walker.Stat()

		if s.filter.Excluded(relPath) {
			if info.IsDir() {
				s.walker.SkipDir()
			}
			continue
		}

		if !info.IsDir() && !info.Mode().IsRegular() {
			continue
		}

		return FileInfo{
			RelativePath: relPath,
			Size:         info.Size(),
			IsDir:        info.IsDir(),
		}, true
	}

	return FileInfo{}, false
}

// Err returns the first error encountered during the walk, if any.
func (s *sftpScanner) Err() error {
	return s.err
}

// relativeTo strips the scan root from a remote path. Remote paths always use
// forward slashes, so path.Clean is enough; filepath would mangle them on
// Windows.
func relativeTo(root, fullPath string) string {
	root = path.Clean(root)
	fullPath = path.Clean(fullPath)

	if fullPath == root {
		return ""
	}

	if len(fullPath) > len(root) && fullPath[:len(root)] == root && fullPath[len(root)] == '/' {
		return fullPath[len(root)+1:]
	}

	return fullPath
}

// RemoteStats scans a remote folder over SFTP and returns its statistics.
// A root that does not exist returns zero-valued stats.
func RemoteStats(client *sftp.Client, root string, filter *ExcludeFilter) FolderStats {
	if _, err := client.Stat(root); err != nil {
		return FolderStats{}
	}

	return ScanStats(NewSFTPScanner(client, root, filter))
}
