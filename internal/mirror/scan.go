package mirror

import (
	"github.com/kliatsko/librarymirror/internal/config"
	"github.com/kliatsko/librarymirror/pkg/filesystem"
)

// ScanTarget takes pre-operation snapshots of a target's source and
// destination. The source is always local; the destination may be an sftp://
// URL, scanned over SSH. Missing paths on either side snapshot to zero stats.
// The returned error covers only destination URL or connection problems.
func ScanTarget(target config.Target, filter *filesystem.ExcludeFilter) (source, dest filesystem.FolderStats, err error) {
	source = filesystem.LocalStats(target.Source, filter)

	parsed, err := filesystem.ParsePath(target.Dest)
	if err != nil {
		return source, filesystem.FolderStats{}, err
	}

	if !parsed.IsRemote {
		return source, filesystem.LocalStats(parsed.LocalPath, filter), nil
	}

	conn, err := filesystem.Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return source, filesystem.FolderStats{}, err
	}
	defer conn.Close()

	return source, filesystem.RemoteStats(conn.Client(), parsed.Path, filter), nil
}
