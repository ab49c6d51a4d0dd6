// Package filesystem provides tree scanning for mirror targets: local
// directory walks, SFTP walks for remote destinations, and pre-operation
// folder statistics.
package filesystem

// FileScanner is an iterator over the files in a directory tree.
// It provides a simple Next pattern for traversing tree contents.
type FileScanner interface {
	// Next advances to the next entry and returns its info.
	// Returns (FileInfo{}, false) when done or on error.
	// Check Err() after Next() returns false to distinguish end-of-scan from error.
	Next() (FileInfo, bool)

	// Err returns any error that occurred during scanning.
	// Should be checked after Next() returns false.
	Err() error
}

// FileInfo contains the metadata the scanners report for each entry.
type FileInfo struct {
	// RelativePath is the path relative to the scan root.
	RelativePath string

	// Size is the file size in bytes.
	Size int64

	// IsDir indicates whether this entry is a directory.
	IsDir bool
}

// FolderStats is a point-in-time snapshot of a folder tree: how many regular
// files it holds and their total size in bytes. A missing or inaccessible
// folder snapshots to the zero value; that is a normal precondition state the
// caller displays, not a failure.
type FolderStats struct {
	FileCount  int
	TotalBytes int64
}

// ScanStats drains a scanner and folds its regular files into a FolderStats.
// Scan errors degrade to whatever was counted before the error; the caller
// gets a snapshot either way.
func ScanStats(scanner FileScanner) FolderStats {
	var stats FolderStats

	for {
		info, ok := scanner.Next()
		if !ok {
			break
		}

		if info.IsDir {
			continue
		}

		stats.FileCount++
		stats.TotalBytes += info.Size
	}

	return stats
}
