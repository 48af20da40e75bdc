package walker

import (
	"errors"
	"os"
)

// ErrNotDirectory is returned when a walk root is not a directory
var ErrNotDirectory = errors.New("not a directory")

// FS is the part of a go-billy filesystem the walker needs
type FS interface {
	ReadDir(path string) ([]os.FileInfo, error)
	Lstat(filename string) (os.FileInfo, error)
	Stat(filename string) (os.FileInfo, error)
}

// VisitFunc is called for every regular file that passes the filters.
// A non-nil error stops the walk and is returned by Walk unchanged.
type VisitFunc func(path string, info os.FileInfo) error

// SkippedReason clarifies why a file/directory was not visited.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Hidden/Git/Pattern Rule)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedSymlink    SkippedReason = "Skipped (Symbolic Link)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// Stats describes one walk
type Stats struct {
	TotalFiles   int64 // non-directory entries seen
	VisitedFiles int64 // files handed to the VisitFunc
	SkippedFiles int64
	TotalDirs    int64 // directories read, root included
	SkippedDirs  int64
	Skipped      []SkippedItem
}

// Add accumulates other into s
func (s *Stats) Add(other Stats) {
	s.TotalFiles += other.TotalFiles
	s.VisitedFiles += other.VisitedFiles
	s.SkippedFiles += other.SkippedFiles
	s.TotalDirs += other.TotalDirs
	s.SkippedDirs += other.SkippedDirs
	s.Skipped = append(s.Skipped, other.Skipped...)
}

func (s *Stats) skip(path string, reason SkippedReason, isDir bool) {
	if isDir {
		s.SkippedDirs++
	} else {
		s.SkippedFiles++
	}
	s.Skipped = append(s.Skipped, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}
