package walker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/bulldozer/internal/ignore"
)

// Walk visits every regular file below root, depth first, using an explicit
// stack of pending directories. Directories are descended into, regular files
// that pass the matcher and the extension filter are passed to visit, and
// symbolic links and special files are skipped without being followed.
// The root itself is named by the caller and may be a symlink to a directory.
//
// Any error reading a directory, or returned by visit, aborts the walk.
func Walk(fsys FS, root string, matcher *ignore.IgnoreMatcher, visit VisitFunc, opts ...Option) (Stats, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	var stats Stats

	rootInfo, err := fsys.Stat(root)
	if err != nil {
		return stats, fmt.Errorf("walker: failed to stat root '%s': %w", root, err)
	}
	if !rootInfo.IsDir() {
		return stats, fmt.Errorf("walker: root '%s': %w", root, ErrNotDirectory)
	}

	options.Logger.Debug("walker.Walk started. Root: %s, Filter: %v", root, options.Filter.Extensions())

	pending := []string{root}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return stats, fmt.Errorf("walker: failed to read directory '%s': %w", dir, err)
		}
		stats.TotalDirs++

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			relativePath := relativeTo(root, path)
			mode := entry.Mode()

			if mode.IsDir() {
				if matcher.ShouldIgnore(relativePath, true) {
					options.Logger.Debug("Walker: Ignored directory %q by matcher rules", relativePath)
					stats.skip(path, ReasonIgnoredRule, true)
					continue
				}
				subdirs = append(subdirs, path)
				continue
			}

			stats.TotalFiles++

			switch {
			case mode&os.ModeSymlink != 0:
				options.Logger.Debug("Walker: Skipping symlink %q", relativePath)
				stats.skip(path, ReasonSkippedSymlink, false)
			case !mode.IsRegular():
				options.Logger.Debug("Walker: Skipping special file %q (%v)", relativePath, mode.Type())
				stats.skip(path, ReasonSkippedNotRegular, false)
			case matcher.ShouldIgnore(relativePath, false):
				options.Logger.Debug("Walker: Ignored %q by matcher rules", relativePath)
				stats.skip(path, ReasonIgnoredRule, false)
			case !options.Filter.Allows(entry.Name()):
				options.Logger.Debug("Walker: Extension of %q not allowed", relativePath)
				stats.skip(path, ReasonFilteredExtension, false)
			default:
				if err := processFile(path, relativePath, entry, options, visit); err != nil {
					return stats, err
				}
				stats.VisitedFiles++
			}
		}

		// reversed so the first subdirectory is popped first
		for i := len(subdirs) - 1; i >= 0; i-- {
			pending = append(pending, subdirs[i])
		}
	}

	options.Logger.Debug("Walker: Finished %s: %d files visited, %d dirs", root, stats.VisitedFiles, stats.TotalDirs)
	return stats, nil
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
