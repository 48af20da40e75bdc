package bulldozer

import (
	"path/filepath"
	"strings"
)

// CleanRoots cleans every root and drops repeats and roots nested inside an
// earlier or later root, keeping first-seen order. Without this a file under
// an overlap is hashed twice and reported as a duplicate of itself.
//
// Comparison is lexical: callers that mix relative and absolute paths, or
// reach one directory through a symlink, must resolve them first.
func CleanRoots(roots []string) []string {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		cleaned = append(cleaned, filepath.Clean(root))
	}

	var kept []string
	for i, root := range cleaned {
		drop := false
		for j, other := range cleaned {
			if i == j {
				continue
			}
			if other == root && j < i {
				drop = true // repeat
				break
			}
			if other != root && within(other, root) {
				drop = true // nested
				break
			}
		}
		if !drop {
			kept = append(kept, root)
		}
	}
	return kept
}

// within reports whether path lies strictly below dir
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
