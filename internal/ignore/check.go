package ignore

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// ShouldIgnore checks if a path relative to the matcher root should be ignored
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil || m.disabled {
		return false
	}

	if relativePath == "" || relativePath == "." {
		return false // Never ignore the root itself
	}

	if m.ignoreHidden && isHiddenPath(relativePath) {
		m.logger.Debug("ignore.ShouldIgnore: Ignored %q (hidden rule)", relativePath)
		return true
	}

	if m.ignoreGit && isPathInGitDir(relativePath, isDir) {
		m.logger.Debug("ignore.ShouldIgnore: Ignored %q (.git rule)", relativePath)
		return true
	}

	unixPath := filepath.ToSlash(relativePath)
	for _, gi := range []gitignore.GitIgnore{m.patternIgnore, m.repoIgnore} {
		if gi == nil {
			continue
		}
		if m.matches(gi, unixPath, isDir) {
			m.logger.Debug("ignore.ShouldIgnore: Ignored %q (pattern rule)", relativePath)
			return true
		}
	}

	if m.dirIgnores != nil && m.matchGitignoreFiles(unixPath, isDir) {
		m.logger.Debug("ignore.ShouldIgnore: Ignored %q (.gitignore rule)", relativePath)
		return true
	}

	return false
}

// matches asks the gitignore library about one path. A negated pattern
// ("!keep.txt") produces a match that includes rather than ignores.
func (m *IgnoreMatcher) matches(gi gitignore.GitIgnore, unixPath string, isDir bool) bool {
	match := m.relative(gi, unixPath, isDir)
	return match != nil && match.Ignore() && !match.Include()
}

func (m *IgnoreMatcher) relative(gi gitignore.GitIgnore, unixPath string, isDir bool) (match gitignore.Match) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", unixPath, r)
			match = nil
		}
	}()
	return gi.Relative(unixPath, isDir)
}

// isHiddenPath reports whether the base name or any parent starts with a dot
func isHiddenPath(relativePath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relativePath), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// isPathInGitDir checks if a path is inside a .git directory
func isPathInGitDir(relativePath string, isDir bool) bool {
	parts := strings.Split(filepath.ToSlash(relativePath), "/")
	for i, part := range parts {
		if part == ".git" {
			if isDir || i < len(parts)-1 {
				return true
			}
		}
	}
	return false
}
