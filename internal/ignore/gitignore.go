package ignore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

const gitignoreFile = ".gitignore"

// matchGitignoreFiles applies the .gitignore files of the directories above
// unixPath, deepest first. The first file with a matching pattern decides.
func (m *IgnoreMatcher) matchGitignoreFiles(unixPath string, isDir bool) bool {
	parts := strings.Split(unixPath, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		gi := m.gitignoreFor(strings.Join(parts[:i], "/"))
		if gi == nil {
			continue
		}
		if match := m.relative(gi, strings.Join(parts[i:], "/"), isDir); match != nil {
			return match.Ignore() && !match.Include()
		}
	}
	return false
}

// gitignoreFor returns the rules of dir's .gitignore, dir being slash
// separated and relative to the root. A missing file yields nil.
func (m *IgnoreMatcher) gitignoreFor(dir string) gitignore.GitIgnore {
	if gi, ok := m.dirIgnores[dir]; ok {
		return gi
	}

	var gi gitignore.GitIgnore
	name := filepath.Join(m.fsRoot, filepath.FromSlash(dir), gitignoreFile)
	f, err := m.fs.Open(name)
	switch {
	case err == nil:
		gi = gitignore.New(f, filepath.Join(m.rootDir, filepath.FromSlash(dir)), func(e gitignore.Error) bool {
			m.logger.Warn("ignore: Invalid pattern in %s: %v", name, e)
			return true
		})
		f.Close()
		m.logger.Debug("ignore: Loaded %s", name)
	case !errors.Is(err, os.ErrNotExist):
		m.logger.Warn("ignore: Failed to read %s: %v", name, err)
	}

	m.dirIgnores[dir] = gi
	return gi
}
