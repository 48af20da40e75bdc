package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/bulldozer/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates and initializes an IgnoreMatcher
func New(rootDir string, opts ...Option) (*IgnoreMatcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &IgnoreMatcher{
		rootDir: absRootDir,
		fsRoot:  filepath.Clean(rootDir),
		logger:  utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// RootDir returns the absolute directory the rules are relative to
func (m *IgnoreMatcher) RootDir() string {
	return m.rootDir
}

func (m *IgnoreMatcher) init() error {
	m.logger.Debug("ignore.New: Initializing for root: %s", m.rootDir)
	m.logger.Debug("ignore.New: hidden=%v git=%v gitignore=%v patterns=%d",
		m.ignoreHidden, m.ignoreGit, m.useGitignore, len(m.customPatterns))

	if m.disabled {
		m.logger.Debug("ignore.New: Matcher is disabled, skipping rule initialization")
		return nil
	}

	if m.useGitignore && m.fs != nil {
		m.logger.Debug("ignore.New: Reading .gitignore files below %s through the scan filesystem", m.fsRoot)
		m.dirIgnores = make(map[string]gitignore.GitIgnore)
	} else if m.useGitignore {
		repoMatcher, err := gitignore.NewRepository(m.rootDir)
		if err != nil {
			if repoMatcher == nil {
				return fmt.Errorf("ignore: failed to load repository ignores from '%s': %w", m.rootDir, err)
			}
			m.logger.Warn("ignore.New: Problem loading .gitignore files under '%s': %v", m.rootDir, err)
		}
		m.repoIgnore = repoMatcher
	}

	if len(m.customPatterns) > 0 {
		var invalid []string
		m.patternIgnore = gitignore.New(
			strings.NewReader(strings.Join(m.customPatterns, "\n")),
			m.rootDir,
			func(e gitignore.Error) bool {
				invalid = append(invalid, e.Error())
				return true
			},
		)
		for _, msg := range invalid {
			m.logger.Warn("ignore.New: Invalid ignore pattern: %s", msg)
		}
	}

	return nil
}
