package ignore

import (
	"github.com/bethropolis/bulldozer/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
	"github.com/go-git/go-billy/v5"
)

// Opener is the part of a go-billy filesystem needed to read .gitignore files
type Opener interface {
	Open(filename string) (billy.File, error)
}

// IgnoreMatcher determines whether a file or directory should be left out of a scan
type IgnoreMatcher struct {
	// rules from .gitignore files found under rootDir on the host disk
	repoIgnore gitignore.GitIgnore
	// per-directory .gitignore rules read through fs, keyed by slash
	// separated directory relative to the root; nil entries are cached misses
	dirIgnores map[string]gitignore.GitIgnore
	// rules compiled from customPatterns
	patternIgnore gitignore.GitIgnore

	rootDir        string
	fsRoot         string
	fs             Opener
	ignoreHidden   bool
	ignoreGit      bool
	useGitignore   bool
	customPatterns []string
	logger         utils.Logger
	disabled       bool
}

// Config holds configuration options for the ignore matcher
type Config struct {
	RootDir      string
	IgnoreHidden bool
	IgnoreGit    bool
	UseGitignore bool
	CustomRules  []string
	Logger       utils.Logger
	Disabled     bool
	// FS, when set, is where .gitignore files are read from
	FS Opener
}

// Active reports whether the configuration would ignore anything at all
func (c Config) Active() bool {
	return !c.Disabled && (c.IgnoreHidden || c.IgnoreGit || c.UseGitignore || len(c.CustomRules) > 0)
}
