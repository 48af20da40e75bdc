// Package ignore decides which entries a scan leaves out.
//
// Nothing is ignored by default: every rule (hidden entries, .git directories,
// .gitignore files, custom gitignore-syntax patterns) is opt-in through the
// functional options.
//
// .gitignore files are read through the filesystem given with WithFS, one
// directory at a time as paths below it are checked. Without one they are
// loaded from the host disk.
package ignore

// NewFromConfig creates an IgnoreMatcher from a Config struct
func NewFromConfig(cfg Config) (*IgnoreMatcher, error) {
	options := []Option{
		WithHiddenIgnore(cfg.IgnoreHidden),
		WithGitIgnore(cfg.IgnoreGit),
		WithGitignoreFiles(cfg.UseGitignore),
		WithDisabled(cfg.Disabled),
	}

	if len(cfg.CustomRules) > 0 {
		options = append(options, WithCustomRules(cfg.CustomRules))
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}

	if cfg.FS != nil {
		options = append(options, WithFS(cfg.FS))
	}

	return New(cfg.RootDir, options...)
}

// CreateDisabledMatcher returns a matcher that ignores nothing
func CreateDisabledMatcher() *IgnoreMatcher {
	matcher, _ := New(".", WithDisabled(true))
	return matcher
}

// IsIgnored is a convenience function to check if a path should be ignored
func IsIgnored(matcher *IgnoreMatcher, path string, isDir bool) bool {
	if matcher == nil {
		return false
	}
	return matcher.ShouldIgnore(path, isDir)
}
