package ignore

import "github.com/bethropolis/bulldozer/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithHiddenIgnore skips entries whose name, or any parent's, starts with a dot
func WithHiddenIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreHidden = ignore
	}
}

// WithGitIgnore skips .git directories and everything below them
func WithGitIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreGit = ignore
	}
}

// WithGitignoreFiles loads .gitignore files found under the root directory
func WithGitignoreFiles(enabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.useGitignore = enabled
	}
}

// WithFS reads .gitignore files through fs, with the root directory as given
// to New, instead of from the host disk
func WithFS(fs Opener) Option {
	return func(m *IgnoreMatcher) {
		m.fs = fs
	}
}

// WithCustomRules adds gitignore-syntax patterns evaluated relative to the root
func WithCustomRules(patterns []string) Option {
	return func(m *IgnoreMatcher) {
		m.customPatterns = append(m.customPatterns, patterns...)
	}
}

// WithLogger sets the logger for rule loading and match decisions
func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDisabled turns the matcher into one that ignores nothing
func WithDisabled(disabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.disabled = disabled
	}
}
