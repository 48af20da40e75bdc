// Package setup provides initialization and configuration functions
package setup

import (
	"strings"

	"github.com/bethropolis/bulldozer/internal/bulldozer"
	"github.com/bethropolis/bulldozer/internal/hasher"
	"github.com/bethropolis/bulldozer/internal/ignore"
	"github.com/bethropolis/bulldozer/internal/utils"
	"github.com/bethropolis/bulldozer/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// ScanConfig holds all parameters needed to configure a scan
type ScanConfig struct {
	Extensions   []string
	Algorithm    string
	IgnoreHidden bool
	IgnoreGit    bool
	UseGitignore bool
	CustomIgnore []string
	Reporter     utils.Reporter
	Logger       utils.Logger
}

// ConfigureBulldozer turns cfg into engine options, announcing the effective
// settings through infoLog
func ConfigureBulldozer(cfg ScanConfig, infoLog InfoLogger) ([]bulldozer.Option, error) {
	algo, err := hasher.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	// --- Parse file extensions ---
	filter := walker.ParseExtensions(cfg.Extensions)
	if filter.IsAll() {
		infoLog("No extension filtering (including all file types).")
	} else {
		exts := filter.Extensions()
		for i, ext := range exts {
			exts[i] = "." + ext
		}
		infoLog("Filtering enabled. Only including extensions: %s", strings.Join(exts, ", "))
	}

	// --- Parse custom ignore patterns ---
	var customPatterns []string
	for _, item := range cfg.CustomIgnore {
		for _, pattern := range strings.Split(item, ",") {
			if pattern = strings.TrimSpace(pattern); pattern != "" {
				customPatterns = append(customPatterns, pattern)
			}
		}
	}
	if len(customPatterns) > 0 {
		infoLog("Using custom ignore patterns: %v", customPatterns)
	}
	if cfg.IgnoreHidden {
		infoLog("Ignoring hidden files/directories (starting with '.').")
	}
	if cfg.IgnoreGit {
		infoLog("Ignoring .git directories.")
	}
	if cfg.UseGitignore {
		infoLog("Honouring .gitignore files.")
	}

	opts := []bulldozer.Option{
		bulldozer.WithFilter(filter),
		bulldozer.WithAlgorithm(algo),
		bulldozer.WithIgnore(ignore.Config{
			IgnoreHidden: cfg.IgnoreHidden,
			IgnoreGit:    cfg.IgnoreGit,
			UseGitignore: cfg.UseGitignore,
			CustomRules:  customPatterns,
			Logger:       cfg.Logger,
		}),
		bulldozer.WithLogger(cfg.Logger),
		bulldozer.WithReporter(cfg.Reporter),
	}
	return opts, nil
}
