package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Version is reported by --version
const Version = "1.0.0"

// Config holds all application configuration settings
type Config struct {
	// Scan settings
	Roots      []string `yaml:"roots"`
	Extensions []string `yaml:"extensions"`
	Algorithm  string   `yaml:"algorithm"`

	// Deletion settings
	Yes      bool   `yaml:"yes"`
	DryRun   bool   `yaml:"dry_run"`
	NoDelete bool   `yaml:"no_delete"`
	TrashDir string `yaml:"trash_dir"`

	// Filtering settings
	IgnoreHidden bool     `yaml:"ignore_hidden"`
	IgnoreGit    bool     `yaml:"ignore_git"`
	UseGitignore bool     `yaml:"gitignore"`
	CustomIgnore []string `yaml:"ignore"`

	// Logging settings
	Verbose      bool   `yaml:"verbose"`
	Quiet        bool   `yaml:"quiet"`
	LogLevel     string `yaml:"log_level"`
	NoColor      bool   `yaml:"no_color"`
	ShowProgress bool   `yaml:"progress"`
	ShowSkipped  bool   `yaml:"show_skipped"`

	// Output format
	JSONOutput     bool   `yaml:"json"`
	MarkdownOutput bool   `yaml:"markdown"`
	OutputFile     string `yaml:"output"`

	// Derived by Finalize
	UseColors   bool `yaml:"-"`
	Interactive bool `yaml:"-"`

	ConfigFile string `yaml:"-"`
}

// Default returns the configuration used when no flag or file says otherwise
func Default() *Config {
	return &Config{
		Algorithm:    "sha256",
		ShowProgress: true,
	}
}

// BindFlags registers every setting on fs
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&c.Extensions, "ext", "e", c.Extensions, "Only include files with these extensions (comma-separated, e.g. 'jpg,png')")
	fs.StringVar(&c.Algorithm, "algorithm", c.Algorithm, "Digest algorithm: sha256 or xxhash")

	fs.BoolVarP(&c.Yes, "yes", "y", c.Yes, "Delete duplicates without asking for confirmation")
	fs.BoolVarP(&c.DryRun, "dry-run", "n", c.DryRun, "Show what would be deleted without touching any file")
	fs.BoolVar(&c.NoDelete, "no-delete", c.NoDelete, "Only report duplicates, never offer to delete")
	fs.StringVar(&c.TrashDir, "trash", c.TrashDir, "Move duplicates into this directory instead of deleting them")

	fs.BoolVar(&c.IgnoreHidden, "hidden", c.IgnoreHidden, "Skip hidden files/directories (starting with '.')")
	fs.BoolVar(&c.IgnoreGit, "git", c.IgnoreGit, "Skip .git directories")
	fs.BoolVar(&c.UseGitignore, "gitignore", c.UseGitignore, "Honour .gitignore files found under each root")
	fs.StringSliceVar(&c.CustomIgnore, "ignore", c.CustomIgnore, "Custom ignore patterns (comma-separated, gitignore syntax)")

	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable color output")
	fs.BoolVar(&c.ShowProgress, "progress", c.ShowProgress, "Show progress while hashing (terminal only)")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", c.ShowSkipped, "Show a list of skipped files/directories and reasons at the end")

	fs.BoolVar(&c.JSONOutput, "json", c.JSONOutput, "Output the duplicate report in JSON format")
	fs.BoolVar(&c.MarkdownOutput, "markdown", c.MarkdownOutput, "Output the duplicate report in Markdown format")
	fs.StringVarP(&c.OutputFile, "output", "o", c.OutputFile, "Write the report to a file instead of stdout")

	fs.StringVarP(&c.ConfigFile, "config", "c", c.ConfigFile, "YAML file with default settings")
}

// LoadFile reads YAML settings from path. Settings whose flag was set
// explicitly (changed reports true for its name) keep the flag value.
func (c *Config) LoadFile(path string, changed func(flag string) bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read '%s': %w", path, err)
	}

	file := Default()
	if err := yaml.Unmarshal(data, file); err != nil {
		return fmt.Errorf("config: failed to parse '%s': %w", path, err)
	}
	if changed == nil {
		changed = func(string) bool { return false }
	}

	apply := []struct {
		flag string
		set  func()
	}{
		{"ext", func() { c.Extensions = file.Extensions }},
		{"algorithm", func() { c.Algorithm = file.Algorithm }},
		{"yes", func() { c.Yes = file.Yes }},
		{"dry-run", func() { c.DryRun = file.DryRun }},
		{"no-delete", func() { c.NoDelete = file.NoDelete }},
		{"trash", func() { c.TrashDir = file.TrashDir }},
		{"hidden", func() { c.IgnoreHidden = file.IgnoreHidden }},
		{"git", func() { c.IgnoreGit = file.IgnoreGit }},
		{"gitignore", func() { c.UseGitignore = file.UseGitignore }},
		{"ignore", func() { c.CustomIgnore = file.CustomIgnore }},
		{"verbose", func() { c.Verbose = file.Verbose }},
		{"quiet", func() { c.Quiet = file.Quiet }},
		{"log-level", func() { c.LogLevel = file.LogLevel }},
		{"no-color", func() { c.NoColor = file.NoColor }},
		{"progress", func() { c.ShowProgress = file.ShowProgress }},
		{"show-skipped", func() { c.ShowSkipped = file.ShowSkipped }},
		{"json", func() { c.JSONOutput = file.JSONOutput }},
		{"markdown", func() { c.MarkdownOutput = file.MarkdownOutput }},
		{"output", func() { c.OutputFile = file.OutputFile }},
	}
	for _, a := range apply {
		if !changed(a.flag) {
			a.set()
		}
	}
	if len(c.Roots) == 0 {
		c.Roots = file.Roots
	}
	return nil
}

// Validate rejects contradictory settings
func (c *Config) Validate() error {
	if c.JSONOutput && c.MarkdownOutput {
		return errors.New("config: --json and --markdown cannot be used together")
	}
	actions := 0
	for _, set := range []bool{c.DryRun, c.NoDelete, c.TrashDir != ""} {
		if set {
			actions++
		}
	}
	if actions > 1 {
		return errors.New("config: choose only one of --dry-run, --no-delete or --trash")
	}
	if c.Quiet && c.Verbose {
		return errors.New("config: --quiet and --verbose cannot be used together")
	}
	return nil
}

// Finalize fills in defaults and terminal-dependent settings
func (c *Config) Finalize() {
	if len(c.Roots) == 0 {
		c.Roots = []string{"."}
	}
	stderrTTY := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	c.UseColors = !c.NoColor && stderrTTY && c.OutputFile == ""
	c.ShowProgress = c.ShowProgress && stderrTTY && !c.Quiet
	c.Interactive = isatty.IsTerminal(os.Stdin.Fd())
}
