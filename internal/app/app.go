package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/bethropolis/bulldozer/internal/bulldozer"
	"github.com/bethropolis/bulldozer/internal/cleanup"
	"github.com/bethropolis/bulldozer/internal/config"
	"github.com/bethropolis/bulldozer/internal/logger"
	"github.com/bethropolis/bulldozer/internal/printer"
	"github.com/bethropolis/bulldozer/internal/progress"
	"github.com/bethropolis/bulldozer/internal/setup"
	"github.com/bethropolis/bulldozer/internal/summary"
	"github.com/bethropolis/bulldozer/internal/utils"
)

// FS is everything one invocation does to the filesystem
type FS interface {
	bulldozer.FS
	cleanup.FS
}

// App encapsulates the main application functionality
type App struct {
	cfg *config.Config
	log *logger.Logger

	// Output receives the duplicate report
	Output io.Writer
	// Stdout receives per-file deletion lines
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	FS     FS
	// Confirmer overrides the terminal prompt when set
	Confirmer cleanup.Confirmer

	outputFile *os.File
}

// New creates a new App instance writing to the standard streams
func New(cfg *config.Config) (*App, error) {
	color.NoColor = !cfg.UseColors

	var output io.Writer = os.Stdout
	var outputFile *os.File
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		output = file
		outputFile = file
	}

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:        cfg,
		log:        log,
		Output:     output,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		FS:         &osfs.ChrootOS{},
		outputFile: outputFile,
	}, nil
}

// Close releases the report file, if one was opened
func (a *App) Close() error {
	if a.outputFile == nil {
		return nil
	}
	err := a.outputFile.Close()
	a.outputFile = nil
	return err
}

// Logger returns the application logger
func (a *App) Logger() *logger.Logger {
	return a.log
}

// Run scans the configured roots, prints the report and, when confirmed,
// removes the redundant copies. A scan error skips the deletion phase.
func (a *App) Run() error {
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	a.log.Debug("Roots: %v", a.cfg.Roots)
	a.log.Debug("Color output: %v, progress: %v, interactive: %v", a.cfg.UseColors, a.cfg.ShowProgress, a.cfg.Interactive)

	roots, err := a.resolveRoots()
	if err != nil {
		a.log.Error("%v", err)
		return err
	}

	var reporter utils.Reporter = utils.NoopReporter{}
	var spinner *progress.Spinner
	if a.cfg.ShowProgress {
		spinner = progress.NewSpinner(a.Stderr)
		reporter = spinner
	}

	opts, err := setup.ConfigureBulldozer(setup.ScanConfig{
		Extensions:   a.cfg.Extensions,
		Algorithm:    a.cfg.Algorithm,
		IgnoreHidden: a.cfg.IgnoreHidden,
		IgnoreGit:    a.cfg.IgnoreGit,
		UseGitignore: a.cfg.UseGitignore,
		CustomIgnore: a.cfg.CustomIgnore,
		Reporter:     reporter,
		Logger:       a.log,
	}, infoLog)
	if err != nil {
		a.log.Error("%v", err)
		return err
	}

	b := bulldozer.New(a.FS, roots, opts...)
	if dropped := len(roots) - len(b.Roots()); dropped > 0 {
		infoLog("Skipping %d root(s) already covered by another root.", dropped)
	}
	infoLog("Scanning %d root(s): %v", len(b.Roots()), b.Roots())
	res, err := b.Scan()
	if spinner != nil {
		spinner.Finish()
	}
	if err != nil {
		a.log.Error("Scan failed: %v", err)
		return err
	}

	a.printReport(res.Groups)
	if len(res.Groups) == 0 {
		infoLog("No duplicate files found.")
	}
	summary.DisplayResults(a.log, res, a.cfg.Quiet)
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, res.Stats.Skipped, a.Stderr, a.cfg.Quiet)
	}

	removable := bulldozer.Removable(res.Groups)
	if len(removable) == 0 || a.cfg.NoDelete {
		return nil
	}
	return a.removeDuplicates(removable, infoLog)
}

// resolveRoots turns every configured root into an absolute path with
// symlinks resolved, so one directory named two ways is walked once.
// Roots must be directories; a symlink to a directory is accepted.
func (a *App) resolveRoots() ([]string, error) {
	if len(a.cfg.Roots) == 0 {
		return nil, bulldozer.ErrNoRoots
	}
	roots := make([]string, 0, len(a.cfg.Roots))
	for _, root := range a.cfg.Roots {
		info, err := a.FS.Stat(root)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("root directory '%s' not found: %w", root, err)
			}
			return nil, fmt.Errorf("could not access root directory '%s': %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("root '%s' is not a directory", root)
		}

		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("could not resolve root directory '%s': %w", root, err)
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, fmt.Errorf("could not resolve root directory '%s': %w", root, err)
		}
		if resolved != abs {
			a.log.Debug("Root %s resolves to %s", root, resolved)
		}
		roots = append(roots, resolved)
	}
	return roots, nil
}

func (a *App) printReport(groups bulldozer.DigestGroups) {
	p := printer.New().WithOutput(a.Output).WithColors(a.cfg.UseColors)
	if a.cfg.JSONOutput {
		a.log.Debug("JSON output mode enabled")
		p.WithJSON(true).WithColors(false)
	} else if a.cfg.MarkdownOutput {
		a.log.Debug("Markdown output mode enabled")
		p.WithMarkdown(true).WithColors(false)
	}
	p.PrintGroups(groups)
	p.Finalize()
}

func (a *App) removeDuplicates(removable []string, infoLog setup.InfoLogger) error {
	lines := a.Stdout
	if (a.cfg.JSONOutput || a.cfg.MarkdownOutput) && a.cfg.OutputFile == "" {
		lines = a.Stderr
	}

	opts := []cleanup.Option{cleanup.WithOutput(lines), cleanup.WithLogger(a.log)}
	question := fmt.Sprintf("Delete %d duplicate file(s)?", len(removable))
	switch {
	case a.cfg.DryRun:
		opts = append(opts, cleanup.WithMode(cleanup.ModeDryRun))
	case a.cfg.TrashDir != "":
		opts = append(opts, cleanup.WithTrashDir(a.cfg.TrashDir))
		question = fmt.Sprintf("Move %d duplicate file(s) to %s?", len(removable), a.cfg.TrashDir)
	}
	cleaner := cleanup.New(a.FS, opts...)

	if cleaner.Mode() != cleanup.ModeDryRun && !a.cfg.Yes {
		ok, err := a.confirm(question)
		if err != nil {
			a.log.Error("%v", err)
			return err
		}
		if !ok {
			infoLog("Nothing deleted.")
			return nil
		}
	}

	res, err := cleaner.Remove(removable)
	if err != nil {
		a.log.Error("Deletion stopped after %d of %d file(s): %v", len(res.Removed), len(removable), err)
		return err
	}
	if cleaner.Mode() != cleanup.ModeDryRun {
		infoLog("Removed %d duplicate file(s).", len(res.Removed))
	}
	return nil
}

func (a *App) confirm(question string) (bool, error) {
	if a.Confirmer != nil {
		return a.Confirmer.Confirm(question)
	}
	if a.cfg.Interactive {
		rc, err := cleanup.NewReadlineConfirmer(a.Stderr)
		if err == nil {
			defer rc.Close()
			return rc.Confirm(question)
		}
		a.log.Debug("Falling back to plain prompt: %v", err)
	}
	return cleanup.NewLineConfirmer(a.Stdin, a.Stderr).Confirm(question)
}
