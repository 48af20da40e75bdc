// Package cleanup removes the redundant copies found by a scan.
package cleanup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"

	"github.com/bethropolis/bulldozer/internal/utils"
)

// Mode selects what happens to a removable file
type Mode int

const (
	// ModeDelete removes the file
	ModeDelete Mode = iota
	// ModeTrash moves the file into a trash directory
	ModeTrash
	// ModeDryRun only prints what would happen
	ModeDryRun
)

func (m Mode) String() string {
	switch m {
	case ModeTrash:
		return "trash"
	case ModeDryRun:
		return "dry-run"
	default:
		return "delete"
	}
}

// FS is the part of a go-billy filesystem cleanup needs
type FS interface {
	Open(filename string) (billy.File, error)
	Create(filename string) (billy.File, error)
	Remove(filename string) error
	Rename(oldpath, newpath string) error
	MkdirAll(filename string, perm os.FileMode) error
}

// Options configures a Cleaner
type Options struct {
	Mode     Mode
	TrashDir string
	Out      io.Writer
	Logger   utils.Logger
}

// Option is a functional option for configuring a Cleaner
type Option func(*Options)

// WithMode selects delete, trash or dry-run
func WithMode(mode Mode) Option {
	return func(o *Options) { o.Mode = mode }
}

// WithTrashDir switches to ModeTrash, moving files into dir
func WithTrashDir(dir string) Option {
	return func(o *Options) {
		o.Mode = ModeTrash
		o.TrashDir = dir
	}
}

// WithOutput sets where the per-file lines go
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Out = w
		}
	}
}

// WithLogger sets the logger used for progress and failure messages
func WithLogger(logger utils.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// Result lists what a Remove call did before it returned
type Result struct {
	Removed []string
	// Failed is the path whose removal stopped the run, empty on success
	Failed string
}

// Cleaner removes files one at a time
type Cleaner struct {
	fs   FS
	opts Options
	now  func() time.Time
	seq  int
}

// New creates a Cleaner operating on fs
func New(fs FS, opts ...Option) *Cleaner {
	options := Options{
		Mode:   ModeDelete,
		Out:    os.Stdout,
		Logger: utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Cleaner{fs: fs, opts: options, now: time.Now}
}

// Mode returns the configured mode
func (c *Cleaner) Mode() Mode {
	return c.opts.Mode
}

// Remove handles paths in order and writes one line per path. The first
// failure stops the run: later paths are left untouched and earlier removals
// are not undone.
func (c *Cleaner) Remove(paths []string) (Result, error) {
	var res Result

	if c.opts.Mode == ModeTrash && len(paths) > 0 {
		if c.opts.TrashDir == "" {
			return res, errors.New("cleanup: trash mode needs a trash directory")
		}
		if err := c.fs.MkdirAll(c.opts.TrashDir, 0o755); err != nil {
			return res, fmt.Errorf("cleanup: failed to create trash directory '%s': %w", c.opts.TrashDir, err)
		}
	}

	for _, path := range paths {
		if err := c.removeOne(path); err != nil {
			res.Failed = path
			c.opts.Logger.Error("Stopping after failure on %s; %d file(s) left untouched", path, len(paths)-len(res.Removed)-1)
			return res, err
		}
		res.Removed = append(res.Removed, path)
	}
	return res, nil
}

func (c *Cleaner) removeOne(path string) error {
	switch c.opts.Mode {
	case ModeDryRun:
		fmt.Fprintf(c.opts.Out, "%s %s\n", color.CyanString("Would delete:"), path)
		return nil

	case ModeTrash:
		dest := c.trashName(path)
		if err := c.move(path, dest); err != nil {
			return fmt.Errorf("cleanup: failed to move '%s' to trash: %w", path, err)
		}
		fmt.Fprintf(c.opts.Out, "%s %s -> %s\n", color.YellowString("Trashed:"), path, dest)
		return nil

	default:
		if err := c.fs.Remove(path); err != nil {
			return fmt.Errorf("cleanup: failed to delete '%s': %w", path, err)
		}
		fmt.Fprintf(c.opts.Out, "%s %s\n", color.RedString("Deleted:"), path)
		return nil
	}
}

// trashName builds a collision free name: name_<unixnano>_<seq>.ext
func (c *Cleaner) trashName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	c.seq++
	return filepath.Join(c.opts.TrashDir, fmt.Sprintf("%s_%d_%d%s", stem, c.now().UnixNano(), c.seq, ext))
}

// move renames src to dst, copying then removing when they sit on
// different devices
func (c *Cleaner) move(src, dst string) error {
	err := c.fs.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}
	c.opts.Logger.Debug("cleanup: cross-device move of %s, copying", src)

	in, err := c.fs.Open(src)
	if err != nil {
		return err
	}
	out, err := c.fs.Create(dst)
	if err != nil {
		in.Close()
		return err
	}

	_, copyErr := io.Copy(out, in)
	in.Close()
	if closeErr := out.Close(); copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		return copyErr
	}
	return c.fs.Remove(src)
}
