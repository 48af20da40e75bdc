// Package bulldozer finds duplicate files: it walks the given roots, hashes
// every selected file in full and groups paths by digest.
package bulldozer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bethropolis/bulldozer/internal/hasher"
	"github.com/bethropolis/bulldozer/internal/ignore"
	"github.com/bethropolis/bulldozer/internal/walker"
)

// ErrNoRoots is returned when a scan is started without any root
var ErrNoRoots = errors.New("bulldozer: no root paths given")

// FS is the filesystem a scan reads from; any go-billy Filesystem satisfies it
type FS interface {
	walker.FS
	hasher.Opener
}

// Result is the outcome of a scan
type Result struct {
	// Groups only holds digests shared by two or more paths
	Groups      DigestGroups
	Stats       walker.Stats
	BytesHashed int64
	Algorithm   hasher.Algorithm
	Duration    time.Duration
}

// Bulldozer scans a set of roots for duplicate content
type Bulldozer struct {
	fs    FS
	roots []string
	opts  Options
}

// New creates a Bulldozer over roots, read through fs. Roots are passed
// through CleanRoots, so overlapping roots are walked once.
func New(fs FS, roots []string, opts ...Option) *Bulldozer {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Bulldozer{
		fs:    fs,
		roots: CleanRoots(roots),
		opts:  options,
	}
}

// SetFilter replaces the extension filter
func (b *Bulldozer) SetFilter(filter walker.ExtFilter) {
	b.opts.Filter = filter
}

// Roots returns the roots in scan order
func (b *Bulldozer) Roots() []string {
	return append([]string(nil), b.roots...)
}

// Run scans every root and returns the duplicate groups. Any I/O error aborts
// the scan; no partial result is returned.
func (b *Bulldozer) Run() (DigestGroups, error) {
	res, err := b.Scan()
	if err != nil {
		return nil, err
	}
	return res.Groups, nil
}

// Scan is Run with statistics
func (b *Bulldozer) Scan() (*Result, error) {
	if len(b.roots) == 0 {
		return nil, ErrNoRoots
	}

	start := time.Now()
	log := b.opts.Logger
	h := hasher.New(b.fs, b.opts.Algorithm)
	all := make(DigestGroups)
	res := &Result{Algorithm: h.Algorithm()}

	visit := func(path string, info os.FileInfo) error {
		digest, err := h.HashFile(path)
		if err != nil {
			return err
		}
		all.add(digest, path)
		res.BytesHashed += info.Size()
		return nil
	}

	for _, root := range b.roots {
		matcher, err := b.matcherFor(root)
		if err != nil {
			return nil, err
		}

		log.Debug("bulldozer: scanning %s", root)
		stats, err := walker.Walk(b.fs, root, matcher, visit,
			walker.WithLogger(log),
			walker.WithFilter(b.opts.Filter),
			walker.WithReporter(b.opts.Reporter),
		)
		if err != nil {
			return nil, fmt.Errorf("bulldozer: scan of '%s' failed: %w", root, err)
		}
		res.Stats.Add(stats)
	}

	res.Groups = all.Prune()
	res.Duration = time.Since(start)
	log.Debug("bulldozer: %d files hashed, %d distinct digests, %d duplicate groups",
		res.Stats.VisitedFiles, len(all), len(res.Groups))
	return res, nil
}

func (b *Bulldozer) matcherFor(root string) (*ignore.IgnoreMatcher, error) {
	cfg := b.opts.Ignore
	if !cfg.Active() {
		return nil, nil
	}
	cfg.RootDir = root
	if cfg.Logger == nil {
		cfg.Logger = b.opts.Logger
	}
	if cfg.FS == nil {
		cfg.FS = b.fs
	}
	matcher, err := ignore.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("bulldozer: ignore rules for '%s': %w", root, err)
	}
	return matcher, nil
}
