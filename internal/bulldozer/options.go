package bulldozer

import (
	"github.com/bethropolis/bulldozer/internal/hasher"
	"github.com/bethropolis/bulldozer/internal/ignore"
	"github.com/bethropolis/bulldozer/internal/utils"
	"github.com/bethropolis/bulldozer/internal/walker"
)

// Options configures a Bulldozer
type Options struct {
	Filter    walker.ExtFilter
	Algorithm hasher.Algorithm
	// Ignore is applied to every root; RootDir is filled in per root.
	Ignore   ignore.Config
	Logger   utils.Logger
	Reporter utils.Reporter
}

func defaultOptions() Options {
	return Options{
		Filter:    walker.AllExtensions(),
		Algorithm: hasher.SHA256,
		Logger:    utils.NoopLogger{},
		Reporter:  utils.NoopReporter{},
	}
}

// Option is a functional option for configuring a Bulldozer
type Option func(*Options)

// WithFilter restricts the scan to files accepted by filter
func WithFilter(filter walker.ExtFilter) Option {
	return func(o *Options) {
		o.Filter = filter
	}
}

// WithAlgorithm selects the digest function
func WithAlgorithm(algo hasher.Algorithm) Option {
	return func(o *Options) {
		if algo != "" {
			o.Algorithm = algo
		}
	}
}

// WithIgnore sets exclusion rules evaluated relative to each root
func WithIgnore(cfg ignore.Config) Option {
	return func(o *Options) {
		o.Ignore = cfg
	}
}

// WithLogger sets the logger passed down to the walker and ignore matcher
func WithLogger(logger utils.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithReporter receives the name of each file as it is hashed
func WithReporter(r utils.Reporter) Option {
	return func(o *Options) {
		if r != nil {
			o.Reporter = r
		}
	}
}
