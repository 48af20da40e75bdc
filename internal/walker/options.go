// Package walker handles directory traversal
package walker

import (
	"github.com/bethropolis/bulldozer/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger   utils.Logger
	Filter   ExtFilter
	Reporter utils.Reporter
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:   utils.NoopLogger{},
		Filter:   AllExtensions(),
		Reporter: utils.NoopReporter{},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithFilter sets the extension filter
func WithFilter(filter ExtFilter) Option {
	return func(opts *WalkOptions) {
		opts.Filter = filter
	}
}

// WithExtensions restricts the walk to files with these extensions (dot optional).
// An empty list leaves every extension allowed.
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		opts.Filter = ParseExtensions(extensions)
	}
}

// WithReporter receives the name of each file before it is visited
func WithReporter(r utils.Reporter) Option {
	return func(opts *WalkOptions) {
		if r != nil {
			opts.Reporter = r
		}
	}
}
