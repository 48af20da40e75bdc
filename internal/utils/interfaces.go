// Package utils holds the small interfaces shared by every internal package,
// together with no-op implementations used as defaults.
package utils

// Logger defines a common logging interface used throughout the application
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Reporter receives the item currently being processed.
// Implementations decide how (or whether) to show it.
type Reporter interface {
	Report(item string)
}

// NoopLogger is a logger implementation that does nothing
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...interface{}) {}
func (NoopLogger) Info(string, ...interface{})  {}
func (NoopLogger) Warn(string, ...interface{})  {}
func (NoopLogger) Error(string, ...interface{}) {}

// NoopReporter discards every report
type NoopReporter struct{}

func (NoopReporter) Report(string) {}

// ReporterFunc adapts a plain function to the Reporter interface
type ReporterFunc func(item string)

// Report calls f(item)
func (f ReporterFunc) Report(item string) { f(item) }
