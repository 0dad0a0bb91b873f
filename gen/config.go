package gen

import "log/slog"

// Config holds the settings of a single generation invocation. A Config
// is built once per Generate call and never mutated afterwards.
type Config struct {
	// Package is the package name of the generated file.
	Package string
	// CamelCase converts snake_case identifiers to CamelCase. Column
	// names inside db struct tags are never converted.
	CamelCase bool
	// Target is the file the output is written to or verified against.
	// Empty means the rendered source is only returned.
	Target string
	// Verify compares the rendered source against Target instead of
	// overwriting it.
	Verify bool
	// Logger is the diagnostic sink. Generation never writes diagnostics
	// anywhere else.
	Logger *slog.Logger
}

// Option configures a generation invocation.
type Option func(*Config)

// WithPackage sets the package name of the generated file.
// The default is "schema".
func WithPackage(name string) Option {
	return func(c *Config) {
		c.Package = name
	}
}

// WithCamelCase enables snake_case to CamelCase identifier conversion.
func WithCamelCase() Option {
	return func(c *Config) {
		c.CamelCase = true
	}
}

// WithTarget sets the output file.
func WithTarget(path string) Option {
	return func(c *Config) {
		c.Target = path
	}
}

// WithVerify enables verify mode: compare against the target file
// instead of overwriting it.
func WithVerify() Option {
	return func(c *Config) {
		c.Verify = true
	}
}

// WithLogger sets the diagnostic sink.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newConfig(opts ...Option) Config {
	c := Config{Package: "schema", Logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
