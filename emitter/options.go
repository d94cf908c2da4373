package emitter

import "log/slog"

// Option configures an Emitter during creation.
//
// Example:
//
//	e := emitter.New(strategy, emitter.WithRoot(outDir))
type Option func(*options)

// options holds optional configuration for an Emitter.
type options struct {
	root   string
	logger *slog.Logger
}

// defaultOptions returns the default emitter options.
func defaultOptions() options {
	return options{
		root:   ".",
		logger: nil, // iconset.Logger() at emit time
	}
}

// WithRoot sets the directory set roots are resolved against.
// The default is the working directory.
func WithRoot(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.root = dir
		}
	}
}

// WithLogger sets the logger that receives per-icon progress.
// Without it the emitter logs through iconset.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
