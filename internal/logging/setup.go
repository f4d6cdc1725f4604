package logging

import "io"

// SetupOptions describes process-wide logging construction parameters.
type SetupOptions struct {
	// Root is the application's top-level module name, compared against
	// each event's module path.
	Root      string
	Verbosity VerbosityOptions
	Color     ColorMode
	// Spans resolves span identifiers declared on events. May be nil.
	Spans SpanResolver
	// Current supplies the active span chain for events without one.
	Current func() []string
	// Out receives the formatted lines. Defaults to stderr.
	Out io.Writer
}

// Setup resolves the verbosity decision once and installs a formatter
// over the output stream. It runs at process start and is not
// revisited. The returned Decision carries either the threshold now
// enforced by the Logger or the untouched filter expression; with an
// explicit expression the Logger passes every level through and the
// external filtering subsystem decides.
func Setup(opts SetupOptions) (*Logger, Decision) {
	decision := opts.Verbosity.Decide()

	formatter := NewFormatter(FormatterConfig{
		Root:    opts.Root,
		Verbose: opts.Verbosity.VerboseFormat(),
		Color:   opts.Color,
		Spans:   opts.Spans,
		Out:     opts.Out,
	})

	threshold := decision.Threshold
	if decision.Explicit() {
		threshold = LevelTrace
	}
	return New(threshold, formatter, opts.Current), decision
}
