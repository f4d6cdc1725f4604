// Package logging renders structured events as single-line, optionally
// colored terminal output and derives the filtering threshold from
// repeated --quiet and --verbose flags.
//
// It owns the level scale, the verbosity resolver that folds flag
// occurrence counts into a threshold, and the event formatter that
// writes timestamp, source context, span chain, severity tag, and
// fields in a fixed order. Span lookup and field rendering are narrow
// capability interfaces so the formatter stays independent of any
// particular event source.
//
// Prefer Setup over hand-wiring a Formatter so every component resolves
// verbosity and styles output the same way.
package logging
