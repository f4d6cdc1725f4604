// Package spans tracks named, nested logical contexts that log events
// are emitted within. Spans form a tree from a root; the registry
// resolves an identifier (or the currently active span) into its
// ancestor name chain for display.
package spans
