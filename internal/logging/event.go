package logging

import "io"

// Event is one log record handed to the formatter. Every field except
// Level is optional; missing data drops the corresponding display
// segment instead of failing.
type Event struct {
	Level  Level
	Module string
	File   string
	Line   int
	SpanID string
	Fields FieldRenderer
}

// FieldRenderer writes an event's formatted field text into the line
// the formatter is building.
type FieldRenderer interface {
	RenderFields(w io.Writer) error
}

// SpanResolver turns a span identifier into its name chain, ordered
// root to leaf inclusive. Unknown or dead identifiers yield nil.
type SpanResolver interface {
	Chain(id string) []string
}
