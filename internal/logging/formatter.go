package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const timestampLayout = "15:04:05.000"

// FormatterConfig describes formatter construction parameters.
type FormatterConfig struct {
	// Root is the application's top-level module name. Module paths
	// nested under it are shown relative to it; an exact match is
	// omitted entirely.
	Root string
	// Verbose adds the timestamp, module/file context, and span chain
	// to every line.
	Verbose bool
	Color   ColorMode
	// Spans resolves the span identifier an event declares. May be nil.
	Spans SpanResolver
	// Out receives one line per event. Defaults to stderr.
	Out io.Writer
}

// Formatter renders events as single-line terminal output. It holds no
// per-event state; concurrent calls are safe as long as the underlying
// writer serializes writes.
type Formatter struct {
	root    string
	verbose bool
	spans   SpanResolver
	style   *styler
	out     io.Writer
}

// NewFormatter constructs a Formatter from the provided config.
func NewFormatter(cfg FormatterConfig) *Formatter {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	return &Formatter{
		root:    cfg.Root,
		verbose: cfg.Verbose,
		spans:   cfg.Spans,
		style:   newStyler(colorEnabled(cfg.Color, out)),
		out:     out,
	}
}

// Format renders one event and writes the line to the output stream in
// a single write. current is the caller's already-resolved active span
// chain, used when the event declares no span of its own. Missing
// optional data drops the corresponding segment; the only returned
// failure is the writer's.
func (f *Formatter) Format(ev Event, current []string) error {
	var buf bytes.Buffer
	buf.Grow(128)

	if f.verbose {
		buf.WriteString(time.Now().Format(timestampLayout))
		buf.WriteByte(' ')
	}

	f.writeContext(&buf, ev)

	if f.verbose {
		f.writeSpans(&buf, ev.SpanID, current)
	}

	buf.WriteString(f.style.LevelTag(ev.Level))
	buf.WriteByte(' ')

	if ev.Fields != nil {
		if err := ev.Fields.RenderFields(&buf); err != nil {
			return err
		}
	}

	buf.WriteByte('\n')
	_, err := f.out.Write(buf.Bytes())
	return err
}

// writeContext emits the module and file:line segments, colon-joined,
// followed by one space if anything was written.
func (f *Formatter) writeContext(buf *bytes.Buffer, ev Event) {
	module := f.modulePath(ev.Module)
	seen := false

	if module != "" {
		buf.WriteString(f.style.Bold(module))
		seen = true
	}
	if ev.File != "" && ev.Line > 0 {
		if module != "" {
			buf.WriteByte(':')
		}
		buf.WriteString(filepath.Base(ev.File))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(ev.Line))
		seen = true
	}

	if seen {
		buf.WriteByte(' ')
	}
}

// modulePath drops the module segment when it would be redundant:
// non-verbose output never carries one, and an event logged from the
// root module itself repeats what the command name already says. A
// module nested under the root is shown relative to it.
func (f *Formatter) modulePath(module string) string {
	if !f.verbose || module == "" || module == f.root {
		return ""
	}
	if rest, ok := strings.CutPrefix(module, f.root); ok {
		if trimmed, ok := cutSeparator(rest); ok {
			return trimmed
		}
		// Shares a name prefix only, e.g. "appendix" under root "app".
		return module
	}
	return module
}

// cutSeparator recognizes both Go import paths and the :: convention
// used by foreign module paths flowing through the same pipeline.
func cutSeparator(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "::"); ok {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(s, "/"); ok {
		return rest, true
	}
	return "", false
}

// writeSpans emits the span name chain root to leaf, colon-joined,
// followed by one space if anything was written. An event's declared
// span wins; a dead or missing one falls back to the current chain.
func (f *Formatter) writeSpans(buf *bytes.Buffer, spanID string, current []string) {
	chain := current
	if spanID != "" && f.spans != nil {
		if resolved := f.spans.Chain(spanID); resolved != nil {
			chain = resolved
		}
	}
	if len(chain) == 0 {
		return
	}
	for i, name := range chain {
		if i > 0 {
			buf.WriteByte(':')
		}
		buf.WriteString(f.style.Bold(name))
	}
	buf.WriteByte(' ')
}
