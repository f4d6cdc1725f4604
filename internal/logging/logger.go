package logging

import (
	"io"
	"runtime"
	"strings"
)

// Logger filters events against the resolved threshold and hands the
// survivors to the formatter. The zero of *Logger is usable and
// discards everything.
type Logger struct {
	threshold Level
	formatter *Formatter
	current   func() []string
}

// New constructs a Logger over an already-built formatter. current,
// when non-nil, supplies the active span chain for events that declare
// no span of their own.
func New(threshold Level, formatter *Formatter, current func() []string) *Logger {
	return &Logger{threshold: threshold, formatter: formatter, current: current}
}

// NewNop returns a logger that drops every event.
func NewNop() *Logger {
	return &Logger{}
}

// Threshold returns the minimum severity that passes through.
func (l *Logger) Threshold() Level {
	if l == nil {
		return LevelOff
	}
	return l.threshold
}

// Log formats one event if its level passes the threshold. Write
// errors from the output stream bubble up unchanged.
func (l *Logger) Log(ev Event) error {
	if l == nil || l.formatter == nil || !ev.Level.Enabled(l.threshold) {
		return nil
	}
	// The current chain also backs the fallback for a declared span
	// that is no longer resolvable.
	var chain []string
	if l.current != nil {
		chain = l.current()
	}
	return l.formatter.Format(ev, chain)
}

// Error logs a message with fields at the error level.
func (l *Logger) Error(msg string, fields ...Field) error {
	return l.emit(LevelError, msg, fields)
}

// Warn logs a message with fields at the warn level.
func (l *Logger) Warn(msg string, fields ...Field) error {
	return l.emit(LevelWarn, msg, fields)
}

// Info logs a message with fields at the info level.
func (l *Logger) Info(msg string, fields ...Field) error {
	return l.emit(LevelInfo, msg, fields)
}

// Debug logs a message with fields at the debug level.
func (l *Logger) Debug(msg string, fields ...Field) error {
	return l.emit(LevelDebug, msg, fields)
}

// Trace logs a message with fields at the trace level.
func (l *Logger) Trace(msg string, fields ...Field) error {
	return l.emit(LevelTrace, msg, fields)
}

func (l *Logger) emit(level Level, msg string, fields Fields) error {
	if l == nil || l.formatter == nil || !level.Enabled(l.threshold) {
		return nil
	}
	ev := Event{Level: level, Fields: messageFields{message: msg, fields: fields}}
	if file, line, module, ok := callerSource(3); ok {
		ev.File = file
		ev.Line = line
		ev.Module = module
	}
	return l.Log(ev)
}

// messageFields renders the message verbatim followed by key=value
// pairs, matching the shape of an externally-rendered field list whose
// first entry is the bare message.
type messageFields struct {
	message string
	fields  Fields
}

func (m messageFields) RenderFields(w io.Writer) error {
	if m.message != "" {
		if _, err := io.WriteString(w, m.message); err != nil {
			return err
		}
		if len(m.fields) > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
	}
	return m.fields.RenderFields(w)
}

func callerSource(skip int) (file string, line int, module string, ok bool) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0, "", false
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		module = packagePath(fn.Name())
	}
	return file, line, module, true
}

// packagePath trims the function and receiver from a runtime symbol,
// leaving the import path: "lantern/internal/spans.(*Registry).Start"
// becomes "lantern/internal/spans".
func packagePath(symbol string) string {
	slash := strings.LastIndexByte(symbol, '/')
	dot := strings.IndexByte(symbol[slash+1:], '.')
	if dot < 0 {
		return symbol
	}
	return symbol[:slash+1+dot]
}
