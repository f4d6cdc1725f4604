package logging

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// Field is a single key=value pair attached to an event.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Fields renders key=value pairs in declaration order, separated by
// single spaces.
type Fields []Field

// RenderFields implements FieldRenderer.
func (fs Fields) RenderFields(w io.Writer) error {
	seen := false
	for _, f := range fs {
		if f.Key == "" {
			continue
		}
		if seen {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, f.Key); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "="); err != nil {
			return err
		}
		if _, err := io.WriteString(w, formatValue(f.Value)); err != nil {
			return err
		}
		seen = true
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return maybeQuote(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Duration:
		return val.String()
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case error:
		return maybeQuote(val.Error())
	case fmt.Stringer:
		return maybeQuote(val.String())
	default:
		return maybeQuote(fmt.Sprint(val))
	}
}

func maybeQuote(s string) string {
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return true
		}
	}
	return false
}
