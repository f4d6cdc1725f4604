package logging

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode controls whether styled segments carry ANSI escapes.
type ColorMode int

const (
	// ColorAuto enables color only when the output stream is a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses "auto", "always", or "never". The empty string
// means auto.
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, true
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	default:
		return ColorAuto, false
	}
}

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// styler maps semantic styles onto ANSI sequences. With color disabled
// every method returns its input unchanged.
type styler struct {
	bold *color.Color
	tags map[Level]*color.Color
}

func newStyler(enabled bool) *styler {
	st := &styler{
		bold: color.New(color.Bold),
		tags: map[Level]*color.Color{
			LevelError: color.New(color.FgRed, color.Bold),
			LevelWarn:  color.New(color.FgYellow, color.Bold),
			LevelInfo:  color.New(color.FgGreen, color.Bold),
			LevelDebug: color.New(color.FgBlue, color.Bold),
			LevelTrace: color.New(color.FgMagenta, color.Bold),
		},
	}
	all := []*color.Color{st.bold}
	for _, c := range st.tags {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return st
}

// Bold styles module and span names.
func (s *styler) Bold(text string) string {
	return s.bold.Sprint(text)
}

// LevelTag returns the colored severity label for a level.
func (s *styler) LevelTag(l Level) string {
	c, ok := s.tags[l]
	if !ok {
		return levelTagText(l)
	}
	return c.Sprint(levelTagText(l))
}

func levelTagText(l Level) string {
	switch l {
	case LevelError:
		return "error:"
	case LevelWarn:
		return "warning:"
	case LevelInfo:
		return "info:"
	case LevelDebug:
		return "debug:"
	case LevelTrace:
		return "trace:"
	default:
		return l.String() + ":"
	}
}
