package daylog

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Formatter renders a single log record as one line of text, without the
// trailing line terminator.
// Render must be a pure function of the record.
type Formatter interface {
	Render(rec *Record) string
}

// levelStyles maps each severity to its display style: warm colors for the
// high severities, cool colors for the low ones. The styles are built on a
// renderer pinned to the 16-color ANSI profile so rendered output carries
// the same escape sequences everywhere, terminal or not.
//
//nolint:gochecknoglobals
var levelStyles = sync.OnceValue(
	func() map[Level]lipgloss.Style {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI)

		return map[Level]lipgloss.Style{
			LevelDebug:    r.NewStyle().Foreground(lipgloss.Color("14")), // bright cyan
			LevelInfo:     r.NewStyle().Foreground(lipgloss.Color("10")), // bright green
			LevelWarning:  r.NewStyle().Foreground(lipgloss.Color("11")), // bright yellow
			LevelError:    r.NewStyle().Foreground(lipgloss.Color("3")),  // yellow
			LevelCritical: r.NewStyle().Foreground(lipgloss.Color("9")),  // bright red
		}
	},
)

// LineFormatter is the default [Formatter]. It renders records with fields
// in fixed order,
//
//	[<timestamp>] | <name> | <path>:<line> | <LEVEL> | <message>
//
// and wraps the entire line in the color style keyed by the record's
// severity.
type LineFormatter struct {
	formatTime FormatTime
}

// NewLineFormatter creates a [LineFormatter] whose timestamps use the given
// layout, resolved the same way as [WithTimeLayout].
func NewLineFormatter(layout string) *LineFormatter {
	return &LineFormatter{formatTime: makeFormatTimeFunc(layout)}
}

// Render implements [Formatter].
// An empty message or zero line number produces a degenerate but
// well-formed line.
func (f *LineFormatter) Render(rec *Record) string {
	formatTime := f.formatTime
	if formatTime == nil {
		formatTime = makeFormatTimeFunc(DefaultTimeLayout)
	}

	line := fmt.Sprintf("[%s] | %s | %s:%d | %s | %s",
		formatTime(rec.Time),
		rec.Name,
		rec.Path,
		rec.Line,
		rec.Level,
		rec.Message,
	)

	style, ok := levelStyles()[rec.Level]
	if !ok {
		return line
	}

	return style.Render(line)
}
