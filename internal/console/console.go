// Package console holds the shared terminal styling for the transcript.
package console

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/spachava753/stakesim/internal/models"
)

// RuleWidth is the width of horizontal rules and centred headings.
const RuleWidth = 75

const defaultWidth = 80

var (
	Heading = color.New(color.FgCyan, color.Bold)
	Alert   = color.New(color.FgRed, color.Bold)
	Warn    = color.New(color.FgYellow)
	Value   = color.New(color.FgGreen)
	Muted   = color.New(color.Faint)
)

// Terminal describes the output device.
type Terminal struct {
	Interactive bool
	Width       int
}

// Detect inspects f with golang.org/x/term. Non-terminals report the
// default width of 80 columns.
func Detect(f *os.File) Terminal {
	fd := int(f.Fd())
	t := Terminal{Interactive: term.IsTerminal(fd), Width: defaultWidth}
	if !t.Interactive {
		return t
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		t.Width = w
	}
	return t
}

// ConfigureColor enables or disables styling for the whole process. Auto
// keeps fatih/color's own detection and additionally turns styling off
// when t is not a terminal.
func ConfigureColor(mode models.ColorMode, t Terminal) {
	switch mode {
	case models.ColorAlways:
		color.NoColor = false
	case models.ColorNever:
		color.NoColor = true
	default:
		if !t.Interactive {
			color.NoColor = true
		}
	}
}

// Rule returns a horizontal rule RuleWidth wide.
func Rule() string {
	return strings.Repeat("═", RuleWidth)
}

// Center left-pads s so it sits in the middle of width columns.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
