package progress

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// BarWidth is the number of glyphs in the progress bar.
	BarWidth = 50

	filledGlyph = "█"
	emptyGlyph  = "░"
)

// Renderer draws a single evolving status line. In interactive mode each
// render rewrites the current line with a carriage return; otherwise every
// render is printed on its own line.
type Renderer struct {
	w           io.Writer
	interactive bool
	width       int

	open    bool
	lastLen int
	renders int
}

// NewRenderer creates a renderer. width is the terminal width in columns;
// zero disables label truncation.
func NewRenderer(w io.Writer, interactive bool, width int) *Renderer {
	return &Renderer{w: w, interactive: interactive, width: width}
}

// Render draws the bar at fraction (clamped to [0, 1]) labelled with label
// and returns the line without control characters.
func (r *Renderer) Render(fraction float64, label string) string {
	fraction = min(max(fraction, 0), 1)

	filled := int(fraction * BarWidth)
	line := fmt.Sprintf("[%s%s] %d%% | ",
		strings.Repeat(filledGlyph, filled),
		strings.Repeat(emptyGlyph, BarWidth-filled),
		int(fraction*100),
	)
	line += r.fit(label, utf8.RuneCountInString(line))
	n := utf8.RuneCountInString(line)

	if r.interactive {
		pad := ""
		if r.open && r.lastLen > n {
			pad = strings.Repeat(" ", r.lastLen-n)
		}
		fmt.Fprint(r.w, "\r"+line+pad)
		r.open = true
		r.lastLen = n
	} else {
		fmt.Fprintln(r.w, line)
	}

	r.renders++
	return line
}

// Break ends the open line so the next write starts on a fresh one.
func (r *Renderer) Break() {
	if r.interactive && r.open {
		fmt.Fprintln(r.w)
	}
	r.open = false
	r.lastLen = 0
}

// Renders returns how many times Render has been called.
func (r *Renderer) Renders() int {
	return r.renders
}

// fit truncates label so the whole line stays one column short of the
// terminal width.
func (r *Renderer) fit(label string, prefix int) string {
	if r.width <= 0 {
		return label
	}
	room := r.width - 1 - prefix
	runes := []rune(label)
	if len(runes) <= room {
		return label
	}
	if room <= 3 {
		return string(runes[:max(room, 0)])
	}
	return string(runes[:room-3]) + "..."
}
