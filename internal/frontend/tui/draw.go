package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHeader    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEmpty     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHidden    = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleHighlight = tcell.StyleDefault.Reverse(true)
	styleSource    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleModal     = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleModalKey  = styleModal.Bold(true)
)

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y) and
// returns its display width.
func putGlyph(s tcell.Screen, x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return 0
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	s.SetContent(x, y, runes[0], combc, style)
	w := runewidth.StringWidth(glyph)
	if w == 2 {
		s.SetContent(x+1, y, ' ', nil, style)
	}
	return max(w, 1)
}

// drawText draws text from (x, y), clipped to width columns, and returns the
// number of columns used.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	if width <= 0 {
		return 0
	}
	text = runewidth.Truncate(text, width, "…")
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(x+col, y, r, nil, style)
		if w == 2 {
			s.SetContent(x+col+1, y, ' ', nil, style)
		}
		col += w
	}
	return col
}

func fill(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

// wrap breaks text into lines of at most width columns on spaces and
// newlines.
func wrap(text string, width int) []string {
	var lines []string
	line, lineW := "", 0
	word, wordW := "", 0
	flushWord := func() {
		switch {
		case word == "":
		case lineW == 0:
			line, lineW = word, wordW
		case lineW+1+wordW <= width:
			line, lineW = line+" "+word, lineW+1+wordW
		default:
			lines = append(lines, line)
			line, lineW = word, wordW
		}
		word, wordW = "", 0
	}
	for _, r := range text {
		switch r {
		case ' ':
			flushWord()
		case '\n':
			flushWord()
			lines = append(lines, line)
			line, lineW = "", 0
		default:
			word += string(r)
			wordW += runewidth.RuneWidth(r)
		}
	}
	flushWord()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
