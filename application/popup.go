package application

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// A popup asks a question that is answered with one of its buttons. It
// takes all keys until a button is picked.
type popup struct {
	question string
	buttons  []string
	cursor   int
	choose   func(button int)
}

// newConfirm returns a YES/NO popup running yes when confirmed.
func newConfirm(question string, yes func()) *popup {
	return &popup{
		question: question,
		buttons:  []string{"YES", "NO"},
		choose: func(button int) {
			if button == 0 {
				yes()
			}
		},
	}
}

func (p *popup) moveLeft() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *popup) moveRight() {
	if p.cursor < len(p.buttons)-1 {
		p.cursor++
	}
}

// handleKey returns the picked button, or -1 while the popup stays open.
// Escape and n pick the last button.
func (p *popup) handleKey(ev *tcell.EventKey) int {
	last := len(p.buttons) - 1
	switch ev.Key() {
	case tcell.KeyEnter:
		return p.cursor
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return last
	case tcell.KeyLeft, tcell.KeyBacktab:
		p.moveLeft()
	case tcell.KeyRight, tcell.KeyTab:
		p.moveRight()
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'e':
			return p.cursor
		case 'y':
			return 0
		case 'n', 'q':
			return last
		case 'h':
			p.moveLeft()
		case 'l':
			p.moveRight()
		}
	}
	return -1
}

// draw puts the popup in a frame centered on a screen of the given size.
func (p *popup) draw(s tcell.Screen, width, height int) {
	buttonsWidth := 0
	for _, b := range p.buttons {
		buttonsWidth += stringCells(b, 0) + 3
	}
	w := min(max(stringCells(p.question, 0), buttonsWidth)+4, width)
	h := 4
	x0, y0 := max((width-w)/2, 0), max((height-1-h)/2, 0)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x0+x, y0+y, ' ', nil, DefaultStyle)
		}
	}
	for x := 1; x < w-1; x++ {
		s.SetContent(x0+x, y0, tcell.RuneHLine, nil, DefaultStyle)
		s.SetContent(x0+x, y0+h-1, tcell.RuneHLine, nil, DefaultStyle)
	}
	for y := 1; y < h-1; y++ {
		s.SetContent(x0, y0+y, tcell.RuneVLine, nil, DefaultStyle)
		s.SetContent(x0+w-1, y0+y, tcell.RuneVLine, nil, DefaultStyle)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, DefaultStyle)
	s.SetContent(x0+w-1, y0, tcell.RuneURCorner, nil, DefaultStyle)
	s.SetContent(x0, y0+h-1, tcell.RuneLLCorner, nil, DefaultStyle)
	s.SetContent(x0+w-1, y0+h-1, tcell.RuneLRCorner, nil, DefaultStyle)

	inner := w - 4
	drawString(s, x0+2, y0+1, inner, DefaultStyle, p.question)
	x := x0 + 2
	for i, b := range p.buttons {
		label := " " + b + " "
		style := DefaultStyle
		if i == p.cursor {
			style = SelectedStyle
		}
		drawString(s, x, y0+2, max(x0+2+inner-x, 0), style, label)
		x += stringCells(label, 0) + 1
	}
}
