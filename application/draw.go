package application

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"goditor/config"
	"goditor/layout"
)

var (
	DefaultStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	LightStyle   = DefaultStyle.Foreground(tcell.ColorGray)
	StatusStyle   = DefaultStyle.Reverse(true)
	ControlStyle  = DefaultStyle.Foreground(tcell.ColorRed)
	SelectedStyle = DefaultStyle.Reverse(true).Bold(true)
)

// leafPreview is how many bytes of the leaf under the caret the status
// line shows.
const leafPreview = 12

func (app *Application) draw() {
	s := app.screen
	s.Clear()

	width, height := s.Size()
	app.scroll(height - 1)
	app.screenLayout().StartLayouting(width, height)

	switch {
	case app.popup != nil:
		app.popup.draw(s, width, height)
		s.HideCursor()
	case app.mode == ModeCommand:
		s.ShowCursor(1+stringCells(string(app.cmdline), 0), height-1)
	case app.mode == ModeSelect:
		s.HideCursor()
	default:
		row, col := app.buf.Position()
		line := app.buf.Line(row)
		x := app.textDims.Origin.X + cellsBefore(line, col, app.editor.TabWidth)
		y := app.textDims.Origin.Y + row - app.top
		s.ShowCursor(x, y)
	}

	s.Show()
}

func (app *Application) screenLayout() *layout.Flex {
	if app.mode == ModeSelect {
		return layout.Column(
			layout.FlexItemBox(app.pickerBox, layout.Max(layout.Rel(1)), nil),
			layout.FlexItemBox(app.statusLineBox, layout.Exact(layout.Abs(1)), nil),
		)
	}
	return layout.Column(
		layout.FlexItemBox(layout.EmptyBox, layout.Max(layout.Rel(1)), layout.Row(
			layout.FlexItemBox(app.lineNumberBox, layout.Exact(layout.Abs(app.gutterWidth())), nil),
			layout.FlexItemBox(app.bufferBox, layout.Max(layout.Rel(1)), nil),
		)),
		layout.FlexItemBox(app.statusLineBox, layout.Exact(layout.Abs(1)), nil),
	)
}

// scroll keeps the caret line inside a text area of the given height.
func (app *Application) scroll(height int) {
	row, _ := app.buf.Position()
	switch {
	case row < app.top:
		app.top = row
	case height > 0 && row >= app.top+height:
		app.top = row - height + 1
	}
}

func (app *Application) gutterWidth() int {
	if app.editor.LineNumbers == config.LineNumbersOff {
		return 0
	}
	return len(strconv.Itoa(app.buf.LineCount())) + 1
}

func (app *Application) lineNumberBox(dims layout.Dimensions) {
	if dims.Width < 2 {
		return
	}

	pad := dims.Width - 1
	caretRow, _ := app.buf.Position()
	for y := 0; y < dims.Height; y++ {
		row := app.top + y
		if row >= app.buf.LineCount() {
			break
		}

		number, style := row+1, DefaultStyle
		if app.editor.LineNumbers == config.LineNumbersRelative && row != caretRow {
			number, style = abs(row-caretRow), LightStyle
		}
		drawString(app.screen, dims.Origin.X, dims.Origin.Y+y, dims.Width, style, fmt.Sprintf("%*d", pad, number))
	}
}

func (app *Application) bufferBox(dims layout.Dimensions) {
	app.textDims = dims
	for y := 0; y < dims.Height; y++ {
		row := app.top + y
		if row >= app.buf.LineCount() {
			break
		}
		app.drawLine(dims.Origin.X, dims.Origin.Y+y, dims.Width, app.buf.Line(row))
	}
}

func (app *Application) statusLineBox(dims layout.Dimensions) {
	s := app.screen
	for x := 0; x < dims.Width; x++ {
		s.SetContent(dims.Origin.X+x, dims.Origin.Y, ' ', nil, StatusStyle)
	}

	if app.mode == ModeCommand {
		drawString(s, dims.Origin.X, dims.Origin.Y, dims.Width, StatusStyle, ":"+string(app.cmdline))
		return
	}

	drawString(s, dims.Origin.X, dims.Origin.Y, dims.Width, StatusStyle, app.statusText())
	if app.message != "" {
		x := dims.Origin.X + dims.Width - stringCells(app.message, 0) - 1
		drawString(s, max(x, dims.Origin.X), dims.Origin.Y, dims.Width, StatusStyle, app.message)
	}
}

// statusText shows the mode, the file, the caret and the leaf the rope
// resolves the caret to.
func (app *Application) statusText() string {
	buf := app.buf
	name := buf.Name()
	if buf.Dirty() {
		name += " [+]"
	}

	row, col := buf.Position()
	where := "end"
	if leaf, offset, ok := buf.CharAtCaret(); ok {
		if len(leaf) > leafPreview {
			leaf = leaf[:leafPreview]
		}
		where = fmt.Sprintf("leaf %q+%d", leaf, offset)
	}

	return fmt.Sprintf(" %s | %s | %d:%d @%d | %s ", app.mode, name, row+1, col+1, buf.Caret(), where)
}

func (app *Application) drawLine(x, y, width int, line string) {
	s := app.screen
	cell := 0
	for _, r := range line {
		w := cellWidth(r, cell, app.editor.TabWidth)
		if cell+w > width {
			return
		}

		switch {
		case r == '\t':
			for i := 0; i < w; i++ {
				s.SetContent(x+cell+i, y, ' ', nil, DefaultStyle)
			}
		case unicode.IsControl(r):
			s.SetContent(x+cell, y, '?', nil, ControlStyle)
		default:
			s.SetContent(x+cell, y, r, nil, DefaultStyle)
		}
		cell += w
	}
}

func drawString(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	cell := 0
	for _, r := range text {
		w := cellWidth(r, cell, 1)
		if cell+w > width {
			return
		}
		s.SetContent(x+cell, y, r, nil, style)
		cell += w
	}
}

// cellWidth is the number of screen cells r takes when drawn at cell x.
func cellWidth(r rune, x, tabWidth int) int {
	if r == '\t' {
		return tabWidth - x%tabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

func stringCells(text string, tabWidth int) int {
	return cellsBefore(text, len(text), max(tabWidth, 1))
}

// cellsBefore is the cell where the byte at col of line is drawn.
func cellsBefore(line string, col, tabWidth int) int {
	cell := 0
	for i, r := range line {
		if i >= col {
			break
		}
		cell += cellWidth(r, cell, tabWidth)
	}
	return cell
}

// columnAtCell is the byte column of the character drawn at cell, or the
// end of line when cell is past it.
func columnAtCell(line string, cell, tabWidth int) int {
	x := 0
	for i, r := range line {
		w := cellWidth(r, x, tabWidth)
		if cell < x+w {
			return i
		}
		x += w
	}
	return len(line)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
