package application

import (
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"goditor/buffer"
	"goditor/layout"
)

// A picker lists the open buffers with one of them selected. The list
// scrolls to keep the selection visible.
type picker struct {
	items  []*buffer.Buffer
	cursor int

	// top is the first item shown.
	top int
}

// shortName is the base name of the buffer file.
func shortName(buf *buffer.Buffer) string {
	if buf.Path == "" {
		return buf.Name()
	}
	return filepath.Base(buf.Path)
}

func newPicker(items []*buffer.Buffer, current *buffer.Buffer) *picker {
	p := &picker{items: items}
	for i, buf := range items {
		if buf == current {
			p.cursor = i
		}
	}
	return p
}

func (p *picker) move(n int) {
	p.cursor = max(min(p.cursor+n, len(p.items)-1), 0)
}

func (p *picker) selected() (*buffer.Buffer, bool) {
	if p.cursor >= len(p.items) {
		return nil, false
	}
	return p.items[p.cursor], true
}

func (p *picker) scroll(height int) {
	switch {
	case p.cursor < p.top:
		p.top = p.cursor
	case height > 0 && p.cursor >= p.top+height:
		p.top = p.cursor - height + 1
	}
}

func (app *Application) openPicker() {
	app.picker = newPicker(app.buffers.List(), app.buf)
	app.mode = ModeSelect
	app.message = "Enter open, d close, Esc back"
}

func (app *Application) handleSelectKey(ev *tcell.EventKey) {
	p := app.picker
	app.message = ""

	action := ev.Key()
	if action == tcell.KeyRune {
		switch ev.Rune() {
		case 'k':
			action = tcell.KeyUp
		case 'j':
			action = tcell.KeyDown
		case 'e':
			action = tcell.KeyEnter
		case 'q':
			action = tcell.KeyEscape
		case 'd':
			action = tcell.KeyDelete
		}
	}

	switch action {
	case tcell.KeyUp:
		p.move(-1)
	case tcell.KeyDown:
		p.move(1)
	case tcell.KeyHome:
		p.move(-len(p.items))
	case tcell.KeyEnd:
		p.move(len(p.items))
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.mode = ModeEdit
	case tcell.KeyEnter:
		if buf, ok := p.selected(); ok {
			app.mode = ModeEdit
			app.switchTo(buf)
		}
	case tcell.KeyDelete:
		buf, ok := p.selected()
		if !ok {
			return
		}
		if len(p.items) == 1 {
			app.message = "the last buffer stays open"
			return
		}
		question := "close " + shortName(buf) + "?"
		if buf.Dirty() {
			question = "close " + shortName(buf) + " and discard changes?"
		}
		app.popup = newConfirm(question, func() { app.closeBuffer(buf) })
	}
}

// closeBuffer drops buf, switching to another buffer if it is the one
// being edited.
func (app *Application) closeBuffer(buf *buffer.Buffer) {
	app.buffers.Close(buf.ID)
	app.log.Infof("closed %s", shortName(buf))

	list := app.buffers.List()
	if buf == app.buf && len(list) > 0 {
		app.buf = list[0]
		app.top = 0
	}
	cursor := app.picker.cursor
	app.picker = newPicker(list, app.buf)
	app.picker.cursor = min(cursor, len(list)-1)
	app.message = "closed " + shortName(buf)
}

func (app *Application) pickerBox(dims layout.Dimensions) {
	p := app.picker
	p.scroll(dims.Height)

	s := app.screen
	for y := 0; y < dims.Height; y++ {
		i := p.top + y
		if i >= len(p.items) {
			break
		}

		buf := p.items[i]
		label := "  " + shortName(buf)
		if buf.Dirty() {
			label += " [+]"
		}
		style := DefaultStyle
		if i == p.cursor {
			label = "> " + label[2:]
			style = SelectedStyle
		}
		drawString(s, dims.Origin.X, dims.Origin.Y+y, dims.Width-1, style, label)
	}

	right := dims.Origin.X + dims.Width - 1
	if p.top > 0 {
		s.SetContent(right, dims.Origin.Y, '^', nil, LightStyle)
	}
	if p.top+dims.Height < len(p.items) {
		s.SetContent(right, dims.Origin.Y+dims.Height-1, 'v', nil, LightStyle)
	}
}
