// Package application is the terminal front end of the editor. It turns
// tcell events into buffer operations and draws the buffer, a line number
// gutter and a status line.
package application

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"goditor/buffer"
	"goditor/commands"
	"goditor/config"
	"goditor/layout"
	"goditor/logging"
)

type Mode int

const (
	// ModeEdit types into the buffer.
	ModeEdit Mode = iota
	// ModeCommand edits the command line.
	ModeCommand
	// ModeSelect picks one of the open buffers.
	ModeSelect
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "Command"
	case ModeSelect:
		return "Select"
	}
	return "Edit"
}

// configEvent carries reloaded settings from the config watcher into the
// event loop.
type configEvent struct {
	tcell.EventTime
	editor config.EditorConfig
}

type Application struct {
	screen   tcell.Screen
	buffers  *buffer.Buffers
	buf      *buffer.Buffer
	config   *config.Config
	editor   config.EditorConfig
	commands *commands.Commands
	log      logging.Logger

	mode    Mode
	cmdline []rune
	message string

	// popup, when set, takes the keys until it is answered.
	popup  *popup
	picker *picker

	// top is the first buffer line shown.
	top      int
	textDims layout.Dimensions
	quit     bool
}

// New creates an application editing buf. The screen must be initialized.
func New(screen tcell.Screen, buffers *buffer.Buffers, buf *buffer.Buffer, cfg *config.Config, log logging.Logger) *Application {
	app := &Application{
		screen:   screen,
		buffers:  buffers,
		buf:      buf,
		config:   cfg,
		editor:   cfg.Editor(),
		commands: commands.NewCommands(log.Named("commands")),
		log:      log,
	}
	app.registerCommands()

	cfg.OnChange(func(editor config.EditorConfig) {
		ev := &configEvent{editor: editor}
		ev.SetEventNow()
		if err := screen.PostEvent(ev); err != nil {
			log.Warnf("dropping config change: %v", err)
		}
	})
	return app
}

// Buffer returns the buffer being edited.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buf
}

// Run draws and handles events until the user quits. A panic restores the
// terminal before it propagates.
func (app *Application) Run() (err error) {
	defer app.finish()

	for !app.quit {
		app.draw()
		app.handleEvent(app.screen.PollEvent())
	}
	return nil
}

func (app *Application) finish() {
	// catch panics so the terminal is restored before they are reported
	maybePanic := recover()
	app.screen.Fini()

	if maybePanic != nil {
		app.log.Errorf("panic: %v", maybePanic)
		_ = logging.Sync()
		panic(maybePanic)
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
	case *configEvent:
		app.applyConfig(ev.editor)
	case *tcell.EventKey:
		switch {
		case app.popup != nil:
			app.handlePopupKey(ev)
		case app.mode == ModeCommand:
			app.handleCommandKey(ev)
		case app.mode == ModeSelect:
			app.handleSelectKey(ev)
		default:
			app.handleEditKey(ev)
		}
	case *tcell.EventMouse:
		if ev.Buttons() == tcell.Button1 && app.popup == nil && app.mode == ModeEdit {
			app.click(ev.Position())
		}
	}
}

func (app *Application) handleEditKey(ev *tcell.EventKey) {
	buf := app.buf
	app.message = ""

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		app.exit(true)
	case tcell.KeyCtrlS:
		app.save("")
	case tcell.KeyCtrlV:
		if err := buf.Paste(); err != nil {
			app.fail(err)
		}
	case tcell.KeyCtrlX:
		app.mode = ModeCommand
		app.cmdline = app.cmdline[:0]
	case tcell.KeyCtrlB:
		app.openPicker()
	case tcell.KeyCtrlL:
		app.screen.Sync()
	case tcell.KeyUp:
		buf.MoveUp()
	case tcell.KeyDown:
		buf.MoveDown()
	case tcell.KeyLeft:
		buf.MoveLeft()
	case tcell.KeyRight:
		buf.MoveRight()
	case tcell.KeyHome:
		buf.MoveHome()
	case tcell.KeyEnd:
		buf.MoveEnd()
	case tcell.KeyCtrlE:
		buf.MoveToEnd()
	case tcell.KeyEnter:
		buf.TypeRune('\n')
	case tcell.KeyTab:
		buf.TypeRune('\t')
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		app.message = "text can only be added at the end"
	case tcell.KeyRune:
		buf.TypeRune(ev.Rune())
	}
}

func (app *Application) handleCommandKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.mode = ModeEdit
	case tcell.KeyEnter:
		app.mode = ModeEdit
		line := string(app.cmdline)
		app.message = ""
		if err := app.commands.Exec(line); err != nil {
			app.fail(err)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(app.cmdline) == 0 {
			app.mode = ModeEdit
			return
		}
		app.cmdline = app.cmdline[:len(app.cmdline)-1]
	case tcell.KeyRune:
		app.cmdline = append(app.cmdline, ev.Rune())
	}
}

func (app *Application) handlePopupKey(ev *tcell.EventKey) {
	p := app.popup
	button := p.handleKey(ev)
	if button < 0 {
		return
	}
	app.popup = nil
	p.choose(button)
}

// confirm asks question in a popup and runs yes if the answer is YES.
func (app *Application) confirm(question string, yes func()) {
	app.popup = newConfirm(question, yes)
}

// exit leaves the event loop. With save set, a dirty buffer that has a file
// is written first and the application stays open if that fails. Unsaved
// changes left in any buffer are confirmed before they are dropped.
func (app *Application) exit(save bool) {
	if save && app.buf.Dirty() && app.buf.Path != "" {
		if err := app.buf.Save(); err != nil {
			app.fail(err)
			return
		}
		app.log.Infof("wrote %s on exit", app.buf.Path)
	}

	switch unsaved := app.unsaved(); len(unsaved) {
	case 0:
		app.quit = true
	case 1:
		app.confirm(fmt.Sprintf("discard changes to %s?", shortName(unsaved[0])), app.quitNow)
	default:
		app.confirm(fmt.Sprintf("discard changes to %d buffers?", len(unsaved)), app.quitNow)
	}
}

func (app *Application) quitNow() {
	app.log.Infof("quitting without saving")
	app.quit = true
}

func (app *Application) unsaved() []*buffer.Buffer {
	var dirty []*buffer.Buffer
	for _, buf := range app.buffers.List() {
		if buf.Dirty() {
			dirty = append(dirty, buf)
		}
	}
	return dirty
}

func (app *Application) save(path string) {
	var err error
	if path == "" {
		err = app.buf.Save()
	} else {
		err = app.buf.SaveAs(path)
	}
	if errors.Is(err, buffer.ErrNoPath) {
		app.message = "no file name, use: write <file>"
		return
	}
	if err != nil {
		app.fail(err)
		return
	}
	app.message = fmt.Sprintf("wrote %d bytes to %s", app.buf.Len(), app.buf.Path)
}

func (app *Application) fail(err error) {
	app.log.Warnf("%v", err)
	app.message = err.Error()
}

func (app *Application) applyConfig(editor config.EditorConfig) {
	app.editor = editor
	app.buffers.SetLeafSize(editor.LeafSize)
	if err := logging.SetLogLevel(editor.LogLevel); err != nil {
		app.log.Warnf("%v", err)
	}
	app.message = "config reloaded"
}

// click moves the caret to the character shown at screen position x, y.
func (app *Application) click(x, y int) {
	text := app.textDims
	if x < text.Origin.X || y < text.Origin.Y || y >= text.Origin.Y+text.Height {
		return
	}

	row := app.top + y - text.Origin.Y
	if row >= app.buf.LineCount() {
		row = app.buf.LineCount() - 1
	}
	col := columnAtCell(app.buf.Line(row), x-text.Origin.X, app.editor.TabWidth)
	app.buf.SetCaret(app.buf.LineStart(row) + col)
}
