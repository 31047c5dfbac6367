package application

import (
	"errors"
	"fmt"
	"strings"

	"goditor/buffer"
	"goditor/commands"
)

var errUsage = errors.New("wrong number of arguments")

func (app *Application) registerCommands() {
	c := app.commands

	c.Register("write", func(args []string) error {
		if len(args) > 0 && args[0] == commands.Force {
			args = args[1:]
		}
		if len(args) > 1 {
			return errUsage
		}
		app.save(strings.Join(args, ""))
		return nil
	})
	c.Register("quit", func(args []string) error {
		switch {
		case len(args) == 0:
			app.exit(false)
		case len(args) == 1 && args[0] == commands.Force:
			app.quitNow()
		default:
			return errUsage
		}
		return nil
	})
	c.Register("wq", func([]string) error {
		if app.buf.Path == "" {
			return buffer.ErrNoPath
		}
		app.exit(true)
		return nil
	})
	c.Register("paste", func([]string) error {
		return app.buf.Paste()
	})
	c.Register("edit", func(args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		buf, err := app.buffers.OpenFile(args[0])
		if err != nil {
			return err
		}
		app.switchTo(buf)
		return nil
	})
	c.Register("buffers", func([]string) error {
		app.openPicker()
		return nil
	})
	c.Register("next", func([]string) error {
		list := app.buffers.List()
		for i, buf := range list {
			if buf == app.buf {
				app.switchTo(list[(i+1)%len(list)])
				return nil
			}
		}
		return nil
	})
	c.Register("stats", func([]string) error {
		stats := app.buf.Rope().Stats()
		app.message = fmt.Sprintf("%d bytes in %d leaves, depth %d, leaf mean %.1f sd %.1f",
			stats.Length, stats.Leaves, stats.Depth, stats.MeanLeaf, stats.StdDevLeaf)
		return nil
	})
	c.Register("verify", func([]string) error {
		if err := app.buf.Rope().Verify(); err != nil {
			return err
		}
		app.message = "rope ok"
		return nil
	})
	c.Register("help", func([]string) error {
		app.message = strings.Join(c.Names(), " ")
		return nil
	})
}

func (app *Application) switchTo(buf *buffer.Buffer) {
	app.buf = buf
	app.top = 0
	app.message = buf.Name()
}
