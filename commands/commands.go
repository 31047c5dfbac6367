// Package commands maps the names typed on the editor command line to
// actions.
package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"goditor/logging"
)

var (
	// ErrUnknownCommand is returned when no command matches.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrAmbiguousCommand is returned when an abbreviation matches several commands.
	ErrAmbiguousCommand = errors.New("ambiguous command")
)

// Force is passed as the first argument when a command name ends in "!",
// so "quit!" and "quit !" run the same command.
const Force = "!"

// Command runs with the words following its name.
type Command func(args []string) error

type Commands struct {
	log      logging.Logger
	commands map[string]Command
}

func NewCommands(log logging.Logger) *Commands {
	return &Commands{log: log, commands: make(map[string]Command)}
}

func (c *Commands) Register(name string, command Command) {
	c.commands[name] = command
}

// Exec runs a command line such as "write notes.txt". The command name may
// be abbreviated as long as the abbreviation is unambiguous.
func (c *Commands) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	typed, args := fields[0], fields[1:]
	if len(typed) > 1 && strings.HasSuffix(typed, Force) {
		typed = strings.TrimSuffix(typed, Force)
		args = append([]string{Force}, args...)
	}

	name, cmd, err := c.find(typed)
	if err != nil {
		c.log.Infof("command %q: %v", fields[0], err)
		return err
	}

	c.log.Debugf("running %s %v", name, args)
	if err := cmd(args); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Names returns the registered command names, sorted.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Commands) find(prefix string) (string, Command, error) {
	if cmd, ok := c.commands[prefix]; ok {
		return prefix, cmd, nil
	}

	var matches []string
	for name := range c.commands {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return "", nil, fmt.Errorf("%s: %w", prefix, ErrUnknownCommand)
	case 1:
		return matches[0], c.commands[matches[0]], nil
	default:
		sort.Strings(matches)
		return "", nil, fmt.Errorf("%s matches %s: %w", prefix, strings.Join(matches, ", "), ErrAmbiguousCommand)
	}
}
