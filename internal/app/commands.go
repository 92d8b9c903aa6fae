package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/yourusername/mado-cli/internal/geometry"
	"github.com/yourusername/mado-cli/internal/logging"
)

// Command is a named one-shot action
type Command string

const (
	CmdCenter             Command = "center"
	CmdAlignLeft          Command = "align-left"
	CmdAlignRight         Command = "align-right"
	CmdAlignUp            Command = "align-up"
	CmdAlignDown          Command = "align-down"
	CmdMaximize           Command = "maximize"
	CmdMaximizeHorizontal Command = "maximize-horizontal"
	CmdMaximizeVertical   Command = "maximize-vertical"
	CmdSnap               Command = "snap"
)

var geometryCommands = map[Command]func(*geometry.Geometry, context.Context) error{
	CmdCenter:             (*geometry.Geometry).Center,
	CmdAlignLeft:          (*geometry.Geometry).AlignLeft,
	CmdAlignRight:         (*geometry.Geometry).AlignRight,
	CmdAlignUp:            (*geometry.Geometry).AlignUp,
	CmdAlignDown:          (*geometry.Geometry).AlignDown,
	CmdMaximize:           (*geometry.Geometry).Maximize,
	CmdMaximizeHorizontal: (*geometry.Geometry).MaximizeHorizontal,
	CmdMaximizeVertical:   (*geometry.Geometry).MaximizeVertical,
}

// Commands returns every command name, sorted
func Commands() []Command {
	cmds := make([]Command, 0, len(geometryCommands)+1)
	for c := range geometryCommands {
		cmds = append(cmds, c)
	}
	cmds = append(cmds, CmdSnap)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i] < cmds[j] })
	return cmds
}

// ParseCommand validates a command name
func ParseCommand(s string) (Command, error) {
	c := Command(s)
	if c == CmdSnap {
		return c, nil
	}
	if _, ok := geometryCommands[c]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown command: %s", s)
}

// Run executes a named command against the target window. Snap uses the
// default preset.
func (s *State) Run(ctx context.Context, cmd Command) error {
	logging.Info().Str("command", string(cmd)).Msg("running command")

	if cmd == CmdSnap {
		return s.Snap(ctx, "")
	}

	fn, ok := geometryCommands[cmd]
	if !ok {
		return fmt.Errorf("unknown command: %s", cmd)
	}

	g, err := s.geometry(ctx)
	if err != nil {
		return err
	}
	return fn(g, ctx)
}

// CommandForKey maps the interactive mode letter shortcuts
func CommandForKey(ev KeyEvent) (Command, bool) {
	if ev.Key != KeyRune || ev.Ctrl || ev.Alt || ev.Cmd {
		return "", false
	}
	switch ev.Rune {
	case 'c':
		return CmdCenter, true
	case 'm':
		return CmdMaximize, true
	case 'w':
		return CmdMaximizeHorizontal, true
	case 'e':
		return CmdMaximizeVertical, true
	case 'h':
		return CmdAlignLeft, true
	case 'l':
		return CmdAlignRight, true
	case 'k':
		return CmdAlignUp, true
	case 'j':
		return CmdAlignDown, true
	case 's':
		return CmdSnap, true
	}
	return "", false
}
