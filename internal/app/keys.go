package app

import (
	"context"

	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/types"
)

// Key identifies a key independent of modifiers
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyRune
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEscape:
		return "escape"
	case KeyRune:
		return "rune"
	default:
		return "none"
	}
}

// KeyEvent is one decoded key press
type KeyEvent struct {
	Key   Key
	Rune  rune // set for KeyRune
	Shift bool
	Alt   bool
	Ctrl  bool
	Cmd   bool
}

// Direction returns the arrow direction, or false for non-arrow keys
func (e KeyEvent) Direction() (types.Direction, bool) {
	switch e.Key {
	case KeyLeft:
		return types.DirLeft, true
	case KeyRight:
		return types.DirRight, true
	case KeyUp:
		return types.DirUp, true
	case KeyDown:
		return types.DirDown, true
	}
	return 0, false
}

// ActionKind is what an arrow key does
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionResize
)

func (k ActionKind) String() string {
	if k == ActionResize {
		return "resize"
	}
	return "move"
}

// Action is the geometry operation an arrow key maps to
type Action struct {
	Kind      ActionKind
	Direction types.Direction
	Step      float64
}

// ActionForKey maps an arrow key to an action. Plain arrows move, option
// arrows resize, and shift selects the large step. Control or command held
// maps to nothing.
func ActionForKey(ev KeyEvent, smallStep, largeStep float64) (Action, bool) {
	dir, ok := ev.Direction()
	if !ok || ev.Ctrl || ev.Cmd {
		return Action{}, false
	}

	step := smallStep
	if ev.Shift {
		step = largeStep
	}

	kind := ActionMove
	if ev.Alt {
		kind = ActionResize
	}
	return Action{Kind: kind, Direction: dir, Step: step}, true
}

// HandleKey applies a key press to the target window. Escape returns
// ErrClosed; unmapped keys are ignored.
func (s *State) HandleKey(ctx context.Context, ev KeyEvent) error {
	if ev.Key == KeyEscape {
		return ErrClosed
	}

	action, ok := ActionForKey(ev, s.cfg.Settings.SmallStep, s.cfg.Settings.LargeStep)
	if !ok {
		return nil
	}

	logging.Debug().
		Str("action", action.Kind.String()).
		Str("direction", action.Direction.String()).
		Float64("step", action.Step).
		Msg("key action")

	g, err := s.geometry(ctx)
	if err != nil {
		return err
	}
	if action.Kind == ActionResize {
		return g.Resize(ctx, action.Direction, action.Step)
	}
	return g.Move(ctx, action.Direction, action.Step)
}
