package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddle-rush/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "c":
		return core.ActionDebug, false
	}
	return core.ActionNone, false
}

// holdWindow is how long a steering key counts as held after its last
// press. Terminals only report presses, so key repeat keeps refreshing it.
const holdWindow = 150 * time.Millisecond

// heldActions are the actions that stay on between key repeats. Everything
// else fires on exactly one tick.
var heldActions = map[core.Action]bool{
	core.ActionUp:    true,
	core.ActionDown:  true,
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionFire:  true,
}

// HeldInput builds per-tick input frames from key presses.
type HeldInput struct {
	window time.Duration
	last   map[core.Action]time.Time
	edges  core.InputFrame
}

// NewHeldInput creates a tracker with the default hold window.
func NewHeldInput() *HeldInput {
	return &HeldInput{
		window: holdWindow,
		last:   make(map[core.Action]time.Time),
		edges:  core.NewInputFrame(),
	}
}

// Press records a key press at now.
func (h *HeldInput) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if heldActions[a] {
		h.last[a] = now
	}
	// A press always reaches the next tick, even for steering keys whose
	// hold has already lapsed by then.
	h.edges.Set(a)
}

// Frame returns the actions active at now and consumes one-shot presses.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a := range h.edges.Actions {
		frame.Set(a)
	}
	h.edges.Clear()
	for a, t := range h.last {
		if now.Sub(t) <= h.window {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	return frame
}

// Release forgets every held key.
func (h *HeldInput) Release() {
	clear(h.last)
	h.edges.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
