package tui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/racer"
	"github.com/vovakirdan/neon-arcade/internal/games/runner"
	"github.com/vovakirdan/neon-arcade/internal/games/stack"
)

// Default hold timeouts. The first repeat of a held key arrives after the
// terminal's repeat delay, later repeats much faster.
const (
	DefaultHoldInitial = 500 * time.Millisecond
	DefaultHoldRepeat  = 150 * time.Millisecond
)

// commonBindings apply to every game.
var commonBindings = map[string]core.Action{
	"left":   core.ActionMoveLeft,
	"a":      core.ActionMoveLeft,
	"h":      core.ActionMoveLeft,
	"right":  core.ActionMoveRight,
	"d":      core.ActionMoveRight,
	"l":      core.ActionMoveRight,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"esc":    core.ActionBack,
	"r":      core.ActionRestart,
	"p":      core.ActionPause,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

// gameBindings add or override keys per game ID.
var gameBindings = map[string]map[string]core.Action{
	runner.ID: {
		" ":  core.ActionJump,
		"up": core.ActionJump,
		"w":  core.ActionJump,
	},
	racer.ID: {
		"up":   core.ActionAccelerate,
		"w":    core.ActionAccelerate,
		"down": core.ActionBrake,
		"s":    core.ActionBrake,
	},
	stack.ID: {
		" ": core.ActionPlace,
	},
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the bindings for one game.
// An unknown or empty game ID gets only the common bindings.
func NewKeyMapper(gameID string) *KeyMapper {
	b := make(map[string]core.Action, len(commonBindings)+4)
	for k, a := range commonBindings {
		b[k] = a
	}
	for k, a := range gameBindings[gameID] {
		b[k] = a
	}
	return &KeyMapper{bindings: b}
}

// MapKey translates a key message to an action (ActionNone if unbound).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	return km.bindings[msg.String()]
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionLeft
	MenuActionRight
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	}
	return MenuActionNone
}

// HoldTracker turns the key-repeat stream of a terminal into press/release
// pairs. Terminals never report key-up, so a held action is released once
// no repeat has arrived within the timeout.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Action]time.Time // release deadline
}

// NewHoldTracker creates a tracker. initial applies after the first press,
// repeat after every further one.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Action]time.Time),
	}
}

// Holdable reports whether an action is tracked for release.
func Holdable(a core.Action) bool {
	return a == core.ActionMoveLeft || a == core.ActionMoveRight
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	}
	return core.ActionNone
}

// Press records a key-down at now. Pressing a direction releases its
// opposite immediately; the released actions are returned.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.Action {
	if !Holdable(a) {
		return nil
	}

	var released []core.Action
	if o := opposite(a); o != core.ActionNone {
		if _, ok := h.held[o]; ok {
			delete(h.held, o)
			released = append(released, o)
		}
	}

	if _, ok := h.held[a]; ok {
		h.held[a] = now.Add(h.repeat)
	} else {
		h.held[a] = now.Add(h.initial)
	}
	return released
}

// Held reports whether an action is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}

// Expire releases every action whose deadline has passed, in action order.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, deadline := range h.held {
		if !now.Before(deadline) {
			released = append(released, a)
			delete(h.held, a)
		}
	}
	slices.Sort(released)
	return released
}

// ReleaseAll releases everything, e.g. when the game pauses.
func (h *HoldTracker) ReleaseAll() []core.Action {
	released := make([]core.Action, 0, len(h.held))
	for a := range h.held {
		released = append(released, a)
	}
	clear(h.held)
	slices.Sort(released)
	return released
}
