package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Grab       key.Binding
	Drop       key.Binding
	Reset      key.Binding
	Fullscreen key.Binding
	Back       key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Scores     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Grab: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "pick disk"),
		),
		Drop: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "drop disk"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("alt+enter", "f11"),
			key.WithHelp("alt+enter", "fullscreen"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "alt+f4"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
	}
}

// Classify maps a key message to at most one action.
// Unbound keys yield core.ActionNone. Fullscreen is checked before Confirm
// so alt+enter never starts a game.
func (k KeyMap) Classify(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Fullscreen):
		return core.ActionToggleFullscreen
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Grab):
		return core.ActionGrab
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	}
	return core.ActionNone
}

// ShortHelp returns the bindings shown in the play footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Grab, k.Drop, k.Reset, k.Back, k.Quit}
}

// FullHelp returns all bindings grouped by screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Grab, k.Drop, k.Reset},
		{k.Confirm, k.Scores, k.Back},
		{k.Fullscreen, k.Quit},
	}
}
