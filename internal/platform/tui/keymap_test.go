package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixeldrift/arcade-hall/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"w", core.ActionUp},
		{"up", core.ActionUp},
		{"s", core.ActionDown},
		{"down", core.ActionDown},
		{"a", core.ActionLeft},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{" ", core.ActionPrimary},
		{"x", core.ActionSecondary},
		{"enter", core.ActionConfirm},
		{"b", core.ActionBack},
		{"esc", core.ActionBack},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"z", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.MapKey(keyMsg(tc.key)); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("w"), &frame)
	km.MapKeyToFrame(keyMsg(" "), &frame)

	if !frame.Has(core.ActionUp) || !frame.Has(core.ActionPrimary) {
		t.Error("Mapped keys should land in the input frame")
	}

	// Unbound keys must not pollute the frame
	km.MapKeyToFrame(keyMsg("z"), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("Unbound key should not set ActionNone in the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected MenuAction
	}{
		{"w", MenuActionUp},
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"s", MenuActionDown},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"b", MenuActionBack},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"z", MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.expected {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}
