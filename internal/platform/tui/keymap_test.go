package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ineqlab/ineq-arcade/internal/core"
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
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKeyGameActions(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"tab", core.ActionNext},
		{"t", core.ActionToggle},
		{"+", core.ActionIncrease},
		{"-", core.ActionDecrease},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"esc", core.ActionBack},
	}
	for _, tc := range cases {
		action, quit := km.MapKey(keyMsg(tc.key))
		if quit {
			t.Errorf("key %q should not quit", tc.key)
		}
		if action != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, quit := km.MapKey(keyMsg(key))
		if !quit || action != core.ActionQuit {
			t.Errorf("key %q should map to quit, got %v/%v", key, action, quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("enter"), &frame) {
		t.Error("enter is not a quit key")
	}
	if !frame.Has(core.ActionConfirm) {
		t.Error("frame should record the mapped action")
	}

	// Unknown keys leave the frame untouched.
	before := len(frame.Actions)
	km.MapKeyToFrame(keyMsg("z"), &frame)
	if len(frame.Actions) != before {
		t.Error("unknown key should not add actions")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}
	for _, tc := range cases {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}
