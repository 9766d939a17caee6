package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kojo-codeur/Mario/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"f", runeKey('f'), core.ActionFire},
		{"x", runeKey('x'), core.ActionFire},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionMenu},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestIsHeld(t *testing.T) {
	held := []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionFire}
	for _, a := range held {
		if !IsHeld(a) {
			t.Errorf("IsHeld(%v) = false, expected true", a)
		}
	}
	for _, a := range []core.Action{core.ActionConfirm, core.ActionMenu, core.ActionUp, core.ActionRestart} {
		if IsHeld(a) {
			t.Errorf("IsHeld(%v) = true, expected false", a)
		}
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()
	if len(keys.ShortHelp()) == 0 || len(keys.FullHelp()) == 0 {
		t.Error("help views should list bindings")
	}
}
