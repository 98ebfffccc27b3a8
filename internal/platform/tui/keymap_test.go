package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-waverunner/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{keyMsg('w'), core.ActionJump},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{keyMsg('f'), core.ActionFire},
		{keyMsg('e'), core.ActionPulse},
		{keyMsg('g'), core.ActionSpecial},
		{keyMsg('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{keyMsg('r'), core.ActionReset},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{keyMsg('x'), core.ActionNone},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(tc.msg)
		if action != tc.action {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), action, tc.action)
		}
		if isQuit {
			t.Errorf("MapKey(%q) flagged quit", tc.msg.String())
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{keyMsg('q'), {Type: tea.KeyCtrlC}} {
		action, isQuit := km.MapKey(msg)
		if !isQuit {
			t.Errorf("MapKey(%q) should flag quit", msg.String())
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, expected ActionQuit", msg.String(), action)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg('f'), &frame) {
		t.Error("fire key should not be a quit request")
	}
	if !frame.Has(core.ActionFire) {
		t.Error("fire key should set the fire action")
	}

	// Unknown keys leave the frame alone
	km.MapKeyToFrame(keyMsg('x'), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("unknown keys must not set ActionNone")
	}
}
