package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-shift/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), mouseSwipeCells)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tc.msg)
			if got != tc.want || isQuit != tc.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), got, isQuit, tc.want, tc.isQuit)
			}
		})
	}
}

func TestMapMouseCancelsOffscreenRelease(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 3)
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 40, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 20, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 10, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}, &frame)
	if len(frame.Moves) != 0 {
		t.Errorf("Moves = %v after a cancelled swipe, expected none", frame.Moves)
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 40, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, &frame)
	km.CancelSwipe()
	km.MapMouseToFrame(tea.MouseMsg{X: 10, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}, &frame)
	if len(frame.Moves) != 0 {
		t.Errorf("Moves = %v after CancelSwipe, expected none", frame.Moves)
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 40, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 10, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}, &frame)
	if len(frame.Moves) != 1 || frame.Moves[0] != -1 {
		t.Errorf("Moves = %v, expected [-1]", frame.Moves)
	}
}

func TestMapMouseSwipe(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 3)

	press := func(x int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	}
	release := func(x int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}
	}

	tests := []struct {
		name     string
		from, to int
		want     core.Action
	}{
		{"drag left", 40, 30, core.ActionLeft},
		{"drag right", 10, 20, core.ActionRight},
		{"click", 10, 10, core.ActionNone},
		{"at threshold", 10, 13, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapMouse(press(tc.from)); got != core.ActionNone {
				t.Fatalf("press returned %v", got)
			}
			if got := km.MapMouse(release(tc.to)); got != tc.want {
				t.Errorf("swipe %d->%d = %v, expected %v", tc.from, tc.to, got, tc.want)
			}
		})
	}

	if got := km.MapMouse(release(0)); got != core.ActionNone {
		t.Errorf("release without press = %v, expected none", got)
	}

	wheel := tea.MouseMsg{X: 5, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}
	if got := km.MapMouse(wheel); got != core.ActionNone {
		t.Errorf("wheel = %v, expected none", got)
	}
}
