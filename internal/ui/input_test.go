package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongsim/internal/game"
)

func TestEventToKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want game.Key
		ok   bool
	}{
		{tcell.KeyUp, 0, game.KeyRightUp, true},
		{tcell.KeyDown, 0, game.KeyRightDown, true},
		{tcell.KeyRune, 'w', game.KeyLeftUp, true},
		{tcell.KeyRune, 'W', game.KeyLeftUp, true},
		{tcell.KeyRune, 's', game.KeyLeftDown, true},
		{tcell.KeyRune, 'S', game.KeyLeftDown, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyLeft, 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := EventToKey(tt.key, tt.rune)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("EventToKey(%v, %c) = %v, %v, want %v, %v", tt.key, tt.rune, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'x') {
		t.Error("'x' should not be quit key")
	}
}

func TestIsResetKey(t *testing.T) {
	if !IsResetKey(tcell.KeyRune, 'r') {
		t.Error("'r' should be reset key")
	}
	if IsResetKey(tcell.KeyRune, 'w') {
		t.Error("'w' should not be reset key")
	}
}

func TestKeyTracker_HoldWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	kt := NewKeyTracker(100 * time.Millisecond)

	kt.Advance(start)
	if kt.IsPressed(game.KeyLeftUp) {
		t.Error("no key should be held before any event")
	}

	kt.Press(game.KeyLeftUp, start)

	kt.Advance(start.Add(50 * time.Millisecond))
	if !kt.IsPressed(game.KeyLeftUp) {
		t.Error("key should be held inside the hold window")
	}
	if kt.IsPressed(game.KeyRightUp) {
		t.Error("other keys should not be held")
	}

	kt.Advance(start.Add(100 * time.Millisecond))
	if kt.IsPressed(game.KeyLeftUp) {
		t.Error("key should be released once the hold window passes")
	}

	// A repeat event extends the hold
	kt.Press(game.KeyLeftUp, start.Add(90*time.Millisecond))
	if !kt.IsPressed(game.KeyLeftUp) {
		t.Error("repeat event should keep the key held")
	}
}

func TestKeyTracker_OppositeCancels(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	kt := NewKeyTracker(DefaultHoldWindow)
	kt.Advance(now)

	kt.Press(game.KeyRightUp, now)
	kt.Press(game.KeyRightDown, now)

	if kt.IsPressed(game.KeyRightUp) {
		t.Error("up should be released when down is pressed")
	}
	if !kt.IsPressed(game.KeyRightDown) {
		t.Error("down should be held")
	}

	kt.Release()
	if kt.IsPressed(game.KeyRightDown) {
		t.Error("Release should clear all keys")
	}
}

func TestKeyTracker_HandleEvent(t *testing.T) {
	kt := NewKeyTracker(DefaultHoldWindow)

	ev := tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	if !kt.HandleEvent(ev) {
		t.Fatal("'w' should be handled as a movement key")
	}
	kt.Advance(ev.When())
	if !kt.IsPressed(game.KeyLeftUp) {
		t.Error("expected left up to be held after 'w'")
	}

	if kt.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("'x' should not be handled")
	}
}

func TestViewport_ToScreen(t *testing.T) {
	vp := Viewport{ScreenW: 80, ScreenH: 26, FieldWidth: 1280, FieldHeight: 720}

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"centre", 0, 0, 40, 13},
		{"top left corner", -640, 360, 0, 1},
		{"bottom right corner", 640, -360, 79, 24},
		{"left paddle", -512, 0, 8, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := vp.ToScreen(tt.x, tt.y)
			if col != tt.col || row != tt.row {
				t.Errorf("ToScreen(%g, %g) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}

	if rows := vp.Rows(120); rows != 4 {
		t.Errorf("expected paddle to span 4 rows, got %d", rows)
	}
	if rows := vp.Rows(8); rows != 1 {
		t.Errorf("expected ball to span at least 1 row, got %d", rows)
	}
}
