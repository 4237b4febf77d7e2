package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongsim/internal/game"
)

// DefaultHoldWindow is how long a key counts as held after its last event.
// It must exceed the terminal's key-repeat delay or paddles stutter.
const DefaultHoldWindow = 150 * time.Millisecond

// EventToKey converts a key event to a paddle movement key.
// Left paddle: w/s. Right paddle: arrow up/down.
func EventToKey(key tcell.Key, r rune) (game.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return game.KeyRightUp, true
	case tcell.KeyDown:
		return game.KeyRightDown, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.KeyLeftUp, true
		case 's', 'S':
			return game.KeyLeftDown, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsResetKey returns true if the key should restart the match
func IsResetKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}

// KeyTracker turns terminal key events into held-key state. Terminals report
// presses and auto-repeats but never releases, so a key stays held until
// the hold window passes without another event for it.
type KeyTracker struct {
	hold     time.Duration
	now      time.Time
	lastSeen [4]time.Time // indexed by game.Key
}

// NewKeyTracker creates a tracker with the given hold window
func NewKeyTracker(hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyTracker{hold: hold}
}

// Press records an event for key at time t
func (kt *KeyTracker) Press(key game.Key, t time.Time) {
	if int(key) < 0 || int(key) >= len(kt.lastSeen) {
		return
	}
	kt.lastSeen[key] = t

	// Opposite directions on the same paddle cannot both be held; the newer
	// event wins so reversing feels immediate.
	kt.lastSeen[opposite(key)] = time.Time{}
}

// HandleEvent records a tcell key event. Returns true if the event was a
// movement key.
func (kt *KeyTracker) HandleEvent(ev *tcell.EventKey) bool {
	key, ok := EventToKey(ev.Key(), ev.Rune())
	if !ok {
		return false
	}
	kt.Press(key, ev.When())
	return true
}

// Advance sets the time IsPressed is evaluated at, once per frame
func (kt *KeyTracker) Advance(now time.Time) {
	kt.now = now
}

// IsPressed reports whether key had an event within the hold window
func (kt *KeyTracker) IsPressed(key game.Key) bool {
	if int(key) < 0 || int(key) >= len(kt.lastSeen) {
		return false
	}
	seen := kt.lastSeen[key]
	if seen.IsZero() {
		return false
	}
	return kt.now.Sub(seen) < kt.hold
}

// Release forgets all held keys
func (kt *KeyTracker) Release() {
	kt.lastSeen = [4]time.Time{}
}

func opposite(key game.Key) game.Key {
	switch key {
	case game.KeyLeftUp:
		return game.KeyLeftDown
	case game.KeyLeftDown:
		return game.KeyLeftUp
	case game.KeyRightUp:
		return game.KeyRightDown
	}
	return game.KeyRightUp
}
