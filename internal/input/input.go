// Package input is the frontend-neutral description of what the player did
// during one tick. The Ebitengine and tcell frontends both translate their
// native events into a Frame.
package input

// Key represents a logical key. Frontends fold their native key codes onto
// these; anything unmapped becomes KeyOther so "any key" still works.
type Key uint8

const (
	KeyNone Key = iota
	KeyOther

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyWait      // skip a turn
	KeyEquipment // open the equipment popup

	// Digit keys select equipment slots directly.
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyOther:     "Other",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyWait:      "Wait",
	KeyEquipment: "Equipment",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	if d, ok := k.Digit(); ok {
		return string(rune('1' + d))
	}
	return "Unknown"
}

// Digit returns the 0-based slot for KeyDigit1..KeyDigit9.
func (k Key) Digit() (int, bool) {
	if k >= KeyDigit1 && k <= KeyDigit9 {
		return int(k - KeyDigit1), true
	}
	return 0, false
}

// FromRune maps a printable character to a Key.
func FromRune(r rune) Key {
	switch {
	case r >= '1' && r <= '9':
		return KeyDigit1 + Key(r-'1')
	}
	switch r {
	case 'w', 'W', 'k':
		return KeyUp
	case 's', 'S', 'j':
		return KeyDown
	case 'a', 'A', 'h':
		return KeyLeft
	case 'd', 'D', 'l':
		return KeyRight
	case 'i', 'I', 'e', 'E':
		return KeyEquipment
	case '.', ' ':
		return KeyWait
	}
	return KeyOther
}

// Click is a primary-button press at a window pixel position.
// The origin is the bottom-left corner of the window and y grows upward.
type Click struct {
	X, Y float64
}

// Frame is the input sampled at the start of a tick. Keys holds the keys
// that went down this tick, in the order the frontend saw them. At most one
// click is reported.
type Frame struct {
	Keys  []Key
	Click *Click
}

// AnyKey reports whether any key went down this tick.
func (f Frame) AnyKey() bool {
	return len(f.Keys) > 0
}

// Pressed reports whether k went down this tick.
func (f Frame) Pressed(k Key) bool {
	for _, got := range f.Keys {
		if got == k {
			return true
		}
	}
	return false
}

// FirstDigit returns the slot of the first digit key pressed this tick.
func (f Frame) FirstDigit() (int, bool) {
	for _, k := range f.Keys {
		if d, ok := k.Digit(); ok {
			return d, true
		}
	}
	return 0, false
}
