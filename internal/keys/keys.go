// Package keys defines the remote-control key vocabulary shared by the
// component tree and the zone controller, plus the adapter from Bubble Tea
// input messages.
package keys

import tea "github.com/charmbracelet/bubbletea"

// Code identifies a navigation or transport key.
type Code int

const (
	None Code = iota
	Left
	Right
	Up
	Down
	Enter
	Back
	PageUp
	PageDown
	Home
	End
	Play
	Pause
	Stop
	Rewind
	FastForward
)

var codeNames = map[Code]string{
	None:        "none",
	Left:        "left",
	Right:       "right",
	Up:          "up",
	Down:        "down",
	Enter:       "enter",
	Back:        "back",
	PageUp:      "pgup",
	PageDown:    "pgdown",
	Home:        "home",
	End:         "end",
	Play:        "play",
	Pause:       "pause",
	Stop:        "stop",
	Rewind:      "rewind",
	FastForward: "fastforward",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}

// Modifiers carries key modifier flags.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// FromTea translates a Bubble Tea key message into a remote key code.
// The boolean result reports whether the message maps to a known code.
func FromTea(msg tea.KeyMsg) (Code, Modifiers, bool) {
	mods := Modifiers{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyLeft:
		return Left, mods, true
	case tea.KeyRight:
		return Right, mods, true
	case tea.KeyUp:
		return Up, mods, true
	case tea.KeyDown:
		return Down, mods, true
	case tea.KeyEnter:
		return Enter, mods, true
	case tea.KeyEsc, tea.KeyBackspace:
		return Back, mods, true
	case tea.KeyPgUp:
		return PageUp, mods, true
	case tea.KeyPgDown:
		return PageDown, mods, true
	case tea.KeyHome:
		return Home, mods, true
	case tea.KeyEnd:
		return End, mods, true
	case tea.KeyShiftLeft:
		mods.Shift = true
		return Rewind, mods, true
	case tea.KeyShiftRight:
		mods.Shift = true
		return FastForward, mods, true
	case tea.KeySpace:
		return Play, mods, true
	}
	return None, mods, false
}
