package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromTeaMapsNavigationKeys(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want Code
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, Left},
		{tea.KeyMsg{Type: tea.KeyRight}, Right},
		{tea.KeyMsg{Type: tea.KeyUp}, Up},
		{tea.KeyMsg{Type: tea.KeyDown}, Down},
		{tea.KeyMsg{Type: tea.KeyEnter}, Enter},
		{tea.KeyMsg{Type: tea.KeyEsc}, Back},
		{tea.KeyMsg{Type: tea.KeyBackspace}, Back},
		{tea.KeyMsg{Type: tea.KeyPgUp}, PageUp},
		{tea.KeyMsg{Type: tea.KeyPgDown}, PageDown},
		{tea.KeyMsg{Type: tea.KeyHome}, Home},
		{tea.KeyMsg{Type: tea.KeyEnd}, End},
		{tea.KeyMsg{Type: tea.KeySpace}, Play},
	}
	for _, tc := range cases {
		got, _, ok := FromTea(tc.msg)
		if !ok {
			t.Fatalf("expected %v to map", tc.msg)
		}
		if got != tc.want {
			t.Fatalf("expected %s for %v, got %s", tc.want, tc.msg, got)
		}
	}
}

func TestFromTeaShiftedTransportKeys(t *testing.T) {
	code, mods, ok := FromTea(tea.KeyMsg{Type: tea.KeyShiftLeft})
	if !ok || code != Rewind || !mods.Shift {
		t.Fatalf("expected shifted rewind, got %s mods=%+v ok=%v", code, mods, ok)
	}
	code, mods, ok = FromTea(tea.KeyMsg{Type: tea.KeyShiftRight})
	if !ok || code != FastForward || !mods.Shift {
		t.Fatalf("expected shifted fast-forward, got %s mods=%+v ok=%v", code, mods, ok)
	}
}

func TestFromTeaUnknownRuneDoesNotMap(t *testing.T) {
	if _, _, ok := FromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); ok {
		t.Fatalf("expected plain runes to stay unmapped")
	}
}

func TestCodeStrings(t *testing.T) {
	if None.String() != "none" || FastForward.String() != "fastforward" {
		t.Fatalf("unexpected code names: %s, %s", None, FastForward)
	}
	if Code(99).String() != "unknown" {
		t.Fatalf("expected unknown for out-of-range code")
	}
}
