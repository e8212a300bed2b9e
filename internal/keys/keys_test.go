package keys

import "testing"

var all = map[string]string{
	"up": Up, "down": Down, "pgup": PgUp, "pgdown": PgDown,
	"ctrl+up": CtrlUp, "ctrl+down": CtrlDown,
	"enter": Enter, "shift+enter": ShiftEnter, "alt+enter": AltEnter,
	"tab": Tab, "backspace": Backspace, "esc": Escape,
	"ctrl+c": CtrlC, "ctrl+d": CtrlD, "ctrl+l": CtrlL, "ctrl+o": CtrlO,
	"ctrl+s": CtrlS, "ctrl+u": CtrlU, "ctrl+y": CtrlY,
}

func TestKeyStrings(t *testing.T) {
	for want, got := range all {
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestKeyStringsDistinct(t *testing.T) {
	seen := make(map[string]bool, len(all))
	for _, k := range all {
		if seen[k] {
			t.Errorf("%q bound twice", k)
		}
		seen[k] = true
	}
}
