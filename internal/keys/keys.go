// Package keys holds the key strings the app matches against.
//
// Each value is produced by tea.KeyPressMsg.String() for the corresponding
// key, so a comparison with msg.String() cannot drift from what Bubble Tea
// reports at runtime.
package keys

import tea "charm.land/bubbletea/v2"

// Scrolling
var (
	Up       = tea.KeyPressMsg{Code: tea.KeyUp}.String()                       // "up"
	Down     = tea.KeyPressMsg{Code: tea.KeyDown}.String()                     // "down"
	PgUp     = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()                     // "pgup"
	PgDown   = tea.KeyPressMsg{Code: tea.KeyPgDown}.String()                   // "pgdown"
	CtrlUp   = (tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}).String()   // "ctrl+up"
	CtrlDown = (tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl}).String() // "ctrl+down"
)

// Input
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	AltEnter   = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}).String()   // "alt+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	Backspace  = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                  // "backspace"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
)

// Commands
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlD = (tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}).String() // "ctrl+d"
	CtrlL = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String() // "ctrl+l"
	CtrlO = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String() // "ctrl+o"
	CtrlS = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String() // "ctrl+s"
	CtrlU = (tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}).String() // "ctrl+u"
	CtrlY = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String() // "ctrl+y"
)
