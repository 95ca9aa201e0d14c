package tui

// Key constants for the form.
const (
	keyEnter    = "enter"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyUp       = "up"
	keyDown     = "down"
	keyEsc      = "esc"
	keyCtrlC    = "ctrl+c"
	keyCopy     = "c"
	keyRestart  = "r"
	keyQuit     = "q"
)
