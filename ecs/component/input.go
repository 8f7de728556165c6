package component

// Input stores per-frame pointer and key state in screen coordinates.
type Input struct {
	CursorX   float64
	CursorY   float64
	HasCursor bool
	// ButtonDown is true while the paint button is held.
	ButtonDown       bool
	CapturePressed   bool
	ClipboardPressed bool
	ReloadPressed    bool
	PausePressed     bool
}

var InputComponent = NewComponent[Input]()
