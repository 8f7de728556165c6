package component

// Status is what the HUD shows.
type Status struct {
	Painted     int
	Strokes     int
	LastCapture string
	Message     string
	// Paused suspends painting while the pause menu is open.
	Paused bool
}

var StatusComponent = NewComponent[Status]()
