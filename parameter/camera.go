package parameter

import "time"

// Terminal Projection
const (
	// CellWorldWidth is world units covered by one terminal column
	CellWorldWidth = 15.0

	// CellWorldHeight is world units covered by one terminal row, cells are about twice as tall as wide
	CellWorldHeight = 30.0

	// HUDRows is the number of rows reserved at the bottom for the HUD
	HUDRows = 2
)

// Terminal Input
const (
	// KeyHoldWindow keeps a key "held" after its last press/repeat event
	// Terminals report no key release, autorepeat refreshes the window
	KeyHoldWindow = 120 * time.Millisecond
)

// Terminal Visuals
const (
	// ShotConeFlashFrames is how many draws a fired cone stays highlighted
	ShotConeFlashFrames = 4
)
