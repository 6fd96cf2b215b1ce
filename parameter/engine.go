package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the target render/tick interval (~60 FPS)
	// Actual tick delta is measured, this only paces the loop
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single measured delta after stalls (suspend, debugger)
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueInitialCap is the initial capacity of the per-tick event buffer
	EventQueueInitialCap = 64
)
