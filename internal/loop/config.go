package loop

import "time"

// Driver tunables.
const (
	// tickInterval is the frame period: each tick waits out the remainder
	// of this interval after input, update, and render.
	tickInterval = 50 * time.Millisecond
)
