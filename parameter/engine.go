package parameter

import "time"

// Simulation Loop
const (
	// TickInterval is the simulation tick interval (~60 Hz)
	TickInterval = 16667 * time.Microsecond

	// MaxTickDelta caps dt after stalls so a single tick cannot teleport the ball across the field
	MaxTickDelta = 100 * time.Millisecond

	// CollisionAccuracy is the number of swept corner interpolation steps per pair
	CollisionAccuracy = 20
)

// Play Field (field units, y axis up)
const (
	FieldWidth  = 1280
	FieldHeight = 720
)
