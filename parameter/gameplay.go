package parameter

import "time"

// Match Flow
const (
	// WinScore ends the match when a paddle reaches it
	WinScore = 10

	// ResetDelay is the pause between a goal and the next serve
	ResetDelay = time.Second
)

// Sensor Input
const (
	// SignalTimeout marks a paddle disconnected when no motion update arrived within it
	SignalTimeout = 2 * time.Second

	// PlayerLeftPort and PlayerRightPort are the default UDP ports per player slot
	PlayerLeftPort  = 5700
	PlayerRightPort = 5701

	// ButtonPressed is the button capability value for pressed
	ButtonPressed = 1.0

	// CapabilityMotion and CapabilityButton are the consumed capability names
	CapabilityMotion = "gravity"
	CapabilityButton = "button_1"

	// MotionAxis is the vertical tilt component of the motion capability
	MotionAxis = "z"

	// SensorReadBuffer is the max UDP datagram size accepted
	SensorReadBuffer = 4096

	// MockSendInterval is the default mock sender interval
	MockSendInterval = 50 * time.Millisecond
)
