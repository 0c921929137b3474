package parameter

// Ball
const (
	// BallSize is the edge length of the square ball
	BallSize = 24

	// InitialBallSpeed is the serve speed and the base for every speed-relative constant
	InitialBallSpeed = 450.0

	// SpeedRate scales the per-paddle-hit speed increment, drawn from [base*rate/3, base*rate]
	SpeedRate = 0.15

	// MaxBounceAngle is the deflection at the paddle tip in degrees
	MaxBounceAngle = 60.0
)

// Paddle
const (
	PaddleWidth  = 20
	PaddleHeight = 120

	// PaddleMargin is the gap between a paddle and its side edge
	PaddleMargin = 50

	// HumanSpeedFactor scales tilt input relative to InitialBallSpeed
	HumanSpeedFactor = 1.35

	// TiltExponent shapes the tilt response curve
	TiltExponent = 1.5

	// Gravity normalizes accelerometer readings and caps autonomous tracking delta
	Gravity = 9.81
)

// Autonomous Paddle
const (
	// NPCBaseSpeed is the tracking speed factor when the ball approaches
	NPCBaseSpeed = 0.9

	// NPCAimSpread bounds the random aim offset as a fraction of paddle height
	NPCAimSpread = 0.45
)

// Confetti
const (
	ConfettiCount = 40
	ConfettiSize  = 6

	// ConfettiSpeedMin and ConfettiSpeedMax scale InitialBallSpeed
	ConfettiSpeedMin = 0.5
	ConfettiSpeedMax = 1.5

	// ConfettiSpread is the half-angle of the burst cone in degrees
	ConfettiSpread = 60.0
)
