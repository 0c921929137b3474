package parameter

import "time"

// Audio
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// BounceVolume is the bounce gain before master volume
	BounceVolume = 0.3

	// BouncePitchMin and BouncePitchMax bound the random bounce pitch
	BouncePitchMin = 0.8
	BouncePitchMax = 1.2

	BounceDuration = 90 * time.Millisecond
	ScoreDuration  = 450 * time.Millisecond
)
