package sweep

// Channel constants
const (
	stereoChannels = 2 // the generator always produces stereo output
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// Fade envelope constants
const (
	// defaultFadeTime is the linear ramp-in/ramp-out length in seconds.
	defaultFadeTime = 0.05
)

// Default configuration values: the classic full-range test tone,
// ten seconds across the audible band at CD rate.
const (
	defaultDuration  = 10.0
	defaultStartFreq = 20.0
	defaultEndFreq   = 20000.0
	defaultVolume    = 0.8
)
