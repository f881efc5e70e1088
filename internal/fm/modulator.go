// Package fm converts a 48 kHz audio waveform into a complex baseband
// signal via phase integration, per spec section 4.4.
package fm

import "math"

const (
	// AudioSampleRate is the rate the modulator expects its input at.
	AudioSampleRate = 48000

	// MaxDeviationHz is the peak frequency deviation of the FM signal.
	MaxDeviationHz = 5000
)

// Sensitivity is 2*pi*MaxDeviationHz/AudioSampleRate, the phase increment
// per unit amplitude of input (spec section 4.4).
const Sensitivity = 2 * math.Pi * MaxDeviationHz / AudioSampleRate

// Sink receives complex baseband samples. dsp.RingBuffer implements this.
type Sink interface {
	Push(i, q float32) bool
}

// Modulate consumes input audio samples, writes one complex sample per
// input sample to sink, and returns the updated running phase. The
// caller must ensure sink has room for len(input) more samples (spec
// section 4.4's "ring buffer must have at least input_size slots
// available").
func Modulate(input []float32, sink Sink, phase float64) float64 {
	for _, x := range input {
		phase += float64(x) * Sensitivity
		phase = wrap(phase)

		sink.Push(float32(math.Cos(phase)), float32(math.Sin(phase)))
	}

	return phase
}

// wrap folds phase into (-pi, pi], matching the original's while-loop
// wrap in original_source/dsp.cpp's fmmod.
func wrap(phase float64) float64 {
	for phase > math.Pi {
		phase -= 2 * math.Pi
	}

	for phase <= -math.Pi {
		phase += 2 * math.Pi
	}

	return phase
}
