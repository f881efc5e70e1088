// Package afsk renders an NRZI line-coded bit sequence as a 48 kHz mono
// AFSK audio waveform, per spec section 4.3.
package afsk

import "math"

const (
	// SampleRate is the audio sample rate this modulator renders at.
	SampleRate = 48000

	// Baud is the symbol rate for 1200-baud APRS.
	Baud = 1200

	// MarkHz and SpaceHz are the two AFSK tone frequencies. Mark
	// represents a logical 1 (after NRZI), space a logical 0.
	MarkHz  = 1200
	SpaceHz = 2200

	// SamplesPerSymbol is SampleRate / Baud.
	SamplesPerSymbol = SampleRate / Baud

	// Gain scales the generated sine wave into [-gain, gain].
	Gain = 0.5

	// SilenceSamples is 0.5 seconds of lead-in/lead-out silence.
	SilenceSamples = SampleRate / 2
)

// Modulate renders line-coded NRZI bits to float32 audio samples:
// 0.5 s of silence, then SamplesPerSymbol samples per bit at MarkHz or
// SpaceHz with phase held continuous across symbol boundaries, then
// another 0.5 s of silence (spec section 4.3).
func Modulate(nrziBits []bool) []float32 {
	out := make([]float32, 0, SilenceSamples*2+len(nrziBits)*SamplesPerSymbol)

	for i := 0; i < SilenceSamples; i++ {
		out = append(out, 0)
	}

	var phase float64

	for _, bit := range nrziBits {
		freq := SpaceHz
		if bit {
			freq = MarkHz
		}

		dphi := 2 * math.Pi * float64(freq) / SampleRate

		for i := 0; i < SamplesPerSymbol; i++ {
			out = append(out, float32(math.Sin(phase)*Gain))

			phase += dphi
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
	}

	for i := 0; i < SilenceSamples; i++ {
		out = append(out, 0)
	}

	return out
}
