// Package pipeline wires the AX.25 framer, NRZI encoder, AFSK
// modulator, FM modulator, and polyphase interpolator into the single
// feed-forward run described in spec section 2, and serializes the
// result to bytes.
package pipeline

import (
	"fmt"

	"github.com/wb2osz/aprstx/internal/afsk"
	"github.com/wb2osz/aprstx/internal/ax25"
	"github.com/wb2osz/aprstx/internal/dsp"
	"github.com/wb2osz/aprstx/internal/fm"
	"github.com/wb2osz/aprstx/internal/linecode"
)

// Format selects the output encoding (spec section 6).
type Format int

const (
	FormatF32 Format = iota
	FormatS8
	FormatPCM
)

// ParseFormat maps a configuration token to a Format, per spec section
// 6's recognized values.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "f32", "":
		return FormatF32, nil
	case "s8":
		return FormatS8, nil
	case "pcm":
		return FormatPCM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// InterpolationFactor is the fixed upsampling factor from 48 kHz audio
// to 2.4 MHz complex baseband (spec section 2).
const InterpolationFactor = 50

// BufSize is the block size the FM modulator and interpolator are
// driven in (spec section 5).
const BufSize = 4096

// ringBufferCapacity must tolerate the worst-case transient occupancy
// of one full write block (spec section 5: "choose capacity >= 2 *
// BUFSIZE").
const ringBufferCapacity = 2 * BufSize

// prototypeTaps builds the Kaiser-windowed low-pass prototype for the
// 50x interpolator using spec section 4.6's default usage: the
// sampling rate is set to the interpolation factor itself and the
// cutoff sits below the first Nyquist image.
func prototypeTaps() []float32 {
	const (
		factor       = InterpolationFactor
		halfband     = 0.5
		fractionalBW = 0.4
		transition   = halfband - fractionalBW
		cutoff       = halfband - transition/2
	)

	return dsp.LowPass(factor, factor, cutoff, transition)
}

// Request is everything the pipeline needs to render one transmission.
type Request struct {
	Destination ax25.Callsign
	Source      ax25.Callsign
	Digipeaters []ax25.Callsign
	Payload     []byte
	FlagCount   int
}

// Bits builds the AX.25 frame and NRZI-encodes it, returning the
// line-coded bit sequence the AFSK modulator consumes.
func (r Request) Bits() ([]bool, error) {
	frame := ax25.Frame{
		Destination: r.Destination,
		Source:      r.Source,
		Digipeaters: r.Digipeaters,
		Payload:     r.Payload,
		FlagCount:   r.FlagCount,
	}

	bits, err := frame.Bits()
	if err != nil {
		return nil, err
	}

	return linecode.Encode(bits), nil
}

// Audio renders the request to 48 kHz mono AFSK audio samples.
func (r Request) Audio() ([]float32, error) {
	bits, err := r.Bits()
	if err != nil {
		return nil, err
	}

	return afsk.Modulate(bits), nil
}

// Generate renders the request end to end and serializes it in the
// requested format (spec section 4.7, 4.8).
func Generate(req Request, format Format) ([]byte, error) {
	audio, err := req.Audio()
	if err != nil {
		return nil, err
	}

	if format == FormatPCM {
		return SerializePCM(audio), nil
	}

	iq, err := Modulate(audio)
	if err != nil {
		return nil, err
	}

	if format == FormatS8 {
		return SerializeS8(iq), nil
	}

	return SerializeF32(iq), nil
}

// Modulate drives the FM modulator and polyphase interpolator over
// audio in BufSize-sized blocks through a shared ring buffer, exactly
// as spec section 5 describes: write a block, interpolate, remove the
// consumed prefix, repeat.
func Modulate(audio []float32) ([]complex64, error) {
	interp := dsp.NewInterpolator(InterpolationFactor, prototypeTaps())
	ring := dsp.NewRingBuffer(ringBufferCapacity)

	out := make([]complex64, 0, len(audio)*InterpolationFactor)

	var phase float64

	for offset := 0; offset < len(audio); {
		blockLen := BufSize
		if remaining := len(audio) - offset; remaining < blockLen {
			blockLen = remaining
		}

		if ring.WriteAvailable() < blockLen {
			return nil, fmt.Errorf("ring buffer exhausted: %d available, need %d", ring.WriteAvailable(), blockLen)
		}

		phase = fm.Modulate(audio[offset:offset+blockLen], ring, phase)

		var consumed int
		out, consumed = interp.Interpolate(ring, out)

		if consumed == 0 {
			offset += blockLen
			continue
		}

		ring.Remove(consumed)
		offset += blockLen
	}

	// Nothing is flushed once there's no more audio to add: each
	// Interpolate call leaves the last M-1 samples queued, and that
	// final remainder never satisfies Interpolate's R >= M contract, so
	// it is dropped, matching spec section 4.5's "If R < M, consume 0."
	return out, nil
}
