package pipeline

import (
	"encoding/binary"
	"math"
)

// SerializePCM writes 48 kHz mono float32 audio samples little-endian,
// with no header (spec section 6: "pcm" format).
func SerializePCM(samples []float32) []byte {
	out := make([]byte, 4*len(samples))

	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}

	return out
}

// SerializeF32 writes interleaved I,Q float32 pairs little-endian, with
// no header (spec section 6: "f32" format).
func SerializeF32(samples []complex64) []byte {
	out := make([]byte, 8*len(samples))

	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*8:], math.Float32bits(real(s)))
		binary.LittleEndian.PutUint32(out[i*8+4:], math.Float32bits(imag(s)))
	}

	return out
}

// SerializeS8 writes interleaved I,Q signed int8 pairs at 2.4 MHz: each
// float sample x in [-1,1] is encoded as round-toward-zero(x*127) (spec
// section 6: "s8" format).
func SerializeS8(samples []complex64) []byte {
	out := make([]byte, 2*len(samples))

	for i, s := range samples {
		out[i*2] = toInt8(real(s))
		out[i*2+1] = toInt8(imag(s))
	}

	return out
}

func toInt8(x float32) byte {
	return byte(int8(math.Trunc(float64(x) * 127)))
}
