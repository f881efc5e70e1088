package dsp

// Reader is the read side of a ring buffer: enough to run the
// interpolator over queued samples without removing them itself. The
// caller removes the consumed prefix after Interpolate returns (spec
// section 4.5, section 9).
type Reader interface {
	ReadAvailable() int
	At(i int) complex64
}

// Interpolator is a polyphase FIR interpolator: an L-factor prototype
// low-pass filter decomposed into L sub-filters so the filter runs at
// the input rate instead of zero-stuffing to L times the input rate
// first (spec section 4.5).
type Interpolator struct {
	factor int
	taps   int      // taps per sub-filter (M)
	xtaps  []float32 // flat row-major factor x taps matrix
}

// NewInterpolator builds the polyphase decomposition of prototype for
// the given interpolation factor: the prototype is zero-padded on the
// right to a multiple of factor taps, then tap i lands in sub-filter
// i%factor at position i/factor (spec section 4.5's construction step).
func NewInterpolator(factor int, prototype []float32) *Interpolator {
	pad := (factor - len(prototype)%factor) % factor

	padded := make([]float32, len(prototype)+pad)
	copy(padded, prototype)

	m := len(padded) / factor
	xtaps := make([]float32, factor*m)

	for i, v := range padded {
		sub := i % factor
		pos := i / factor
		xtaps[sub*m+pos] = v
	}

	return &Interpolator{factor: factor, taps: m, xtaps: xtaps}
}

// Factor returns the interpolation factor L.
func (ip *Interpolator) Factor() int { return ip.factor }

// TapsPerSubfilter returns M, the tap count of each polyphase
// sub-filter.
func (ip *Interpolator) TapsPerSubfilter() int { return ip.taps }

// Interpolate runs the polyphase filter over as much of r as is
// available, appending output samples to out and returning the
// extended slice along with the count of input positions consumed. The
// caller must call Remove(consumed) on the underlying ring buffer.
//
// For each input position i in [0, R-M], and for each sub-filter j in
// [0, L), one output sample is produced, in row-major (i outermost, j
// inner) order (spec section 4.5's runtime contract).
func (ip *Interpolator) Interpolate(r Reader, out []complex64) ([]complex64, int) {
	avail := r.ReadAvailable()
	m := ip.taps

	if avail < m {
		return out, 0
	}

	positions := avail - m + 1

	for i := 0; i < positions; i++ {
		for j := 0; j < ip.factor; j++ {
			var sum complex64

			base := j * m
			for k := 0; k < m; k++ {
				sum += r.At(i+k) * complex(ip.xtaps[base+m-1-k], 0)
			}

			out = append(out, sum)
		}
	}

	return out, positions
}

// NaiveInterpolate zero-stuffs input by factor and convolves with taps
// directly, with no polyphase decomposition. Kept only so tests can
// check the polyphase output against it for numerical parity (spec
// section 4.5's "Rationale"; original_source/dsp.cpp's
// naive_interpolate).
func NaiveInterpolate(input []complex64, factor int, taps []float32) []complex64 {
	pad := (factor - len(taps)%factor) % factor

	paddedTaps := make([]float32, len(taps)+pad)
	copy(paddedTaps, taps)

	upsampled := make([]complex64, len(input)*factor)
	for i, s := range input {
		upsampled[i*factor+factor-1] = s
	}

	tapsCount := len(paddedTaps)
	processed := len(upsampled) - tapsCount + 1

	if processed <= 0 {
		return nil
	}

	out := make([]complex64, processed)

	for i := 0; i < processed; i++ {
		var sum complex64

		for j := 0; j < tapsCount; j++ {
			sum += upsampled[i+j] * complex(paddedTaps[tapsCount-j-1], 0)
		}

		out[i] = sum
	}

	return out
}
