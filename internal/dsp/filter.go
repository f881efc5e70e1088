package dsp

import "math"

// kaiserBeta is the fixed Kaiser shape parameter the designer uses
// (spec section 4.6 step 1).
const kaiserBeta = 7.0

// izeroEpsilon bounds the Bessel-series summation in izero: the loop
// stops once the latest term drops below this fraction of the running
// sum (spec section 4.6 step 3).
const izeroEpsilon = 1e-21

// izero evaluates the zeroth-order modified Bessel function of the
// first kind by direct series summation. Ported from
// original_source/dsp.cpp's Izero.
func izero(x float64) float64 {
	sum := 1.0
	term := 1.0
	halfX := x / 2

	for n := 1; ; n++ {
		t := halfX / float64(n)
		t *= t
		term *= t
		sum += term

		if term < izeroEpsilon*sum {
			break
		}
	}

	return sum
}

// kaiserWindow computes an n-point Kaiser window with shape beta (spec
// section 4.6 step 3).
func kaiserWindow(n int, beta float64) []float64 {
	w := make([]float64, n)
	invI0Beta := 1.0 / izero(beta)

	w[0] = invI0Beta
	w[n-1] = invI0Beta

	for i := 1; i < n-1; i++ {
		t := 2*float64(i)/float64(n-1) - 1
		w[i] = izero(beta*math.Sqrt(1-t*t)) * invI0Beta
	}

	return w
}

// numTaps computes the odd tap count for a Kaiser-windowed low-pass
// filter with the given transition width at the given sampling
// frequency (spec section 4.6 step 2).
func numTaps(samplingFreq, transitionWidth, beta float64) int {
	a := beta/0.1102 + 8.7
	n := int(math.Ceil(a * samplingFreq / (22 * transitionWidth)))

	if n%2 == 0 {
		n++
	}

	return n
}

// LowPass designs a Kaiser-windowed FIR low-pass filter and returns its
// taps, DC-normalized to gain (spec section 4.6). All computation here
// is double precision; the result is cast to float32 on return, per
// spec section 5's numerical-precision note.
func LowPass(gain, samplingFreq, cutoffFreq, transitionWidth float64) []float32 {
	n := numTaps(samplingFreq, transitionWidth, kaiserBeta)
	m := (n - 1) / 2

	window := kaiserWindow(n, kaiserBeta)
	h := make([]float64, n)
	omega0 := 2 * math.Pi * cutoffFreq / samplingFreq

	for k := -m; k <= m; k++ {
		idx := k + m

		if k == 0 {
			h[idx] = omega0 / math.Pi * window[idx]
		} else {
			h[idx] = math.Sin(float64(k)*omega0) / (float64(k) * math.Pi) * window[idx]
		}
	}

	fmax := h[m]
	for k := 1; k <= m; k++ {
		fmax += 2 * h[k+m]
	}

	scale := gain / fmax

	taps := make([]float32, n)
	for i, v := range h {
		taps[i] = float32(v * scale)
	}

	return taps
}
