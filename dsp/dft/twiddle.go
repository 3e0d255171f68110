package dft

import "math"

// fillTwiddle writes the N-th roots of unity e^{-i*2*pi*k/N} for k in [0,N)
// into dst, where N = len(dst). The table traverses the unit circle clockwise,
// matching the forward-transform sign convention.
func fillTwiddle(dst []complex128) {
	n := len(dst)
	if n == 0 {
		return
	}

	theta := -2 * math.Pi / float64(n)
	for k := range dst {
		sin, cos := math.Sincos(theta * float64(k))
		dst[k] = complex(cos, sin)
	}
}

// BinFrequencies returns the center frequency in Hz of each of the n bins of
// an n-point transform at the given sample rate. Bin k maps to
// k*sampleRate/n; bins above n/2 alias to negative frequencies but are
// reported in the usual [0, sampleRate) layout.
func BinFrequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	step := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * step
	}
	return out
}
