package dft

import (
	"fmt"
	"math"
)

// BinCoefficient evaluates the single normalized coefficient X[k] of signal
// using the Goertzel recurrence, without building the full twiddle table.
//
// The result agrees with bin k of [Processor.Coefficients] up to floating
// point rounding. For a handful of bins this is much cheaper than the full
// O(N^2) transform; past roughly N probed bins the full transform wins.
//
// k must lie in [0, len(signal)); an empty signal has no valid bins.
func BinCoefficient(signal []float64, k int) (complex128, error) {
	n := len(signal)
	if k < 0 || k >= n {
		return 0, fmt.Errorf("dft: bin %d out of range for signal length %d", k, n)
	}

	omega := 2 * math.Pi * float64(k) / float64(n)
	coeff := 2 * math.Cos(omega)

	var s0, s1 float64
	for _, x := range signal {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	// Finalize: X[k] = e^{i*omega}*s0 - s1. The e^{i*omega*N} wrap is the
	// identity because omega*N is an integer multiple of 2*pi.
	sin, cos := math.Sincos(omega)
	inv := 1 / float64(n)
	return complex((cos*s0-s1)*inv, sin*s0*inv), nil
}

// BinMagnitude evaluates |X[k]| for a single bin via [BinCoefficient].
func BinMagnitude(signal []float64, k int) (float64, error) {
	c, err := BinCoefficient(signal, k)
	if err != nil {
		return 0, err
	}

	re := real(c)
	im := imag(c)
	return math.Sqrt(re*re + im*im), nil
}
