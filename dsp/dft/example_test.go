package dft_test

import (
	"fmt"
	"math/cmplx"

	"github.com/sab-ene1/DFT-Tool/dsp/dft"
)

func ExampleComputeDFT() {
	// A unit impulse spreads evenly across all bins: every magnitude is
	// 1/N and every phase is zero.
	signal := []float64{1, 0, 0, 0}

	spec := dft.ComputeDFT(signal)
	fmt.Printf("magnitudes: %.2f %.2f %.2f %.2f\n",
		spec.Magnitudes[0], spec.Magnitudes[1], spec.Magnitudes[2], spec.Magnitudes[3])
	fmt.Printf("phases: %.2f %.2f %.2f %.2f\n",
		spec.Phases[0], spec.Phases[1], spec.Phases[2], spec.Phases[3])

	// Output:
	// magnitudes: 0.25 0.25 0.25 0.25
	// phases: 0.00 0.00 0.00 0.00
}

func ExampleProcessor_Coefficients() {
	p := dft.NewProcessor()

	// DC-only signal: all energy in bin 0.
	coeffs := p.Coefficients(nil, []float64{1, 1, 1, 1})
	fmt.Printf("%.2f %.2f %.2f %.2f\n",
		cmplx.Abs(coeffs[0]), cmplx.Abs(coeffs[1]), cmplx.Abs(coeffs[2]), cmplx.Abs(coeffs[3]))

	// Output:
	// 1.00 0.00 0.00 0.00
}

func ExampleBinMagnitude() {
	// Probe one bin without paying for the full transform.
	signal := []float64{1, 0, -1, 0} // cosine on bin 1

	mag, _ := dft.BinMagnitude(signal, 1)
	fmt.Printf("%.2f\n", mag)

	// Output:
	// 0.50
}
