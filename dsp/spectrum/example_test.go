package spectrum_test

import (
	"fmt"

	"github.com/sab-ene1/DFT-Tool/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExamplePhase() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	phase := spectrum.Phase(bins)
	fmt.Printf("%.4f %.4f %.4f\n", phase[0], phase[1], phase[2])
	// Output:
	// 0.0000 1.5708 3.1416
}

func ExamplePowerBins() {
	bins := spectrum.SliceBins([]complex128{3 + 4i, 0 + 2i})
	pow := spectrum.PowerBins(bins)
	fmt.Printf("%.0f %.0f\n", pow[0], pow[1])
	// Output:
	// 25 4
}
