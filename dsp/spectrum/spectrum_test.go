package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil {
		t.Fatal("Magnitude(nil) should be nil")
	}

	if Power([]complex128{}) != nil {
		t.Fatal("Power of empty slice should be nil")
	}

	if got := Phase([]complex128{}); len(got) != 0 {
		t.Fatalf("Phase of empty slice should be empty: %v", got)
	}
}

func TestFromPartsAgree(t *testing.T) {
	bins := []complex128{1 + 2i, -3 + 0.5i, 0 - 4i, 2 + 0i}

	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, len(bins))
	MagnitudeFromParts(mag, re, im)

	pow := make([]float64, len(bins))
	PowerFromParts(pow, re, im)

	phase := make([]float64, len(bins))
	PhaseFromParts(phase, re, im)

	wantMag := Magnitude(bins)
	wantPow := Power(bins)
	wantPhase := Phase(bins)

	for i := range bins {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Fatalf("magnitude[%d]=%f want=%f", i, mag[i], wantMag[i])
		}
		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Fatalf("power[%d]=%f want=%f", i, pow[i], wantPow[i])
		}
		if math.Abs(phase[i]-wantPhase[i]) > 1e-12 {
			t.Fatalf("phase[%d]=%f want=%f", i, phase[i], wantPhase[i])
		}
	}
}

func TestComplexBinsAdapter(t *testing.T) {
	bins := SliceBins([]complex128{1 + 0i, 0 + 2i})

	mag := MagnitudeBins(bins)
	if len(mag) != 2 || math.Abs(mag[0]-1) > 1e-12 || math.Abs(mag[1]-2) > 1e-12 {
		t.Fatalf("unexpected MagnitudeBins output: %v", mag)
	}

	pow := PowerBins(bins)
	if len(pow) != 2 || math.Abs(pow[1]-4) > 1e-12 {
		t.Fatalf("unexpected PowerBins output: %v", pow)
	}

	if MagnitudeBins(nil) != nil || PowerBins(nil) != nil || PhaseBins(nil) != nil {
		t.Fatal("nil ComplexBins should yield nil outputs")
	}
}

func TestPhasePrincipalValue(t *testing.T) {
	phase := Phase([]complex128{-1 + 0i, -1 - 1e-300i})

	if math.Abs(phase[0]-math.Pi) > 1e-12 {
		t.Fatalf("Phase of -1 = %f, want pi", phase[0])
	}

	if phase[1] > 0 {
		t.Fatalf("Phase just below negative real axis should be negative: %f", phase[1])
	}
}
