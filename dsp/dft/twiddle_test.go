package dft

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestFillTwiddle(t *testing.T) {
	n := 8
	tw := make([]complex128, n)
	fillTwiddle(tw)

	for k, w := range tw {
		if math.Abs(cmplx.Abs(w)-1) > 1e-15 {
			t.Fatalf("|twiddle[%d]| = %v, want 1", k, cmplx.Abs(w))
		}

		want := cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n))
		if cmplx.Abs(w-want) > 1e-14 {
			t.Fatalf("twiddle[%d] = %v, want %v", k, w, want)
		}
	}

	// Clockwise: the first step has a negative imaginary part.
	if imag(tw[1]) >= 0 {
		t.Fatalf("twiddle[1] = %v, expected clockwise rotation", tw[1])
	}
}

func TestFillTwiddleEmpty(t *testing.T) {
	fillTwiddle(nil) // must not panic or divide by zero
}

func TestBinFrequencies(t *testing.T) {
	freqs := BinFrequencies(8, 48000)
	if len(freqs) != 8 {
		t.Fatalf("len = %d, want 8", len(freqs))
	}
	if freqs[0] != 0 {
		t.Fatalf("freqs[0] = %v, want 0", freqs[0])
	}
	if freqs[1] != 6000 {
		t.Fatalf("freqs[1] = %v, want 6000", freqs[1])
	}
	if freqs[7] != 42000 {
		t.Fatalf("freqs[7] = %v, want 42000", freqs[7])
	}

	if BinFrequencies(0, 48000) != nil {
		t.Fatal("n=0 should yield nil")
	}
}
