package dft

import (
	"testing"

	"github.com/sab-ene1/DFT-Tool/internal/testutil"
)

func BenchmarkComputeDFT(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			sig := testutil.DeterministicNoise(1, 1.0, testCase.size)
			p := NewProcessor()

			b.SetBytes(int64(testCase.size * 8)) // float64 = 8 bytes
			b.ResetTimer()

			for range b.N {
				_ = p.ComputeDFT(sig)
			}
		})
	}
}

func BenchmarkComputeDFTSingleWorker(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"1K", 1024},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			sig := testutil.DeterministicNoise(1, 1.0, testCase.size)
			p := NewProcessor(WithWorkers(1))

			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				_ = p.ComputeDFT(sig)
			}
		})
	}
}

func BenchmarkBinCoefficient(b *testing.B) {
	sig := testutil.DeterministicNoise(1, 1.0, 4096)

	b.ResetTimer()
	for range b.N {
		_, _ = BinCoefficient(sig, 17)
	}
}
