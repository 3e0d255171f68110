// Package dft implements the direct discrete Fourier transform of
// real-valued signals.
//
// The transform is evaluated by definition in O(N^2) time. A table of the N
// complex roots of unity is built once per call and reused across all bins by
// exploiting the periodicity of e^{-i2*pi*k*n/N} in (k*n) mod N, so no
// trigonometric function is evaluated inside the O(N^2) loop. Coefficients
// are normalized by 1/N.
//
// # Usage
//
// For one-shot analysis, use the package-level function:
//
//	spec := dft.ComputeDFT(signal)  // magnitudes and phases, length N
//
// For repeated transforms, create a reusable processor; its internal twiddle
// table is resized and overwritten per call rather than reallocated:
//
//	p := dft.NewProcessor(dft.WithWorkers(4))
//	spec := p.ComputeDFT(signal)
//	coeffs := p.Coefficients(nil, signal)
//
// Bins are independent of each other, so the per-bin loop fans out over a
// bounded set of goroutines and joins before returning. A Processor is safe
// for repeated sequential use but not for concurrent calls.
//
// The package deliberately does not implement a fast Fourier transform;
// callers needing O(N log N) scaling should use an FFT library instead.
package dft
