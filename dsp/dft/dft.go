package dft

import (
	"runtime"
	"sync"

	"github.com/sab-ene1/DFT-Tool/dsp/core"
	"github.com/sab-ene1/DFT-Tool/dsp/spectrum"
)

// Spectrum holds the polar representation of a transform result.
//
// Magnitudes and Phases always have equal length N, one entry per frequency
// bin. Magnitudes are non-negative; phases are principal values in (-pi, pi].
// A Spectrum is freshly allocated per call and owned by the caller.
type Spectrum struct {
	Magnitudes []float64
	Phases     []float64
}

// Len returns the number of frequency bins.
func (s *Spectrum) Len() int { return len(s.Magnitudes) }

// Processor computes direct DFTs, reusing internal twiddle storage across
// calls. The twiddle table is resized and overwritten per call, so its length
// always matches the current signal length.
//
// A Processor is not safe for concurrent use; create one per goroutine or use
// the package-level [ComputeDFT].
type Processor struct {
	workers int
	twiddle []complex128
}

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers bounds the number of goroutines used for the per-bin loop.
// Values below 1 are ignored. The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// NewProcessor creates a transform processor.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Workers returns the configured worker bound.
func (p *Processor) Workers() int { return p.workers }

// ComputeDFT evaluates the direct DFT of signal and returns per-bin
// magnitudes and phases.
//
// For each bin k in [0,N), the normalized coefficient is
//
//	X[k] = (1/N) * sum_{n=0}^{N-1} signal[n] * e^{-i*2*pi*k*n/N}
//
// with magnitude |X[k]| and phase atan2(Im X[k], Re X[k]). An empty signal
// yields an empty Spectrum. Non-finite samples are not rejected; NaN or Inf
// inputs propagate into the affected bins.
func (p *Processor) ComputeDFT(signal []float64) *Spectrum {
	n := len(signal)
	spec := &Spectrum{
		Magnitudes: make([]float64, n),
		Phases:     make([]float64, n),
	}
	if n == 0 {
		return spec
	}

	p.twiddle = core.EnsureLenComplex(p.twiddle, n)
	fillTwiddle(p.twiddle)

	re := make([]float64, n)
	im := make([]float64, n)
	p.forEachBin(n, func(lo, hi int) {
		p.accumulateBins(re, im, signal, lo, hi)
	})

	spectrum.MagnitudeFromParts(spec.Magnitudes, re, im)
	spectrum.PhaseFromParts(spec.Phases, re, im)
	return spec
}

// Coefficients evaluates the normalized complex DFT coefficients of signal
// into dst, reusing dst capacity when possible, and returns the result slice.
// Pass nil to allocate. An empty signal yields an empty slice.
func (p *Processor) Coefficients(dst []complex128, signal []float64) []complex128 {
	n := len(signal)
	dst = core.EnsureLenComplex(dst, n)
	if n == 0 {
		return dst
	}

	p.twiddle = core.EnsureLenComplex(p.twiddle, n)
	fillTwiddle(p.twiddle)

	p.forEachBin(n, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			dst[k] = p.binCoefficient(signal, k)
		}
	})
	return dst
}

// accumulateBins evaluates bins [lo,hi) into disjoint slots of re and im.
// Workers share only the read-only signal and twiddle table, so no locking
// is needed.
func (p *Processor) accumulateBins(re, im, signal []float64, lo, hi int) {
	for k := lo; k < hi; k++ {
		c := p.binCoefficient(signal, k)
		re[k] = real(c)
		im[k] = imag(c)
	}
}

func (p *Processor) binCoefficient(signal []float64, k int) complex128 {
	n := len(signal)
	var sumRe, sumIm float64

	// The twiddle index walks (k*n) mod N by stepping k per sample. Both
	// the index and its step stay below N, so a single conditional
	// subtraction replaces the modulo.
	idx := 0
	for _, x := range signal {
		w := p.twiddle[idx]
		sumRe += x * real(w)
		sumIm += x * imag(w)

		idx += k
		if idx >= n {
			idx -= n
		}
	}

	inv := 1 / float64(n)
	return complex(sumRe*inv, sumIm*inv)
}

// forEachBin splits [0,n) into contiguous ranges across the configured
// workers and waits for all of them before returning.
func (p *Processor) forEachBin(n int, fn func(lo, hi int)) {
	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// ComputeDFT evaluates the direct DFT of signal with a fresh processor.
//
// See [Processor.ComputeDFT] for the transform definition.
func ComputeDFT(signal []float64) *Spectrum {
	return NewProcessor().ComputeDFT(signal)
}

// Coefficients evaluates the normalized complex DFT coefficients of signal
// with a fresh processor.
func Coefficients(signal []float64) []complex128 {
	return NewProcessor().Coefficients(nil, signal)
}
