// Package webdemo glues the DFT engine to the browser visualization.
//
// The frontend hands a signal across the JS boundary; the engine returns the
// magnitude/phase spectrum plus plot-friendly views (dB magnitudes with a
// floor, per-bin center frequencies).
package webdemo

import (
	"fmt"

	"github.com/sab-ene1/DFT-Tool/dsp/core"
	"github.com/sab-ene1/DFT-Tool/dsp/dft"
)

// minDB is the plot floor: magnitudes below this are clamped so log plots
// stay bounded for silent bins.
const minDB = -130.0

// Engine runs the browser-side analysis pipeline in Go.
type Engine struct {
	sampleRate float64
	processor  *dft.Processor
}

// NewEngine creates a configured analysis engine.
func NewEngine(sampleRate float64) (*Engine, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}
	return &Engine{
		sampleRate: sampleRate,
		processor:  dft.NewProcessor(),
	}, nil
}

// SampleRate returns the configured sample rate.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Analyze computes the magnitude/phase spectrum of signal.
func (e *Engine) Analyze(signal []float64) *dft.Spectrum {
	return e.processor.ComputeDFT(signal)
}

// MagnitudesDB converts linear magnitudes to dB with a floor at minDB.
func (e *Engine) MagnitudesDB(magnitudes []float64) []float64 {
	out := make([]float64, len(magnitudes))
	for i, m := range magnitudes {
		db := core.LinearToDB(m)
		if db < minDB {
			db = minDB
		}
		out[i] = db
	}
	return out
}

// BinFrequencies returns the center frequency in Hz of each of n bins at the
// engine sample rate.
func (e *Engine) BinFrequencies(n int) []float64 {
	return dft.BinFrequencies(n, e.sampleRate)
}
