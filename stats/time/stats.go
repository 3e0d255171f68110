// Package time computes time-domain statistics of sampled signals.
package time

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	DC_dB         float64
	RMS           float64
	RMS_dB        float64
	Max           float64
	Min           float64
	Peak          float64 // max(|max|, |min|)
	Peak_dB       float64
	Energy        float64 // sum of squares
	Power         float64 // energy / length
	ZeroCrossings int
	Variance      float64
	Skewness      float64
	Kurtosis      float64 // excess kurtosis
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// emptyStats returns a zero-valued Stats with -Inf for all dB fields.
func emptyStats() Stats {
	return Stats{
		DC_dB:   math.Inf(-1),
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// Calculate computes all time-domain statistics of signal.
//
// Higher-order moments use population normalization; Kurtosis is excess
// kurtosis (0 for a Gaussian).
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	var (
		sumSq  float64
		maxVal = signal[0]
		minVal = signal[0]
	)

	for _, x := range signal {
		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}
		if x < minVal {
			minVal = x
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	mean, variance, skewness, kurtosis := Moments(signal)

	return Stats{
		Length:        n,
		DC:            mean,
		DC_dB:         ampTodB(mean),
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Max:           maxVal,
		Min:           minVal,
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		Energy:        sumSq,
		Power:         sumSq / nf,
		ZeroCrossings: ZeroCrossings(signal),
		Variance:      variance,
		Skewness:      skewness,
		Kurtosis:      kurtosis,
	}
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return stat.Mean(signal, nil)
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	peak := math.Abs(signal[0])
	for _, x := range signal[1:] {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	if len(signal) < 2 {
		return 0
	}

	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// Moments returns the mean, population variance, skewness, and excess
// kurtosis of the signal.
func Moments(signal []float64) (mean, variance, skewness, kurtosis float64) {
	if len(signal) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(signal, nil)
	variance = stat.Moment(2, signal, nil)

	if variance > 0 {
		m3 := stat.Moment(3, signal, nil)
		m4 := stat.Moment(4, signal, nil)
		skewness = m3 / (variance * math.Sqrt(variance))
		kurtosis = m4/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}
