// Package spectrum extracts polar quantities from complex transform bins.
//
// The package does not compute transforms itself. It operates on complex
// coefficient bins produced by a transform backend (such as
// github.com/sab-ene1/DFT-Tool/dsp/dft) and provides magnitude, power,
// and phase extraction in both allocating and zero-allocation forms.
package spectrum
