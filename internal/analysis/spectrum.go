package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum is the one-sided amplitude spectrum of a uniformly sampled
// signal.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// ComputeSpectrum transforms signal sampled every dt. The mean is removed
// first so bin 0 does not dominate.
func ComputeSpectrum(signal []float64, dt float64) Spectrum {
	n := len(signal)
	if n < 2 || dt <= 0 {
		return Spectrum{}
	}

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range signal {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	half := n / 2
	s := Spectrum{
		Freqs: make([]float64, half),
		Power: make([]float64, half),
	}
	for k := 0; k < half; k++ {
		s.Freqs[k] = float64(k) / (float64(n) * dt)
		s.Power[k] = cmplx.Abs(coeffs[k]) / float64(n)
	}
	return s
}

// Dominant returns the strongest non-DC bin.
func (s Spectrum) Dominant() (freq, power float64) {
	for k := 1; k < len(s.Power); k++ {
		if s.Power[k] > power {
			freq, power = s.Freqs[k], s.Power[k]
		}
	}
	return freq, power
}
