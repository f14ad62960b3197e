// Package pulse provides closed-form initial conditions for the propagation
// engine. The engine accepts any Envelope, not only the reference form.
package pulse

import (
	"math"
	"math/cmplx"

	"github.com/filamentlab/go-filament/medium"
)

// Envelope maps a (radial, temporal) coordinate to a complex amplitude.
type Envelope func(r, t float64) complex128

// ChirpedGaussian returns the post-lens chirped Gaussian input pulse:
// a Gaussian in r and t with a focusing quadratic radial phase and a
// quadratic temporal chirp. An infinite focal length drops the lens phase.
func ChirpedGaussian(b medium.Beam, c *medium.Coefficients) Envelope {
	amp := complex(c.Amplitude, 0)
	waist := b.Waist
	peak := b.PeakTime
	chirp := b.Chirp
	lens := 0.0
	if !math.IsInf(b.FocalLength, 0) {
		lens = 0.5 * c.Wavenumber / b.FocalLength
	}
	return func(r, t float64) complex128 {
		rn := r / waist
		tn := t / peak
		arg := complex(-rn*rn-tn*tn, -lens*r*r-chirp*tn*tn)
		return amp * cmplx.Exp(arg)
	}
}

// Zero returns the identically zero envelope.
func Zero() Envelope {
	return func(r, t float64) complex128 { return 0 }
}
