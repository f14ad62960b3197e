// Package medium holds the physical constants of the propagation medium and
// the laser beam, and derives the run coefficients the engine consumes.
//
// Envelope intensity uses "god-like" units by default (IntensityFactor = 1),
// where the squared envelope modulus is the intensity. Setting
// IntensityFactor to 0.5*c*eps0*n0 recovers SI intensities.
package medium

import (
	"fmt"
	"math"
)

const (
	LightSpeed   = 299792458
	Permittivity = 8.8541878128e-12
)

// Medium contains the linear and nonlinear constants of the material.
type Medium struct {
	LinearIndex     float64 `json:"linearIndex"`     // n_0
	NonlinearIndex  float64 `json:"nonlinearIndex"`  // n_2 [m^2/W]
	GVDCoef         float64 `json:"gvdCoef"`         // k'' [s^2/m]
	PhotonCount     int     `json:"photonCount"`     // K, photons absorbed per MPA event
	BetaCoef        float64 `json:"betaCoef"`        // beta_K [m^(2K-3)/W^(K-1)]
	IntensityFactor float64 `json:"intensityFactor"` // unit conversion, 1 for envelope units
}

// Beam contains the input pulse parameters.
type Beam struct {
	Wavelength  float64 `json:"wavelength"`  // vacuum wavelength [m]
	Waist       float64 `json:"waist"`       // 1/e^2 waist radius [m]
	PeakTime    float64 `json:"peakTime"`    // pulse duration [s]
	Energy      float64 `json:"energy"`      // pulse energy [J]
	FocalLength float64 `json:"focalLength"` // initial lens focal length [m], +Inf for collimated
	Chirp       float64 `json:"chirp"`       // initial temporal chirp
}

// Water returns the reference water constants at 800 nm.
func Water() Medium {
	return Medium{
		LinearIndex:     1.334,
		NonlinearIndex:  1.6e-20,
		GVDCoef:         241e-28,
		PhotonCount:     5,
		BetaCoef:        8e-61,
		IntensityFactor: 1,
	}
}

// ReferenceBeam returns the reference 800 nm chirped input pulse.
func ReferenceBeam() Beam {
	return Beam{
		Wavelength:  800e-9,
		Waist:       100e-6,
		PeakTime:    130e-15,
		Energy:      2.2e-6,
		FocalLength: 20,
		Chirp:       -1,
	}
}

// Coefficients are the derived constants consumed by the propagation engine.
// Built once per run and never mutated afterwards.
type Coefficients struct {
	Wavenumber0 float64 // k_0, vacuum
	Wavenumber  float64 // k, in the medium

	Power         float64 // peak power [W]
	CriticalPower float64 // self-focusing critical power [W]
	Intensity     float64 // peak intensity
	Amplitude     float64 // peak envelope amplitude

	KerrCoef    complex128 // i*k_0*n_2*intensity factor
	MPACoef     complex128 // -0.5*beta_K*intensity factor^(K-1)
	MPAExponent float64    // 2K-2

	GVDCoef     float64
	LinearIndex float64
	PhotonCount int
}

// Derive validates the records and computes the run coefficients.
func Derive(m Medium, b Beam) (*Coefficients, error) {
	if m.LinearIndex <= 0 {
		return nil, fmt.Errorf("medium: linear refractive index must be positive, got %g", m.LinearIndex)
	}
	if m.PhotonCount < 2 {
		return nil, fmt.Errorf("medium: photon count must be >= 2, got %d", m.PhotonCount)
	}
	if m.IntensityFactor <= 0 {
		return nil, fmt.Errorf("medium: intensity factor must be positive, got %g", m.IntensityFactor)
	}
	if b.Wavelength <= 0 {
		return nil, fmt.Errorf("medium: wavelength must be positive, got %g", b.Wavelength)
	}
	if b.Waist <= 0 {
		return nil, fmt.Errorf("medium: waist must be positive, got %g", b.Waist)
	}
	if b.PeakTime <= 0 {
		return nil, fmt.Errorf("medium: peak time must be positive, got %g", b.PeakTime)
	}
	if b.Energy <= 0 {
		return nil, fmt.Errorf("medium: pulse energy must be positive, got %g", b.Energy)
	}
	if b.FocalLength == 0 {
		return nil, fmt.Errorf("medium: focal length must be nonzero (use +Inf for a collimated beam)")
	}

	c := &Coefficients{
		GVDCoef:     m.GVDCoef,
		LinearIndex: m.LinearIndex,
		PhotonCount: m.PhotonCount,
	}
	c.Wavenumber0 = 2 * math.Pi / b.Wavelength
	c.Wavenumber = 2 * math.Pi * m.LinearIndex / b.Wavelength
	c.Power = b.Energy / (b.PeakTime * math.Sqrt(0.5*math.Pi))
	c.CriticalPower = 3.77 * b.Wavelength * b.Wavelength /
		(8 * math.Pi * m.LinearIndex * m.NonlinearIndex)
	c.Intensity = 2 * c.Power / (math.Pi * b.Waist * b.Waist)
	c.Amplitude = math.Sqrt(c.Intensity / m.IntensityFactor)

	c.MPAExponent = float64(2*m.PhotonCount - 2)
	c.KerrCoef = complex(0, c.Wavenumber0*m.NonlinearIndex*m.IntensityFactor)
	c.MPACoef = complex(-0.5*m.BetaCoef*math.Pow(m.IntensityFactor, float64(m.PhotonCount-1)), 0)

	return c, nil
}
