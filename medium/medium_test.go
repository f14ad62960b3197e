package medium

import (
	"math"
	"testing"
)

func TestDeriveReferenceWater(t *testing.T) {
	c, err := Derive(Water(), ReferenceBeam())
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}

	wantK0 := 2 * math.Pi / 800e-9
	if relDiff(c.Wavenumber0, wantK0) > 1e-12 {
		t.Errorf("Wavenumber0: expected %g, got %g", wantK0, c.Wavenumber0)
	}
	wantK := wantK0 * 1.334
	if relDiff(c.Wavenumber, wantK) > 1e-12 {
		t.Errorf("Wavenumber: expected %g, got %g", wantK, c.Wavenumber)
	}

	wantPower := 2.2e-6 / (130e-15 * math.Sqrt(0.5*math.Pi))
	if relDiff(c.Power, wantPower) > 1e-12 {
		t.Errorf("Power: expected %g, got %g", wantPower, c.Power)
	}

	// Kerr coefficient is purely imaginary, MPA purely real and negative.
	if real(c.KerrCoef) != 0 {
		t.Errorf("KerrCoef should be purely imaginary, got %v", c.KerrCoef)
	}
	wantKerr := wantK0 * 1.6e-20
	if relDiff(imag(c.KerrCoef), wantKerr) > 1e-12 {
		t.Errorf("imag(KerrCoef): expected %g, got %g", wantKerr, imag(c.KerrCoef))
	}
	if imag(c.MPACoef) != 0 || real(c.MPACoef) >= 0 {
		t.Errorf("MPACoef should be real and negative, got %v", c.MPACoef)
	}
	if relDiff(real(c.MPACoef), -0.5*8e-61) > 1e-12 {
		t.Errorf("real(MPACoef): expected %g, got %g", -0.5*8e-61, real(c.MPACoef))
	}
	if c.MPAExponent != 8 {
		t.Errorf("MPAExponent: expected 8 for K=5, got %g", c.MPAExponent)
	}

	if c.CriticalPower <= 0 || c.Power <= 0 || c.Amplitude <= 0 {
		t.Errorf("Derived powers/amplitude must be positive: Pcr=%g P=%g A=%g",
			c.CriticalPower, c.Power, c.Amplitude)
	}
	if relDiff(c.Amplitude*c.Amplitude, c.Intensity) > 1e-12 {
		t.Errorf("Amplitude^2 should equal Intensity with unit factor: %g vs %g",
			c.Amplitude*c.Amplitude, c.Intensity)
	}
}

func TestDeriveValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Medium, *Beam)
	}{
		{"zero linear index", func(m *Medium, b *Beam) { m.LinearIndex = 0 }},
		{"one photon", func(m *Medium, b *Beam) { m.PhotonCount = 1 }},
		{"zero intensity factor", func(m *Medium, b *Beam) { m.IntensityFactor = 0 }},
		{"negative wavelength", func(m *Medium, b *Beam) { b.Wavelength = -1 }},
		{"zero waist", func(m *Medium, b *Beam) { b.Waist = 0 }},
		{"zero peak time", func(m *Medium, b *Beam) { b.PeakTime = 0 }},
		{"zero energy", func(m *Medium, b *Beam) { b.Energy = 0 }},
		{"zero focal length", func(m *Medium, b *Beam) { b.FocalLength = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, b := Water(), ReferenceBeam()
			tc.mutate(&m, &b)
			if _, err := Derive(m, b); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestDeriveCollimated(t *testing.T) {
	b := ReferenceBeam()
	b.FocalLength = math.Inf(1)
	if _, err := Derive(Water(), b); err != nil {
		t.Errorf("Infinite focal length should be accepted: %v", err)
	}
}

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}
