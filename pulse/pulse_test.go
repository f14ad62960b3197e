package pulse

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/filamentlab/go-filament/medium"
)

func TestChirpedGaussianPeak(t *testing.T) {
	b := medium.ReferenceBeam()
	c, err := medium.Derive(medium.Water(), b)
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}
	env := ChirpedGaussian(b, c)

	// On axis at the peak time the envelope equals the peak amplitude.
	got := env(0, 0)
	if math.Abs(real(got)-c.Amplitude) > 1e-9*c.Amplitude || imag(got) != 0 {
		t.Errorf("Expected %g at (0,0), got %v", c.Amplitude, got)
	}

	// At one waist the modulus drops by 1/e^2... in intensity, 1/e in amplitude
	// squared argument: |E(w,0)| = A*exp(-1).
	want := c.Amplitude * math.Exp(-1)
	if math.Abs(cmplx.Abs(env(b.Waist, 0))-want) > 1e-9*want {
		t.Errorf("Expected modulus %g at one waist, got %g", want, cmplx.Abs(env(b.Waist, 0)))
	}

	// Radial symmetry of the modulus.
	if math.Abs(cmplx.Abs(env(1e-5, 3e-15))-cmplx.Abs(env(-1e-5, 3e-15))) > 1e-20 {
		t.Error("Envelope modulus should be symmetric in r")
	}
}

func TestChirpedGaussianLensPhase(t *testing.T) {
	b := medium.ReferenceBeam()
	c, err := medium.Derive(medium.Water(), b)
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}
	focused := ChirpedGaussian(b, c)

	b2 := b
	b2.FocalLength = math.Inf(1)
	c2, err := medium.Derive(medium.Water(), b2)
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}
	collimated := ChirpedGaussian(b2, c2)

	r := 5e-5
	dphase := cmplx.Phase(focused(r, 0)) - cmplx.Phase(collimated(r, 0))
	want := -0.5 * c.Wavenumber * r * r / b.FocalLength
	// Compare modulo 2*pi.
	diff := math.Mod(dphase-want, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	}
	if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	if math.Abs(diff) > 1e-9 {
		t.Errorf("Lens phase mismatch: got %g, want %g", dphase, want)
	}
}

func TestZero(t *testing.T) {
	if Zero()(1, 2) != 0 {
		t.Error("Zero envelope should return 0 everywhere")
	}
}
