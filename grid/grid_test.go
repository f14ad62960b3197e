package grid

import (
	"math"
	"testing"
)

func validSpec() Spec {
	return Spec{
		RadialMin: 0, RadialMax: 75e-4, RadialNodes: 202,
		DistMin: 0, DistMax: 6e-2, DistSteps: 300,
		TimeMin: -300e-15, TimeMax: 300e-15, TimeNodes: 1026,
	}
}

func TestNewAxes(t *testing.T) {
	g, err := New(validSpec())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if len(g.Radial) != 202 {
		t.Errorf("Expected 202 radial nodes, got %d", len(g.Radial))
	}
	if len(g.Dist) != 301 {
		t.Errorf("Expected 301 propagation points, got %d", len(g.Dist))
	}
	if len(g.Time) != 1026 {
		t.Errorf("Expected 1026 time nodes, got %d", len(g.Time))
	}
	if g.Radial[0] != 0 || g.Radial[201] != 75e-4 {
		t.Errorf("Radial axis endpoints wrong: %g, %g", g.Radial[0], g.Radial[201])
	}
	if g.AxisNode != 0 {
		t.Errorf("Expected axis node 0, got %d", g.AxisNode)
	}
	if g.PeakNode != 513 {
		t.Errorf("Expected peak node 513, got %d", g.PeakNode)
	}

	wantDr := 75e-4 / 201
	if math.Abs(g.RadialStep-wantDr) > 1e-18 {
		t.Errorf("Expected radial step %g, got %g", wantDr, g.RadialStep)
	}
	wantDz := 6e-2 / 300
	if math.Abs(g.DistStep-wantDz) > 1e-18 {
		t.Errorf("Expected dist step %g, got %g", wantDz, g.DistStep)
	}
}

func TestFrequencyAxisDFTOrder(t *testing.T) {
	s := validSpec()
	s.TimeNodes = 8
	g, err := New(s)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if g.Freq == nil {
		t.Fatal("Expected frequency axis for even time node count")
	}
	if len(g.Freq) != 8 {
		t.Fatalf("Expected 8 frequency nodes, got %d", len(g.Freq))
	}

	dw := 2 * math.Pi / (8 * g.TimeStep)
	want := []float64{0, dw, 2 * dw, 3 * dw, -4 * dw, -3 * dw, -2 * dw, -dw}
	for i, w := range want {
		if math.Abs(g.Freq[i]-w) > 1e-9*math.Abs(dw) {
			t.Errorf("Freq[%d]: expected %g, got %g", i, w, g.Freq[i])
		}
	}
}

func TestOddTimeNodesHaveNoFrequencyAxis(t *testing.T) {
	s := validSpec()
	s.TimeNodes = 9
	g, err := New(s)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if g.Freq != nil {
		t.Error("Expected nil frequency axis for odd time node count")
	}
}

func TestAxisNodeForCenteredSlab(t *testing.T) {
	s := validSpec()
	s.RadialMin, s.RadialMax, s.RadialNodes = -1.0, 1.0, 101
	g, err := New(s)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if g.AxisNode != 50 {
		t.Errorf("Expected axis node 50, got %d", g.AxisNode)
	}
	if g.Radial[g.AxisNode] != 0 {
		t.Errorf("Expected r = 0 at axis node, got %g", g.Radial[g.AxisNode])
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"too few radial nodes", func(s *Spec) { s.RadialNodes = 2 }},
		{"too few time nodes", func(s *Spec) { s.TimeNodes = 1 }},
		{"no steps", func(s *Spec) { s.DistSteps = 0 }},
		{"empty radial extent", func(s *Spec) { s.RadialMax = s.RadialMin }},
		{"empty dist extent", func(s *Spec) { s.DistMax = s.DistMin - 1 }},
		{"empty time extent", func(s *Spec) { s.TimeMin, s.TimeMax = 1, -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSpec()
			tc.mutate(&s)
			if _, err := New(s); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
