package operator

import (
	"errors"
	"math/cmplx"
	"testing"
)

func TestPlanarLiteralConstruction(t *testing.T) {
	coef := complex(0.1, 0)
	op, err := New(Radial, Planar, Left, 4, coef)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	wantMain := []complex128{1, 1.2, 1.2, 1}
	for i, w := range wantMain {
		if cmplx.Abs(op.main[i]-w) > 1e-15 {
			t.Errorf("main[%d]: expected %v, got %v", i, w, op.main[i])
		}
	}
	// Interior off-diagonals are -coef, boundary rows have no coupling.
	if op.upper[0] != 0 || op.lower[3] != 0 {
		t.Errorf("Boundary rows should have zero coupling: upper[0]=%v lower[3]=%v",
			op.upper[0], op.lower[3])
	}
	for _, i := range []int{1, 2} {
		if cmplx.Abs(op.lower[i]+coef) > 1e-15 || cmplx.Abs(op.upper[i]+coef) > 1e-15 {
			t.Errorf("Interior off-diagonals at row %d: expected %v, got %v / %v",
				i, -coef, op.lower[i], op.upper[i])
		}
	}
}

func TestPlanarRightZeroesBoundaries(t *testing.T) {
	op, err := New(Radial, Planar, Right, 5, complex(0, -0.3))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if op.main[0] != 0 || op.main[4] != 0 || op.upper[0] != 0 || op.lower[4] != 0 {
		t.Error("Explicit planar operator should zero its boundary rows")
	}
}

func TestCylindricalAxisDoubling(t *testing.T) {
	for _, n := range []int{3, 16, 201} {
		for _, coef := range []complex128{complex(0, 0.07), complex(0.02, 0.4), complex(-0.1, 0)} {
			for _, role := range []Role{Left, Right} {
				op, err := New(Radial, Cylindrical, role, n, coef)
				if err != nil {
					t.Fatalf("New returned error: %v", err)
				}
				// Row 0 couples to node 1 with exactly twice the uniform
				// interior coefficient -coef.
				if cmplx.Abs(op.upper[0]-(-2*coef)) > 1e-15 {
					t.Errorf("n=%d coef=%v role=%v: upper[0]=%v, want %v",
						n, coef, role, op.upper[0], -2*coef)
				}
				if cmplx.Abs(op.main[0]-(1+2*coef)) > 1e-15 {
					t.Errorf("n=%d coef=%v role=%v: main[0]=%v, want %v",
						n, coef, role, op.main[0], 1+2*coef)
				}
			}
		}
	}
}

func TestCylindricalLastRow(t *testing.T) {
	left, _ := New(Radial, Cylindrical, Left, 6, complex(0, 0.2))
	right, _ := New(Radial, Cylindrical, Right, 6, complex(0, -0.2))
	if left.main[5] != 1 || left.lower[5] != 0 {
		t.Errorf("Implicit cylindrical last row should be identity, got main=%v lower=%v",
			left.main[5], left.lower[5])
	}
	if right.main[5] != 0 || right.lower[5] != 0 {
		t.Errorf("Explicit cylindrical last row should be zero, got main=%v lower=%v",
			right.main[5], right.lower[5])
	}
}

func TestCurvatureTerm(t *testing.T) {
	coef := complex(0, 0.1)
	op, err := New(Radial, Cylindrical, Left, 8, coef)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	// Interior row i: lower = -coef*(1 - 0.5/i), upper = -coef*(1 + 0.5/i).
	for i := 1; i < 7; i++ {
		inv := complex(0.5/float64(i), 0)
		if cmplx.Abs(op.lower[i]-(-coef*(1-inv))) > 1e-15 {
			t.Errorf("lower[%d]: got %v", i, op.lower[i])
		}
		if cmplx.Abs(op.upper[i]-(-coef*(1+inv))) > 1e-15 {
			t.Errorf("upper[%d]: got %v", i, op.upper[i])
		}
	}
}

func TestTemporalMustBePlanar(t *testing.T) {
	if _, err := New(Temporal, Cylindrical, Left, 8, 0.1); err == nil {
		t.Error("Expected error for cylindrical temporal operator")
	}
}

func TestTooFewNodes(t *testing.T) {
	if _, err := New(Radial, Planar, Left, 2, 0.1); err == nil {
		t.Error("Expected error for n < 3")
	}
}

func TestSolveRecoversApply(t *testing.T) {
	// For the implicit operator, Solve(Apply(x)) must return x.
	op, err := New(Radial, Cylindrical, Left, 12, complex(0.01, 0.23))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	x := make([]complex128, 12)
	for i := range x {
		x[i] = complex(float64(i)*0.3-1, float64(i*i)*0.05)
	}

	b := make([]complex128, 12)
	op.Apply(b, x)

	got := make([]complex128, 12)
	if err := op.Solve(got, b); err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	for i := range x {
		if cmplx.Abs(got[i]-x[i]) > 1e-12 {
			t.Errorf("Solution mismatch at %d: got %v, want %v", i, got[i], x[i])
		}
	}
}

func TestSolveAliasing(t *testing.T) {
	op, err := New(Temporal, Planar, Left, 9, complex(0, -0.15))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	rhs := make([]complex128, 9)
	for i := range rhs {
		rhs[i] = complex(1/float64(i+1), float64(i))
	}
	want := make([]complex128, 9)
	if err := op.Solve(want, rhs); err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	// Solving in place must give the same answer.
	if err := op.Solve(rhs, rhs); err != nil {
		t.Fatalf("In-place Solve returned error: %v", err)
	}
	for i := range want {
		if cmplx.Abs(rhs[i]-want[i]) > 1e-13 {
			t.Errorf("In-place solution mismatch at %d", i)
		}
	}
}

func TestSolveSingular(t *testing.T) {
	// Explicit planar operators have zeroed boundary rows and cannot be
	// factored; trying to solve one is an internal-consistency failure.
	op, err := New(Radial, Planar, Right, 5, complex(0, 0.2))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	rhs := make([]complex128, 5)
	x := make([]complex128, 5)
	if err := op.Solve(x, rhs); !errors.Is(err, ErrSingular) {
		t.Errorf("Expected ErrSingular, got %v", err)
	}
}

func TestZeroCoefficientLeftIsIdentity(t *testing.T) {
	op, err := New(Temporal, Planar, Left, 7, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	src := make([]complex128, 7)
	for i := range src {
		src[i] = complex(float64(i), -float64(i))
	}
	dst := make([]complex128, 7)
	op.Apply(dst, src)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("Zero-coefficient implicit operator should be identity at %d", i)
		}
	}
}
