// Package operator builds the boundary-aware tridiagonal Crank-Nicolson
// operators of the propagation scheme and solves the implicit systems they
// define.
//
// An implicit (left) operator discretizes I + 2c*D and an explicit (right)
// operator I - 2c*D, where D is the centered second derivative over one grid
// dimension and c is passed with the matching sign by the caller: the paired
// builder calls use +c and -c. Cylindrical geometry adds the 1/r curvature
// term to interior radial rows and replaces the on-axis row with the
// symmetry relation that removes the coordinate singularity.
package operator

import (
	"errors"
	"fmt"
)

// Dimension tags the grid dimension an operator acts along.
type Dimension int

const (
	Radial Dimension = iota
	Temporal
)

// Role distinguishes the implicit (solved) and explicit (applied) member of
// a Crank-Nicolson pair.
type Role int

const (
	Left  Role = iota // implicit
	Right             // explicit
)

// Geometry selects the transverse coordinate system.
type Geometry int

const (
	Planar Geometry = iota
	Cylindrical
)

func (g Geometry) String() string {
	switch g {
	case Planar:
		return "planar"
	case Cylindrical:
		return "cylindrical"
	}
	return fmt.Sprintf("Geometry(%d)", int(g))
}

// ParseGeometry maps a configuration string to a Geometry.
func ParseGeometry(s string) (Geometry, error) {
	switch s {
	case "planar":
		return Planar, nil
	case "cylindrical":
		return Cylindrical, nil
	}
	return 0, fmt.Errorf("operator: unknown geometry %q (want planar or cylindrical)", s)
}

// ErrSingular reports a tridiagonal system whose factorization hit a zero
// pivot. The builders produce diagonally dominant or identity boundary rows,
// so this indicates an operator construction defect, not a data condition.
var ErrSingular = errors.New("operator: singular tridiagonal system")

// Operator is a square tridiagonal complex operator over one grid dimension.
// Built once per run and read-only afterwards; safe for concurrent use by
// parallel line solves.
type Operator struct {
	dim  Dimension
	geo  Geometry
	role Role
	n    int

	// lower[i] couples row i to node i-1, upper[i] to node i+1.
	// lower[0] and upper[n-1] are never referenced.
	lower []complex128
	main  []complex128
	upper []complex128
}

// New builds the operator for n nodes with diagonal coefficient coef.
// Temporal operators have no curvature term and must be Planar.
func New(dim Dimension, geo Geometry, role Role, n int, coef complex128) (*Operator, error) {
	if n < 3 {
		return nil, fmt.Errorf("operator: need at least 3 nodes, got %d", n)
	}
	if dim == Temporal && geo != Planar {
		return nil, fmt.Errorf("operator: temporal operators are always planar")
	}

	op := &Operator{
		dim:   dim,
		geo:   geo,
		role:  role,
		n:     n,
		lower: make([]complex128, n),
		main:  make([]complex128, n),
		upper: make([]complex128, n),
	}

	mcf := 1 + 2*coef
	for i := 1; i < n-1; i++ {
		op.main[i] = mcf
		if geo == Cylindrical {
			inv := complex(0.5/float64(i), 0)
			op.lower[i] = -coef * (1 - inv)
			op.upper[i] = -coef * (1 + inv)
		} else {
			op.lower[i] = -coef
			op.upper[i] = -coef
		}
	}

	// Boundary rows. The implicit member carries the Dirichlet identity (or
	// the on-axis symmetry row); the explicit member zeroes the matching row
	// so the boundary value comes entirely from the implicit side.
	var bound complex128
	if role == Left {
		bound = 1
	}
	op.main[0], op.main[n-1] = bound, bound
	if geo == Cylindrical {
		// On-axis symmetry: the coupling to node 1 is doubled, which is the
		// centered stencil folded across r = 0.
		op.main[0] = mcf
		op.upper[0] = -2 * coef
	}

	return op, nil
}

// Size returns the node count.
func (op *Operator) Size() int { return op.n }

// Dim returns the tagged dimension.
func (op *Operator) Dim() Dimension { return op.dim }

// Role returns the operator's role in its Crank-Nicolson pair.
func (op *Operator) Role() Role { return op.role }

// Apply computes dst = A*src. dst and src must have length Size and must
// not alias.
func (op *Operator) Apply(dst, src []complex128) {
	n := op.n
	dst[0] = op.main[0]*src[0] + op.upper[0]*src[1]
	for i := 1; i < n-1; i++ {
		dst[i] = op.lower[i]*src[i-1] + op.main[i]*src[i] + op.upper[i]*src[i+1]
	}
	dst[n-1] = op.lower[n-1]*src[n-2] + op.main[n-1]*src[n-1]
}

// Solve solves A*x = rhs by the Thomas algorithm. x and rhs may alias.
// Returns ErrSingular on a zero pivot; per the builder invariants this is an
// internal-consistency failure, not a recoverable runtime condition.
func (op *Operator) Solve(x, rhs []complex128) error {
	n := op.n
	cp := make([]complex128, n)
	dp := make([]complex128, n)

	den := op.main[0]
	if den == 0 {
		return fmt.Errorf("%w: zero pivot at row 0", ErrSingular)
	}
	cp[0] = op.upper[0] / den
	dp[0] = rhs[0] / den

	for i := 1; i < n; i++ {
		den = op.main[i] - op.lower[i]*cp[i-1]
		if den == 0 {
			return fmt.Errorf("%w: zero pivot at row %d", ErrSingular, i)
		}
		cp[i] = op.upper[i] / den
		dp[i] = (rhs[i] - op.lower[i]*dp[i-1]) / den
	}

	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return nil
}
