package solver

// stepADI advances the field one propagation step with the alternating-
// direction-implicit scheme: an implicit radial half-step against the
// explicit temporal operator, then an implicit temporal half-step against
// the explicit radial operator, each with a fresh AB2 nonlinear
// contribution. Two implicit solves and two source evaluations per step.
func (e *engine) stepADI(k int) error {
	w := e.opts.Workers

	// Half-step A. The explicit temporal operator acts along each radial
	// line; the implicit radial systems are then independent per time line.
	if err := forEachLine(e.nr, w, func(i int) error {
		e.rightT.Apply(e.rhs[i], e.field[i])
		return nil
	}); err != nil {
		return err
	}

	e.src.update(k, e.field)

	if err := forEachLine(e.nt, w, func(l int) error {
		f := make([]complex128, e.nr)
		for i := 0; i < e.nr; i++ {
			f[i] = e.rhs[i][l] + e.src.extrapolate(i, l, 0.25)
		}
		if err := e.leftR.Solve(f, f); err != nil {
			return err
		}
		for i := 0; i < e.nr; i++ {
			e.inter[i][l] = f[i]
		}
		return nil
	}); err != nil {
		return err
	}
	if err := checkFinite(e.inter, k); err != nil {
		return err
	}

	// Half-step B. The explicit radial operator acts along each time line of
	// the intermediate plane; the implicit temporal systems are independent
	// per radial line. The source is re-evaluated from the intermediate
	// field (the second evaluation of this step).
	if err := forEachLine(e.nt, w, func(l int) error {
		col := make([]complex128, e.nr)
		out := make([]complex128, e.nr)
		for i := 0; i < e.nr; i++ {
			col[i] = e.inter[i][l]
		}
		e.rightR.Apply(out, col)
		for i := 0; i < e.nr; i++ {
			e.rhs[i][l] = out[i]
		}
		return nil
	}); err != nil {
		return err
	}

	e.src.update(k, e.inter)

	if err := forEachLine(e.nr, w, func(i int) error {
		f := make([]complex128, e.nt)
		for l := 0; l < e.nt; l++ {
			f[l] = e.rhs[i][l] + e.src.extrapolate(i, l, 0.25)
		}
		return e.leftT.Solve(e.field[i], f)
	}); err != nil {
		return err
	}
	return checkFinite(e.field, k)
}
