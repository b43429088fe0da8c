package boundary

import (
	"math"

	"github.com/notargets/gobcs/mesh"
)

// TwoPi scales the normalised y and z coordinates handed to value generators.
const TwoPi = 2 * math.Pi

// stencilTerm is one interior contribution to a guard value: coefficient c
// applied to the field sample at (x, y, iz).
type stencilTerm struct {
	x, y int
	c    float64
}

// emitFunc receives the finished stencil for one guard cell: the guard
// coordinates, the interior terms, and the prescribed-value contribution rhs.
// terms is reused between calls and must not be retained.
type emitFunc func(icx, icy, iz int, terms []stencilTerm, rhs float64)

// sweepState carries the per-Apply working set: the resolved stagger mode,
// the generator values for the current run position, and the running spacing
// vector that is advanced incrementally from the nearest depth outward.
type sweepState struct {
	m       *mesh.Mesh
	dir     mesh.Direction
	xOffset int
	yOffset int
	stagger int
	vals    []float64
	spacing []float64
	weights []float64
	refs    [][2]int
	terms   []stencilTerm
	emit    emitFunc
}

// spacingOf fetches the local metric value and rejects unusable geometry.
func (s *sweepState) spacingOf(i, j int) (float64, error) {
	h := s.m.Spacing(s.dir, i, j)
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, &InvalidMeshGeometryError{Direction: s.dir, I: i, J: j, Spacing: h}
	}
	return h, nil
}

// sweep drives the boundary iterator and emits one stencil per guard cell per
// z plane. Apply writes the results into the field; OperatorMatrix assembles
// them into a sparse system.
func (op *Op) sweep(f *mesh.Field3D, t float64, emit emitFunc) error {
	var (
		bndry = op.Region
		m     = f.Mesh()
		n     = op.Order + 1
		dir   = mesh.DirX
	)
	if bndry.By != 0 {
		dir = mesh.DirY
	}
	s := &sweepState{
		m:       m,
		dir:     dir,
		vals:    make([]float64, m.Nz),
		spacing: make([]float64, n),
		weights: make([]float64, n),
		refs:    make([][2]int, n),
		terms:   make([]stencilTerm, 0, n),
		emit:    emit,
	}
	s.xOffset, s.yOffset, s.stagger = resolveStagger(bndry.Bx, bndry.By, f.Location())

	for bndry.First(); !bndry.IsDone(); bndry.Next1D() {
		x, y := bndry.X(), bndry.Y()
		if op.Cond != Free {
			// target values half-way between the guard cell and its paired
			// grid cell, evaluated once per run position
			xnorm := 0.5 * (m.GlobalX(x) + m.GlobalX(x-s.xOffset))
			ynorm := TwoPi * 0.5 * (m.GlobalY(y) + m.GlobalY(y-s.yOffset))
			zfac := TwoPi / float64(m.Nz)
			for zk := range s.vals {
				v, err := op.gen.Generate(xnorm, ynorm, zfac*float64(zk), t)
				if err != nil {
					return &InvalidConfigurationError{Reason: "value generator failed: " + err.Error()}
				}
				s.vals[zk] = v
			}
		}
		var err error
		switch op.Cond {
		case Dirichlet:
			err = op.dirichletLine(s, x, y)
		case Neumann:
			err = op.neumannLine(s, x, y)
		case Free:
			err = op.freeLine(s, x, y)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// dirichletLine sweeps the guard depths of one run position. The prescribed
// value occupies offset 0 at the physical boundary. With opposed stagger the
// sample on the boundary itself is part of the write set (depth -1) and the
// interior references shift one cell deeper.
func (op *Op) dirichletLine(s *sweepState, x, y int) error {
	var (
		bx, by = op.Region.Bx, op.Region.By
		order  = op.Order
		sp     = s.spacing
		refs   = s.refs[:order]
	)
	for k := 1; k <= order; k++ {
		refs[k-1] = [2]int{x - k*bx, y - k*by}
	}
	sp[0] = 0
	if s.stagger == 0 {
		total := 0.0
		for k := 1; k <= order; k++ {
			h, err := s.spacingOf(refs[k-1][0], refs[k-1][1])
			if err != nil {
				return err
			}
			sp[k] = total + h/2
			total += h
		}
	} else {
		for k := 1; k <= order; k++ {
			h, err := s.spacingOf(refs[k-1][0], refs[k-1][1])
			if err != nil {
				return err
			}
			sp[k] = sp[k-1] + h
		}
	}
	if s.stagger == -1 {
		for k := 1; k <= order; k++ {
			refs[k-1] = [2]int{x - (k+1)*bx, y - (k+1)*by}
		}
	}
	// the value on the boundary is specified even when that sample is part of
	// the evolving system, hence the extra depth at -1
	iStart := 0
	if s.stagger == -1 {
		iStart = -1
	}
	for i := iStart; i < op.Region.Width; i++ {
		icx, icy := x+i*bx, y+i*by
		preAdd := s.stagger == -1 && i != -1
		if err := op.stepWeights(s, icx, icy, preAdd, s.stagger == 1); err != nil {
			return err
		}
		s.emitStencil(icx, icy, refs, true)
	}
	return nil
}

// neumannLine sweeps one run position with the derivative anchored at offset
// 0. When opposed stagger puts the staggered sample exactly on the boundary,
// two values are defined at the same point and the first two offsets collapse.
func (op *Op) neumannLine(s *sweepState, x, y int) error {
	var (
		bx, by = op.Region.Bx, op.Region.By
		order  = op.Order
		sp     = s.spacing
		refs   = s.refs[:order]
	)
	for k := 1; k <= order; k++ {
		refs[k-1] = [2]int{x - k*bx, y - k*by}
	}
	sp[0] = 0
	if s.stagger == 0 {
		total := 0.0
		for k := 1; k <= order; k++ {
			h, err := s.spacingOf(refs[k-1][0], refs[k-1][1])
			if err != nil {
				return err
			}
			sp[k] = total + h/2
			total += h
		}
	} else if s.stagger == -1 &&
		((bx != 0 && s.xOffset == -1) || (by != 0 && s.yOffset == -1)) {
		sp[1] = sp[0]
		for k := 2; k <= order; k++ {
			h, err := s.spacingOf(refs[k-2][0], refs[k-2][1])
			if err != nil {
				return err
			}
			sp[k] = sp[k-1] + h
		}
	} else {
		for k := 1; k <= order; k++ {
			h, err := s.spacingOf(refs[k-1][0], refs[k-1][1])
			if err != nil {
				return err
			}
			sp[k] = sp[k-1] + h
		}
	}
	for i := 0; i < op.Region.Width; i++ {
		icx, icy := x+i*bx, y+i*by
		if err := op.stepWeights(s, icx, icy, s.stagger == -1, s.stagger == 1); err != nil {
			return err
		}
		s.emitStencil(icx, icy, refs, true)
	}
	return nil
}

// freeLine sweeps one run position extrapolating the order+1 nearest interior
// samples; no prescribed value takes part.
func (op *Op) freeLine(s *sweepState, x, y int) error {
	var (
		bx, by = op.Region.Bx, op.Region.By
		n      = op.Order + 1
		sp     = s.spacing
		refs   = s.refs[:n]
	)
	for k := 0; k < n; k++ {
		refs[k] = [2]int{x - (k+1)*bx, y - (k+1)*by}
	}
	if s.stagger == 0 {
		total := 0.0
		for k := 0; k < n; k++ {
			h, err := s.spacingOf(refs[k][0], refs[k][1])
			if err != nil {
				return err
			}
			sp[k] = total + h/2
			total += h
		}
	} else {
		h, err := s.spacingOf(refs[0][0], refs[0][1])
		if err != nil {
			return err
		}
		sp[0] = h
		for k := 1; k < n; k++ {
			if h, err = s.spacingOf(refs[k][0], refs[k][1]); err != nil {
				return err
			}
			sp[k] = sp[k-1] + h
		}
	}
	for i := 0; i < op.Region.Width; i++ {
		icx, icy := x+i*bx, y+i*by
		if err := op.stepWeights(s, icx, icy, false, s.stagger != 0); err != nil {
			return err
		}
		s.emitStencil(icx, icy, refs, false)
	}
	return nil
}

// stepWeights advances the running spacing vector for guard cell (icx,icy)
// and solves the weights at that depth. Without stagger the local spacing is
// split around the solve, placing the evaluation point at the cell center;
// staggered cases add the full spacing before or after per preAdd/postAdd.
func (op *Op) stepWeights(s *sweepState, icx, icy int, preAdd, postAdd bool) error {
	if s.stagger == 0 {
		h, err := s.spacingOf(icx, icy)
		if err != nil {
			return err
		}
		addScalar(s.spacing, h/2)
		if err = op.solve(s); err != nil {
			return err
		}
		addScalar(s.spacing, h/2)
		return nil
	}
	if preAdd {
		h, err := s.spacingOf(icx, icy)
		if err != nil {
			return err
		}
		addScalar(s.spacing, h)
	}
	if err := op.solve(s); err != nil {
		return err
	}
	if postAdd {
		h, err := s.spacingOf(icx, icy)
		if err != nil {
			return err
		}
		addScalar(s.spacing, h)
	}
	return nil
}

func (op *Op) solve(s *sweepState) error {
	if op.Cond == Neumann {
		return neumannWeights(s.weights, s.spacing)
	}
	return extrapWeights(s.weights, s.spacing)
}

// emitStencil hands the current depth's stencil to the emit callback, once
// per z plane. withValue stencils pair weights[1:] with the references and
// put weight 0 on the generated value; Free stencils pair weights with the
// references directly.
func (s *sweepState) emitStencil(icx, icy int, refs [][2]int, withValue bool) {
	terms := s.terms[:0]
	if withValue {
		for k, r := range refs {
			terms = append(terms, stencilTerm{x: r[0], y: r[1], c: s.weights[k+1]})
		}
		for iz := 0; iz < s.m.Nz; iz++ {
			s.emit(icx, icy, iz, terms, s.weights[0]*s.vals[iz])
		}
		return
	}
	for k, r := range refs {
		terms = append(terms, stencilTerm{x: r[0], y: r[1], c: s.weights[k]})
	}
	for iz := 0; iz < s.m.Nz; iz++ {
		s.emit(icx, icy, iz, terms, 0)
	}
}

func addScalar(v []float64, a float64) {
	for i := range v {
		v[i] += a
	}
}
