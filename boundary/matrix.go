package boundary

import (
	"github.com/james-bowman/sparse"

	"github.com/notargets/gobcs/mesh"
)

// OperatorMatrix assembles the guard-cell fill as a sparse affine operator
// over the flat field storage: guard = A*f + b, with identity rows for every
// sample the operator does not touch. An implicit solver can fold the
// boundary condition into its system with it; for any field, A*f + b matches
// what Apply writes, entry for entry.
//
// The field supplies the sample location and mesh; its values do not enter
// the assembly. t enters through the value generator contributions in b.
func (op *Op) OperatorMatrix(f *mesh.Field3D, t float64) (*sparse.CSR, []float64, error) {
	if f.Mesh() != op.Region.Mesh() {
		return nil, nil, &InvalidConfigurationError{Reason: "field is not bound to the operator's mesh"}
	}
	var (
		m   = f.Mesh()
		n   = m.Size()
		dok = sparse.NewDOK(n, n)
		b   = make([]float64, n)
	)
	guard := make(map[int]bool)
	err := op.sweep(f, t, func(icx, icy, iz int, terms []stencilTerm, rhs float64) {
		row := m.Index(icx, icy, iz)
		for _, tm := range terms {
			dok.Set(row, m.Index(tm.x, tm.y, iz), tm.c)
		}
		b[row] = rhs
		guard[row] = true
	})
	if err != nil {
		return nil, nil, err
	}
	for row := 0; row < n; row++ {
		if !guard[row] {
			dok.Set(row, row, 1)
		}
	}
	return dok.ToCSR(), b, nil
}
