package boundary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gobcs/fieldgen"
	"github.com/notargets/gobcs/mesh"
)

func TestOperatorMatrixMatchesApply(t *testing.T) {
	m := stretchedMesh(t)
	gen, err := fieldgen.Parse("1 + x + t")
	assert.NoError(t, err)

	cases := []struct {
		cond Condition
		gen  fieldgen.FieldGenerator
	}{
		{Dirichlet, gen},
		{Neumann, fieldgen.Constant(0.7)},
		{Free, nil},
	}
	for _, tc := range cases {
		f := mesh.NewField3D(m, mesh.Centered)
		f.SetFunc(func(x, y, z float64) float64 {
			return math.Sin(5*x+z)*math.Cos(3*y) + 0.2*x*y
		})
		op, err := New(tc.cond, 2, mesh.NewBoundaryXLow(m), tc.gen)
		assert.NoError(t, err)

		A, b, err := op.OperatorMatrix(f, 0.5)
		assert.NoError(t, err)
		r, c := A.Dims()
		assert.Equal(t, m.Size(), r)
		assert.Equal(t, m.Size(), c)

		applied := f.Copy()
		assert.NoError(t, op.Apply(applied, 0.5))

		var y mat.VecDense
		y.MulVec(A, mat.NewVecDense(m.Size(), f.Data()))
		for idx := 0; idx < m.Size(); idx++ {
			assert.InDeltaf(t, applied.Data()[idx], y.AtVec(idx)+b[idx], 1e-12,
				"%s row %d", tc.cond, idx)
		}
	}
}

func TestOperatorMatrixIdentityRows(t *testing.T) {
	m := uniformMesh(t, 1)
	f := mesh.NewField3D(m, mesh.Centered)
	op, err := New(Dirichlet, 1, mesh.NewBoundaryXLow(m), fieldgen.Constant(2))
	assert.NoError(t, err)

	A, b, err := op.OperatorMatrix(f, 0)
	assert.NoError(t, err)

	for i := 0; i < m.Nx; i++ {
		for j := 0; j < m.Ny; j++ {
			inWriteSet := i < m.NGuard && j >= m.NGuard && j < m.Ny-m.NGuard
			for k := 0; k < m.Nz; k++ {
				row := m.Index(i, j, k)
				if inWriteSet {
					// guard row: prescribed contribution plus one interior term
					assert.NotZero(t, b[row])
					continue
				}
				assert.Equal(t, 1.0, A.At(row, row))
				assert.Zero(t, b[row])
			}
		}
	}
}

func TestOperatorMatrixRejectsForeignField(t *testing.T) {
	m1 := uniformMesh(t, 1)
	m2 := uniformMesh(t, 1)
	op, err := New(Free, 1, mesh.NewBoundaryXLow(m1), nil)
	assert.NoError(t, err)
	var cfgErr *InvalidConfigurationError
	_, _, err = op.OperatorMatrix(mesh.NewField3D(m2, mesh.Centered), 0)
	assert.ErrorAs(t, err, &cfgErr)
}
