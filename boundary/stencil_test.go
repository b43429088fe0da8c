package boundary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-8
}

func TestStencilWeightsClosedForms(t *testing.T) {
	// the Lagrange products divide exactly for uniform spacing, so the known
	// closed forms hold bit for bit
	// order 1 extrapolation, uniform spacing h: guard = 2*f0 - f1
	{
		h := 2.0
		w, err := StencilWeights(Free, []float64{h, 2 * h})
		assert.NoError(t, err)
		assert.Equal(t, []float64{2, -1}, w)
	}
	// order 1 Dirichlet, uniform spacing: boundary at h/2, sample at h,
	// guard = 2*B - f1
	{
		h := 2.0
		w, err := StencilWeights(Dirichlet, []float64{h / 2, h})
		assert.NoError(t, err)
		assert.Equal(t, []float64{2, -1}, w)
	}
	// order 1 Neumann: guard = s1*D + f1
	{
		h := 2.0
		w, err := StencilWeights(Neumann, []float64{h / 2, h})
		assert.NoError(t, err)
		assert.Equal(t, []float64{h, 1}, w)
	}
}

func TestStencilWeightsGeneralSolveAgreement(t *testing.T) {
	// the closed forms and the full linear solve are two implementations of
	// the same contract; they must agree on non-uniform offsets
	offsets := []float64{0.37, 0.95, 1.7, 2.9, 4.1}
	for _, cond := range []Condition{Free, Dirichlet, Neumann} {
		for order := 1; order <= 4; order++ {
			spacing := offsets[:order+1]
			w, err := StencilWeights(cond, spacing)
			assert.NoError(t, err)
			g, err := solveWeightsGeneral(cond, spacing)
			assert.NoError(t, err)
			for k := range w {
				assert.InDeltaf(t, g[k], w[k], 1e-9, "%v order %d component %d", cond, order, k)
			}
		}
	}
}

func TestStencilWeightsPolynomialReproduction(t *testing.T) {
	p := func(u float64) float64 { return 2 - 3*u + 0.5*u*u - 0.1*u*u*u }
	dp := func(u float64) float64 { return -3 + u - 0.3*u*u }
	spacing := []float64{0.4, 1.1, 1.9, 3.2}

	// extrapolation weights reproduce the interpolant's value at the origin
	{
		w, err := StencilWeights(Free, spacing)
		assert.NoError(t, err)
		var got float64
		for k, s := range spacing {
			got += w[k] * p(s)
		}
		assert.True(t, near(p(0), got))
	}
	// Dirichlet: offset 0 carries the boundary value, the rest are samples
	{
		w, err := StencilWeights(Dirichlet, spacing)
		assert.NoError(t, err)
		got := w[0] * p(spacing[0])
		for k := 1; k < len(spacing); k++ {
			got += w[k] * p(spacing[k])
		}
		assert.True(t, near(p(0), got))
	}
	// Neumann: offset 0 carries the outward (negative-u) derivative
	{
		w, err := StencilWeights(Neumann, spacing)
		assert.NoError(t, err)
		got := w[0] * (-dp(spacing[0]))
		for k := 1; k < len(spacing); k++ {
			got += w[k] * p(spacing[k])
		}
		assert.True(t, near(p(0), got))
	}
}

func TestStencilWeightsSingular(t *testing.T) {
	_, err := StencilWeights(Free, []float64{1, 1})
	assert.Error(t, err)
	var solveErr *CoefficientSolveError
	assert.ErrorAs(t, err, &solveErr)

	_, err = StencilWeights(Dirichlet, []float64{0.5, 0.5, 1.5})
	assert.ErrorAs(t, err, &solveErr)
}

func TestNeumannCollapsedAnchor(t *testing.T) {
	// the opposed-stagger collapse puts a sample exactly on the derivative
	// anchor; the system stays well posed
	h := 2.0
	w, err := StencilWeights(Neumann, []float64{h, h, 2 * h})
	assert.NoError(t, err)
	// guard = F2 + 2*h*D for this geometry (linear-in-u check: p = a - D*u)
	D, F1, F2 := 3.0, 7.0, 1.0
	got := w[0]*D + w[1]*F1 + w[2]*F2
	assert.True(t, near(F2+2*h*D, got))
}
