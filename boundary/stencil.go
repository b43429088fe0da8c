package boundary

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// StencilWeights computes the weight vector realizing cond for a stencil
// whose sample offsets are the cumulative distances in spacing, index 0
// nearest, measured from the evaluation point toward the domain interior.
//
// For Free and Dirichlet the weights are the Lagrange basis polynomials for
// nodes at the offsets, evaluated at the origin; for Dirichlet, offset 0 is
// the physical boundary and weight 0 multiplies the prescribed value. For
// Neumann, weight 0 multiplies the prescribed outward-normal derivative at
// offset 0 and the remaining weights multiply interior samples; the resulting
// interpolant matches the samples and has inward derivative -D at the anchor.
func StencilWeights(cond Condition, spacing []float64) ([]float64, error) {
	w := make([]float64, len(spacing))
	var err error
	if cond == Neumann {
		err = neumannWeights(w, spacing)
	} else {
		err = extrapWeights(w, spacing)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// extrapWeights fills w with the Lagrange basis for nodes at the given
// offsets, evaluated at the origin. Coincident offsets make the basis
// undefined and surface as a CoefficientSolveError.
func extrapWeights(w, spacing []float64) error {
	for k := range spacing {
		p := 1.0
		for j := range spacing {
			if j == k {
				continue
			}
			p *= spacing[j] / (spacing[j] - spacing[k])
		}
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return solveError(spacing, fmt.Errorf("coincident offsets %g", spacing[k]))
		}
		w[k] = p
	}
	return nil
}

// neumannWeights fills w for the derivative-anchored stencil. Order 1 has the
// closed form guard = s1*D + f1; higher orders solve the transposed
// constraint system with an LU factorization.
func neumannWeights(w, spacing []float64) error {
	n := len(spacing)
	if n == 2 {
		w[0] = spacing[1]
		w[1] = 1
		return nil
	}
	// Constraint rows on the interpolant p(u) = sum_j c_j u^j, u inward:
	// row 0 is p'(s0), rows k are p(sk). The weight vector is row 0 of the
	// inverse, obtained by solving the transposed system against e0; the
	// derivative weight is negated so the prescribed value is the
	// outward-normal derivative.
	A := mat.NewDense(n, n, nil)
	for j := 1; j < n; j++ {
		A.Set(0, j, float64(j)*math.Pow(spacing[0], float64(j-1)))
	}
	for k := 1; k < n; k++ {
		A.Set(k, 0, 1)
		for j := 1; j < n; j++ {
			A.Set(k, j, math.Pow(spacing[k], float64(j)))
		}
	}
	y, err := solveRow0(A)
	if err != nil {
		return solveError(spacing, err)
	}
	w[0] = -y[0]
	for k := 1; k < n; k++ {
		w[k] = y[k]
	}
	return nil
}

// solveWeightsGeneral realizes the same contract as StencilWeights by solving
// the full constraint system for every condition. It exists to cross-check
// the closed forms and is exercised by the package tests.
func solveWeightsGeneral(cond Condition, spacing []float64) ([]float64, error) {
	n := len(spacing)
	A := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		if k == 0 && cond == Neumann {
			for j := 1; j < n; j++ {
				A.Set(0, j, float64(j)*math.Pow(spacing[0], float64(j-1)))
			}
			continue
		}
		A.Set(k, 0, 1)
		for j := 1; j < n; j++ {
			A.Set(k, j, math.Pow(spacing[k], float64(j)))
		}
	}
	y, err := solveRow0(A)
	if err != nil {
		return nil, solveError(spacing, err)
	}
	w := make([]float64, n)
	copy(w, y)
	if cond == Neumann {
		w[0] = -w[0]
	}
	return w, nil
}

// solveRow0 returns row 0 of A's inverse, i.e. the functional extracting the
// interpolant's value at the origin from the constraint data.
func solveRow0(A *mat.Dense) ([]float64, error) {
	n, _ := A.Dims()
	var lu mat.LU
	lu.Factorize(A)
	e0 := mat.NewVecDense(n, nil)
	e0.SetVec(0, 1)
	y := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(y, true, e0); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
		// ill-conditioned but solvable; the caller's offsets are distinct, so
		// the result is still the unique weight vector
	}
	row := make([]float64, n)
	for k := 0; k < n; k++ {
		v := y.AtVec(k)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("singular stencil system")
		}
		row[k] = v
	}
	return row, nil
}

func solveError(spacing []float64, cause error) error {
	s := make([]float64, len(spacing))
	copy(s, spacing)
	return &CoefficientSolveError{Spacing: s, Cause: cause}
}
