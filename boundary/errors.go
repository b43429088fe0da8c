package boundary

import (
	"fmt"

	"github.com/notargets/gobcs/mesh"
)

// InvalidConfigurationError reports a malformed operator construction, an
// operator/field mismatch, or a value generator expression that fails to
// evaluate during a sweep.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "boundary: invalid configuration: " + e.Reason
}

// InvalidMeshGeometryError reports a non-positive or non-finite metric value
// encountered during a sweep.
type InvalidMeshGeometryError struct {
	Direction mesh.Direction
	I, J      int
	Spacing   float64
}

func (e *InvalidMeshGeometryError) Error() string {
	return fmt.Sprintf("boundary: invalid %s spacing %g at (%d,%d)", e.Direction, e.Spacing, e.I, e.J)
}

// CoefficientSolveError reports a singular or non-finite stencil system. It is
// fatal to the Apply call; the caller should treat it as a geometry or
// configuration defect, not a transient fault.
type CoefficientSolveError struct {
	Spacing []float64
	Cause   error
}

func (e *CoefficientSolveError) Error() string {
	return fmt.Sprintf("boundary: coefficient solve failed for offsets %v: %v", e.Spacing, e.Cause)
}

func (e *CoefficientSolveError) Unwrap() error { return e.Cause }
