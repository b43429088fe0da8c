//go:build cgo
// +build cgo

package boundary

/*
#cgo LDFLAGS: -lopenblas -lm -lpthread
#include <cblas.h>
*/
import "C"

import (
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// The per-depth stencil systems are tiny, but consumers that assemble
// OperatorMatrix output into dense implicit systems go through gonum's BLAS;
// cgo builds route that through OpenBLAS.
func init() {
	blas64.Use(netblas.Implementation{})
}
