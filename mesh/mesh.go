package mesh

import (
	"fmt"
	"math"
)

// Direction selects one of the two metric directions of the mesh. The z
// direction is uniform and periodic and carries no metric.
type Direction int

const (
	DirX Direction = iota
	DirY
)

func (d Direction) String() string {
	if d == DirX {
		return "x"
	}
	return "y"
}

// Mesh is a structured, logically rectangular mesh with non-uniform cell
// spacing in x and y. Nx and Ny include NGuard guard cells on each side;
// Nz has no guard cells.
//
// Dx and Dy hold the cell widths per (i,j) index pair. The constructors
// produce j-independent (respectively i-independent) profiles, but the
// per-pair lookup is kept so that locally refined metrics can be installed
// directly.
type Mesh struct {
	Nx, Ny, Nz int
	NGuard     int
	Dx, Dy     [][]float64
	xc, yc     []float64 // physical cell center coordinates, from the edge of the guard band
	xTot, yTot float64   // physical extents, used for normalised global coordinates
}

// NewUniformMesh builds a mesh with nx x ny x nz interior cells, ng guard
// cells on each x and y side, and uniform spacings hx, hy.
func NewUniformMesh(nx, ny, nz, ng int, hx, hy float64) (*Mesh, error) {
	return newMesh(nx, ny, nz, ng, func(i int) float64 { return hx }, func(j int) float64 { return hy })
}

// NewStretchedMesh builds a mesh whose cell widths grow geometrically from
// the low side: dx_i = hx0 * ratio^i over the full (guard-inclusive) index
// range, and likewise for y. ratio = 1 recovers the uniform mesh.
func NewStretchedMesh(nx, ny, nz, ng int, hx0, hy0, ratio float64) (*Mesh, error) {
	if ratio <= 0 {
		return nil, fmt.Errorf("mesh: stretch ratio must be positive, got %g", ratio)
	}
	return newMesh(nx, ny, nz, ng,
		func(i int) float64 { return hx0 * math.Pow(ratio, float64(i)) },
		func(j int) float64 { return hy0 * math.Pow(ratio, float64(j)) })
}

func newMesh(nx, ny, nz, ng int, hx, hy func(int) float64) (*Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("mesh: extents must be positive, got %d x %d x %d", nx, ny, nz)
	}
	if ng < 1 {
		return nil, fmt.Errorf("mesh: need at least one guard cell, got %d", ng)
	}
	m := &Mesh{
		Nx:     nx + 2*ng,
		Ny:     ny + 2*ng,
		Nz:     nz,
		NGuard: ng,
	}
	m.Dx = make([][]float64, m.Nx)
	m.Dy = make([][]float64, m.Nx)
	for i := 0; i < m.Nx; i++ {
		m.Dx[i] = make([]float64, m.Ny)
		m.Dy[i] = make([]float64, m.Ny)
		for j := 0; j < m.Ny; j++ {
			dx, dy := hx(i), hy(j)
			if dx <= 0 || dy <= 0 || !isFinite(dx) || !isFinite(dy) {
				return nil, fmt.Errorf("mesh: non-positive spacing at (%d,%d): dx=%g dy=%g", i, j, dx, dy)
			}
			m.Dx[i][j] = dx
			m.Dy[i][j] = dy
		}
	}
	m.xc, m.xTot = centers(m.Nx, func(i int) float64 { return m.Dx[i][0] })
	m.yc, m.yTot = centers(m.Ny, func(j int) float64 { return m.Dy[0][j] })
	return m, nil
}

func centers(n int, h func(int) float64) (c []float64, total float64) {
	c = make([]float64, n)
	for i := 0; i < n; i++ {
		c[i] = total + h(i)/2
		total += h(i)
	}
	return
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Spacing returns the cell width in the given direction at index pair (i,j).
func (m *Mesh) Spacing(dir Direction, i, j int) float64 {
	if dir == DirY {
		return m.Dy[i][j]
	}
	return m.Dx[i][j]
}

// XC and YC return physical cell center coordinates, measured from the outer
// edge of the guard band, using the construction-time spacing profile.
func (m *Mesh) XC(i int) float64 { return m.xc[i] }
func (m *Mesh) YC(j int) float64 { return m.yc[j] }

// GlobalX and GlobalY return the normalised global coordinate in [0,1] of a
// cell center, the mapping handed to boundary value generators.
func (m *Mesh) GlobalX(i int) float64 { return m.xc[i] / m.xTot }
func (m *Mesh) GlobalY(j int) float64 { return m.yc[j] / m.yTot }

// Index maps (i,j,k) to the flat storage index shared by Field3D and the
// assembled boundary operator matrices.
func (m *Mesh) Index(i, j, k int) int {
	return (i*m.Ny+j)*m.Nz + k
}

// Size returns the flat storage length Nx*Ny*Nz.
func (m *Mesh) Size() int {
	return m.Nx * m.Ny * m.Nz
}

// IsInterior reports whether (i,j) lies inside the evolved region, outside
// the x and y guard bands.
func (m *Mesh) IsInterior(i, j int) bool {
	return i >= m.NGuard && i < m.Nx-m.NGuard && j >= m.NGuard && j < m.Ny-m.NGuard
}
