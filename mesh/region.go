package mesh

import "fmt"

// BoundaryRegion is a 1-D run of innermost-guard-cell coordinates sharing one
// outward normal (Bx,By), with Bx*By == 0 and |Bx|+|By| == 1, plus a cursor
// for sweeping the run. The run excludes the corner guard blocks, so regions
// on adjacent sides have disjoint write sets.
type BoundaryRegion struct {
	Bx, By int
	Width  int
	Label  string

	m      *Mesh
	xs, ys []int
	cur    int
}

// NewBoundaryXLow returns the low-x boundary region: outward normal (-1,0),
// innermost guard line at i = NGuard-1, j sweeping the interior.
func NewBoundaryXLow(m *Mesh) *BoundaryRegion {
	r := &BoundaryRegion{Bx: -1, By: 0, Width: m.NGuard, Label: "xlow", m: m}
	for j := m.NGuard; j < m.Ny-m.NGuard; j++ {
		r.xs = append(r.xs, m.NGuard-1)
		r.ys = append(r.ys, j)
	}
	return r
}

// NewBoundaryXHigh returns the high-x boundary region: outward normal (1,0),
// innermost guard line at i = Nx-NGuard.
func NewBoundaryXHigh(m *Mesh) *BoundaryRegion {
	r := &BoundaryRegion{Bx: 1, By: 0, Width: m.NGuard, Label: "xhigh", m: m}
	for j := m.NGuard; j < m.Ny-m.NGuard; j++ {
		r.xs = append(r.xs, m.Nx-m.NGuard)
		r.ys = append(r.ys, j)
	}
	return r
}

// NewBoundaryYLow returns the low-y boundary region: outward normal (0,-1).
func NewBoundaryYLow(m *Mesh) *BoundaryRegion {
	r := &BoundaryRegion{Bx: 0, By: -1, Width: m.NGuard, Label: "ylow", m: m}
	for i := m.NGuard; i < m.Nx-m.NGuard; i++ {
		r.xs = append(r.xs, i)
		r.ys = append(r.ys, m.NGuard-1)
	}
	return r
}

// NewBoundaryYHigh returns the high-y boundary region: outward normal (0,1).
func NewBoundaryYHigh(m *Mesh) *BoundaryRegion {
	r := &BoundaryRegion{Bx: 0, By: 1, Width: m.NGuard, Label: "yhigh", m: m}
	for i := m.NGuard; i < m.Nx-m.NGuard; i++ {
		r.xs = append(r.xs, i)
		r.ys = append(r.ys, m.Ny-m.NGuard)
	}
	return r
}

// NewBoundarySubRegion builds a region over an explicit run of innermost
// guard coordinates, for replicating a condition over part of a side. An
// empty run is legal and applies as a no-op.
func NewBoundarySubRegion(m *Mesh, label string, bx, by, width int, xs, ys []int) (*BoundaryRegion, error) {
	if bx*by != 0 || bx+by == 0 || bx < -1 || bx > 1 || by < -1 || by > 1 {
		return nil, fmt.Errorf("mesh: (%d,%d) is not a unit outward normal", bx, by)
	}
	if width < 1 || width > m.NGuard {
		return nil, fmt.Errorf("mesh: region width %d outside guard band of %d", width, m.NGuard)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("mesh: run coordinate lengths differ: %d vs %d", len(xs), len(ys))
	}
	return &BoundaryRegion{Bx: bx, By: by, Width: width, Label: label, m: m, xs: xs, ys: ys}, nil
}

func (r *BoundaryRegion) Mesh() *Mesh { return r.m }

// Len returns the number of positions in the run. Zero-length runs are legal.
func (r *BoundaryRegion) Len() int { return len(r.xs) }

// First resets the cursor to the start of the run.
func (r *BoundaryRegion) First() { r.cur = 0 }

// IsDone reports whether the cursor has passed the end of the run.
func (r *BoundaryRegion) IsDone() bool { return r.cur >= len(r.xs) }

// Next1D advances the cursor one position along the run.
func (r *BoundaryRegion) Next1D() { r.cur++ }

// X and Y return the current innermost-guard coordinate.
func (r *BoundaryRegion) X() int { return r.xs[r.cur] }
func (r *BoundaryRegion) Y() int { return r.ys[r.cur] }
