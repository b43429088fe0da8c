package mesh

import "math"

// Location tags where a field's samples sit relative to the cell. XLow and
// YLow fields are staggered half a cell toward the low side along that axis.
type Location int

const (
	Centered Location = iota
	XLow
	YLow
)

func (l Location) String() string {
	switch l {
	case XLow:
		return "xlow"
	case YLow:
		return "ylow"
	default:
		return "centered"
	}
}

// Field3D is a scalar sample array over a Mesh. The sample location is fixed
// at creation; the data layout matches Mesh.Index.
type Field3D struct {
	m    *Mesh
	loc  Location
	data []float64
}

func NewField3D(m *Mesh, loc Location) *Field3D {
	return &Field3D{
		m:    m,
		loc:  loc,
		data: make([]float64, m.Size()),
	}
}

func (f *Field3D) Mesh() *Mesh        { return f.m }
func (f *Field3D) Location() Location { return f.loc }

func (f *Field3D) At(i, j, k int) float64 {
	return f.data[f.m.Index(i, j, k)]
}

func (f *Field3D) Set(i, j, k int, v float64) {
	f.data[f.m.Index(i, j, k)] = v
}

// Data exposes the flat sample storage, in Mesh.Index order.
func (f *Field3D) Data() []float64 { return f.data }

func (f *Field3D) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

func (f *Field3D) Copy() *Field3D {
	r := NewField3D(f.m, f.loc)
	copy(r.data, f.data)
	return r
}

// SampleX returns the physical x coordinate of this field's sample in cell
// (i,j): the cell center, shifted to the low face for XLow fields.
func (f *Field3D) SampleX(i, j int) float64 {
	if f.loc == XLow {
		return f.m.XC(i) - f.m.Dx[i][j]/2
	}
	return f.m.XC(i)
}

// SampleY is the y counterpart of SampleX.
func (f *Field3D) SampleY(i, j int) float64 {
	if f.loc == YLow {
		return f.m.YC(j) - f.m.Dy[i][j]/2
	}
	return f.m.YC(j)
}

// SetFunc fills the field with fn evaluated at each sample's physical x,y and
// the 2*pi-normalised z angle, everywhere including guard cells.
func (f *Field3D) SetFunc(fn func(x, y, z float64) float64) {
	zfac := 2 * math.Pi / float64(f.m.Nz)
	for i := 0; i < f.m.Nx; i++ {
		for j := 0; j < f.m.Ny; j++ {
			x := f.SampleX(i, j)
			y := f.SampleY(i, j)
			for k := 0; k < f.m.Nz; k++ {
				f.Set(i, j, k, fn(x, y, zfac*float64(k)))
			}
		}
	}
}
