package model_problems

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/sirupsen/logrus"

	"github.com/notargets/gobcs/InputParameters"
	"github.com/notargets/gobcs/boundary"
	"github.com/notargets/gobcs/fieldgen"
	"github.com/notargets/gobcs/mesh"
)

// Carpenter/Kennedy low storage five stage RK4
var (
	rk4a = []float64{
		0,
		-567301805773.0 / 1357537059087.0,
		-2404267990393.0 / 2016746695238.0,
		-3550918686646.0 / 2091501179385.0,
		-1275806237668.0 / 842570457699.0,
	}
	rk4b = []float64{
		1432997174477.0 / 9575080441755.0,
		5161836677717.0 / 13612068292357.0,
		1720146321549.0 / 2090206949498.0,
		3134564353537.0 / 4481467310338.0,
		2277821191437.0 / 14882151754819.0,
	}
	rk4c = []float64{
		0,
		1432997174477.0 / 9575080441755.0,
		2526269341429.0 / 6820363962896.0,
		2006345519317.0 / 3224310063776.0,
		2802321613138.0 / 2924317926251.0,
	}
)

// Heat2D integrates dT/dt = Kappa * Laplacian(T) on a non-uniform mesh, with
// the boundary operators enforced at every RHS evaluation — the usage pattern
// the boundary package is built for.
type Heat2D struct {
	Kappa, CFL, FinalTime float64
	M                     *mesh.Mesh
	T                     *mesh.Field3D
	Ops                   []*boundary.Op
	chart                 *chart2d.Chart2D
	colorMap              *utils2.ColorMap
	plotOnce              sync.Once
}

func regionFor(name string, m *mesh.Mesh) (*mesh.BoundaryRegion, error) {
	switch strings.ToLower(name) {
	case "xlow":
		return mesh.NewBoundaryXLow(m), nil
	case "xhigh":
		return mesh.NewBoundaryXHigh(m), nil
	case "ylow":
		return mesh.NewBoundaryYLow(m), nil
	case "yhigh":
		return mesh.NewBoundaryYHigh(m), nil
	default:
		return nil, fmt.Errorf("model_problems: unknown boundary region %q", name)
	}
}

func NewHeat2D(ip *InputParameters.InputParametersBC) (*Heat2D, error) {
	if err := ip.Validate(); err != nil {
		return nil, err
	}
	var (
		m   *mesh.Mesh
		err error
	)
	if ip.GridType == "stretched" {
		m, err = mesh.NewStretchedMesh(ip.Nx, ip.Ny, ip.Nz, ip.NGuard, ip.Hx, ip.Hy, ip.StretchRatio)
	} else {
		m, err = mesh.NewUniformMesh(ip.Nx, ip.Ny, ip.Nz, ip.NGuard, ip.Hx, ip.Hy)
	}
	if err != nil {
		return nil, err
	}
	c := &Heat2D{
		Kappa:     ip.Kappa,
		CFL:       ip.CFL,
		FinalTime: ip.FinalTime,
		M:         m,
		T:         mesh.NewField3D(m, mesh.Centered),
	}
	switch strings.ToLower(ip.InitType) {
	case "", "zero":
	case "gaussian":
		xm := m.XC(m.Nx / 2)
		ym := m.YC(m.Ny / 2)
		w := 0.1 * (m.XC(m.Nx-1) + m.YC(m.Ny-1))
		c.T.SetFunc(func(x, y, z float64) float64 {
			r2 := (x-xm)*(x-xm) + (y-ym)*(y-ym)
			return math.Exp(-r2 / (w * w))
		})
	default:
		return nil, fmt.Errorf("model_problems: unknown InitType %q", ip.InitType)
	}
	for name, bc := range ip.BCs {
		region, err := regionFor(name, m)
		if err != nil {
			return nil, err
		}
		cond, err := boundary.ParseCondition(bc.Type)
		if err != nil {
			return nil, err
		}
		var gen fieldgen.FieldGenerator
		if bc.Value != "" {
			if gen, err = fieldgen.Parse(bc.Value); err != nil {
				return nil, err
			}
		}
		op, err := boundary.New(cond, bc.Order, region, gen)
		if err != nil {
			return nil, err
		}
		c.Ops = append(c.Ops, op)
	}
	return c, nil
}

// RHS enforces every boundary condition on T at time t, then evaluates the
// diffusion operator on the interior. Guard entries of the result are zero.
func (c *Heat2D) RHS(T *mesh.Field3D, t float64) (*mesh.Field3D, error) {
	for _, op := range c.Ops {
		if err := op.Apply(T, t); err != nil {
			return nil, err
		}
	}
	var (
		m = c.M
		R = mesh.NewField3D(m, mesh.Centered)
	)
	for i := m.NGuard; i < m.Nx-m.NGuard; i++ {
		for j := m.NGuard; j < m.Ny-m.NGuard; j++ {
			// center-to-center distances on the non-uniform grid
			dxm := (m.Dx[i-1][j] + m.Dx[i][j]) / 2
			dxp := (m.Dx[i][j] + m.Dx[i+1][j]) / 2
			dym := (m.Dy[i][j-1] + m.Dy[i][j]) / 2
			dyp := (m.Dy[i][j] + m.Dy[i][j+1]) / 2
			for k := 0; k < m.Nz; k++ {
				tc := T.At(i, j, k)
				d2x := ((T.At(i+1, j, k)-tc)/dxp - (tc-T.At(i-1, j, k))/dxm) / m.Dx[i][j]
				d2y := ((T.At(i, j+1, k)-tc)/dyp - (tc-T.At(i, j-1, k))/dym) / m.Dy[i][j]
				R.Set(i, j, k, c.Kappa*(d2x+d2y))
			}
		}
	}
	return R, nil
}

// Step advances T by one RK4 step of size dt starting at time t, using resid
// as the low-storage registers.
func (c *Heat2D) Step(t, dt float64, resid *mesh.Field3D) error {
	for s := 0; s < 5; s++ {
		rhs, err := c.RHS(c.T, t+rk4c[s]*dt)
		if err != nil {
			return err
		}
		var (
			rd = resid.Data()
			dd = rhs.Data()
			td = c.T.Data()
		)
		for i := range rd {
			rd[i] = rk4a[s]*rd[i] + dt*dd[i]
			td[i] += rk4b[s] * rd[i]
		}
	}
	return nil
}

// Plot streams the mid-y temperature profile to a live chart.
func (c *Heat2D) Plot(showGraph bool, graphDelay []time.Duration) {
	if !showGraph {
		return
	}
	var (
		m    = c.M
		jmid = m.Ny / 2
		n    = m.Nx - 2*m.NGuard
	)
	c.plotOnce.Do(func() {
		_, tmax := c.Range()
		if tmax <= 0 {
			tmax = 1
		}
		c.chart = chart2d.NewChart2D(1280, 1024,
			float32(m.XC(m.NGuard)), float32(m.XC(m.Nx-m.NGuard-1)), 0, float32(tmax))
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = m.XC(i + m.NGuard)
		y[i] = c.T.At(i+m.NGuard, jmid, 0)
	}
	if err := c.chart.AddSeries("T", x, y,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

// Run integrates to FinalTime with a diffusion-stable step.
func (c *Heat2D) Run(showGraph bool, graphDelay ...time.Duration) error {
	var (
		m            = c.M
		hmin         = math.Inf(1)
		logFrequency = 50
	)
	for i := m.NGuard; i < m.Nx-m.NGuard; i++ {
		for j := m.NGuard; j < m.Ny-m.NGuard; j++ {
			hmin = math.Min(hmin, math.Min(m.Dx[i][j], m.Dy[i][j]))
		}
	}
	dt := c.CFL * hmin * hmin / (4 * c.Kappa)
	Ns := math.Ceil(c.FinalTime / dt)
	dt = c.FinalTime / Ns
	Nsteps := int(Ns)
	logrus.WithFields(logrus.Fields{
		"dt": dt, "steps": Nsteps, "kappa": c.Kappa,
	}).Info("starting heat conduction run")

	resid := mesh.NewField3D(m, mesh.Centered)
	var t float64
	for tstep := 0; tstep < Nsteps; tstep++ {
		c.Plot(showGraph, graphDelay)
		if err := c.Step(t, dt, resid); err != nil {
			return err
		}
		t += dt
		if tstep%logFrequency == 0 {
			tmin, tmax := c.Range()
			logrus.WithFields(logrus.Fields{
				"time": t, "step": tstep, "Tmin": tmin, "Tmax": tmax,
			}).Info("step")
		}
	}
	// leave the guard band consistent with the final interior state
	for _, op := range c.Ops {
		if err := op.Apply(c.T, t); err != nil {
			return err
		}
	}
	tmin, tmax := c.Range()
	logrus.WithFields(logrus.Fields{"time": t, "Tmin": tmin, "Tmax": tmax}).Info("done")
	return nil
}

// Range returns the interior min and max of T.
func (c *Heat2D) Range() (tmin, tmax float64) {
	m := c.M
	tmin, tmax = math.Inf(1), math.Inf(-1)
	for i := m.NGuard; i < m.Nx-m.NGuard; i++ {
		for j := m.NGuard; j < m.Ny-m.NGuard; j++ {
			for k := 0; k < m.Nz; k++ {
				v := c.T.At(i, j, k)
				tmin = math.Min(tmin, v)
				tmax = math.Max(tmax, v)
			}
		}
	}
	return
}
