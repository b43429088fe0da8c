package model_problems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gobcs/InputParameters"
	"github.com/notargets/gobcs/mesh"
)

func dirichletInput(value string) *InputParameters.InputParametersBC {
	bc := InputParameters.BCParameters{Type: "dirichlet", Order: 2, Value: value}
	return &InputParameters.InputParametersBC{
		Title: "test", Nx: 8, Ny: 8, Nz: 1,
		Hx: 0.1, Hy: 0.1, Kappa: 1, CFL: 0.5, FinalTime: 0.001,
		BCs: map[string]InputParameters.BCParameters{
			"xlow": bc, "xhigh": bc, "ylow": bc, "yhigh": bc,
		},
	}
}

func TestNewHeat2D(t *testing.T) {
	ip := dirichletInput("1")
	ip.GridType = "stretched"
	ip.StretchRatio = 1.05
	ip.InitType = "gaussian"
	c, err := NewHeat2D(ip)
	assert.NoError(t, err)
	assert.Equal(t, 12, c.M.Nx) // 8 interior + 2 guards per side
	assert.Len(t, c.Ops, 4)

	tmin, tmax := c.Range()
	assert.Greater(t, tmax, tmin)
	assert.Greater(t, tmin, 0.0)
	assert.LessOrEqual(t, tmax, 1.0)
}

func TestNewHeat2DErrors(t *testing.T) {
	ip := dirichletInput("1")
	ip.InitType = "sawtooth"
	_, err := NewHeat2D(ip)
	assert.Error(t, err)

	ip = dirichletInput("1")
	ip.BCs["xlow"] = InputParameters.BCParameters{Type: "robin", Order: 1}
	_, err = NewHeat2D(ip)
	assert.Error(t, err)

	ip = dirichletInput("not a (valid expression")
	_, err = NewHeat2D(ip)
	assert.Error(t, err)

	ip = dirichletInput("1")
	ip.Nx = 0
	_, err = NewHeat2D(ip)
	assert.Error(t, err)
}

// A constant field matching constant Dirichlet values on all four sides is an
// equilibrium of the diffusion operator and must be preserved by the stepper.
func TestHeat2DConstantEquilibrium(t *testing.T) {
	c, err := NewHeat2D(dirichletInput("3"))
	assert.NoError(t, err)
	c.T.Fill(3)

	resid := mesh.NewField3D(c.M, mesh.Centered)
	tm := 0.0
	dt := 1e-4
	for step := 0; step < 5; step++ {
		assert.NoError(t, c.Step(tm, dt, resid))
		tm += dt
	}
	tmin, tmax := c.Range()
	assert.InDelta(t, 3.0, tmin, 1e-12)
	assert.InDelta(t, 3.0, tmax, 1e-12)
}

func TestHeat2DRunDecaysGaussian(t *testing.T) {
	ip := dirichletInput("0")
	ip.InitType = "gaussian"
	ip.FinalTime = 0.002
	c, err := NewHeat2D(ip)
	assert.NoError(t, err)

	_, before := c.Range()
	assert.NoError(t, c.Run(false))
	_, after := c.Range()

	// zero boundaries drain the pulse
	assert.Less(t, after, before)
	assert.GreaterOrEqual(t, after, 0.0)
}

func TestPlotDisabledIsHeadless(t *testing.T) {
	c, err := NewHeat2D(dirichletInput("1"))
	assert.NoError(t, err)
	c.Plot(false, nil)
	assert.Nil(t, c.chart)
}

func TestRegionFor(t *testing.T) {
	m, err := mesh.NewUniformMesh(4, 4, 1, 2, 1, 1)
	assert.NoError(t, err)
	for _, name := range []string{"xlow", "XHigh", "ylow", "yhigh"} {
		r, err := regionFor(name, m)
		assert.NoError(t, err)
		assert.NotNil(t, r)
	}
	_, err = regionFor("zlow", m)
	assert.Error(t, err)
}
