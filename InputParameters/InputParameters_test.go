package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var exampleYAML = []byte(`
Title: Heated plate
Nx: 32
Ny: 32
Nz: 1
NGuard: 2
GridType: stretched
Hx: 0.01
Hy: 0.01
StretchRatio: 1.05
CFL: 0.4
Kappa: 2.5
FinalTime: 0.1
InitType: gaussian
BCs:
  xlow:
    Type: dirichlet
    Order: 2
    Value: "1 + sin(y)"
  xhigh:
    Type: neumann
    Order: 2
    Value: "0"
  ylow:
    Type: free
    Order: 3
  yhigh:
    Type: dirichlet
    Order: 1
`)

func TestParse(t *testing.T) {
	var ip InputParametersBC
	assert.NoError(t, ip.Parse(exampleYAML))
	assert.Equal(t, "Heated plate", ip.Title)
	assert.Equal(t, 32, ip.Nx)
	assert.Equal(t, 2, ip.NGuard)
	assert.Equal(t, "stretched", ip.GridType)
	assert.Equal(t, 1.05, ip.StretchRatio)
	assert.Equal(t, 2.5, ip.Kappa)
	assert.Len(t, ip.BCs, 4)
	assert.Equal(t, "dirichlet", ip.BCs["xlow"].Type)
	assert.Equal(t, 2, ip.BCs["xlow"].Order)
	assert.Equal(t, "1 + sin(y)", ip.BCs["xlow"].Value)
	assert.Equal(t, "free", ip.BCs["ylow"].Type)
	assert.Empty(t, ip.BCs["ylow"].Value)
}

func TestParseRejectsGarbage(t *testing.T) {
	var ip InputParametersBC
	assert.Error(t, ip.Parse([]byte("Nx: [not, an, int]")))
}

func TestValidateDefaults(t *testing.T) {
	ip := InputParametersBC{Nx: 8, Ny: 8, Nz: 1, Hx: 1, Hy: 1}
	assert.NoError(t, ip.Validate())
	assert.Equal(t, 2, ip.NGuard)
	assert.Equal(t, "uniform", ip.GridType)
	assert.Equal(t, 0.5, ip.CFL)
	assert.Equal(t, 1.0, ip.Kappa)
}

func TestValidateErrors(t *testing.T) {
	base := func() InputParametersBC {
		return InputParametersBC{Nx: 8, Ny: 8, Nz: 1, Hx: 1, Hy: 1}
	}

	ip := base()
	ip.Nx = 0
	assert.Error(t, ip.Validate())

	ip = base()
	ip.Hy = -1
	assert.Error(t, ip.Validate())

	ip = base()
	ip.GridType = "chebyshev"
	assert.Error(t, ip.Validate())

	ip = base()
	ip.GridType = "stretched"
	assert.Error(t, ip.Validate()) // missing StretchRatio

	ip = base()
	ip.BCs = map[string]BCParameters{"zlow": {Type: "dirichlet", Order: 1}}
	assert.Error(t, ip.Validate())

	ip = base()
	ip.BCs = map[string]BCParameters{"xlow": {Type: "dirichlet", Order: 0}}
	assert.Error(t, ip.Validate())
}
