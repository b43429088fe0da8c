package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

// BCParameters describes one boundary condition in the YAML input file.
type BCParameters struct {
	Type  string `yaml:"Type"`  // dirichlet, neumann or free
	Order int    `yaml:"Order"` // order of accuracy, >= 1
	Value string `yaml:"Value"` // generator expression in x,y,z,t; empty means 0
}

// Parameters obtained from the YAML input file
type InputParametersBC struct {
	Title        string                  `yaml:"Title"`
	Nx           int                     `yaml:"Nx"`
	Ny           int                     `yaml:"Ny"`
	Nz           int                     `yaml:"Nz"`
	NGuard       int                     `yaml:"NGuard"`
	GridType     string                  `yaml:"GridType"` // uniform or stretched
	Hx           float64                 `yaml:"Hx"`
	Hy           float64                 `yaml:"Hy"`
	StretchRatio float64                 `yaml:"StretchRatio"`
	CFL          float64                 `yaml:"CFL"`
	Kappa        float64                 `yaml:"Kappa"`
	FinalTime    float64                 `yaml:"FinalTime"`
	InitType     string                  `yaml:"InitType"` // gaussian or zero
	BCs          map[string]BCParameters `yaml:"BCs"`      // keyed by region: xlow, xhigh, ylow, yhigh
}

func (ip *InputParametersBC) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersBC) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d x %d]\t\t= Mesh extents\n", ip.Nx, ip.Ny, ip.Nz)
	fmt.Printf("[%d]\t\t\t\t= Guard cells\n", ip.NGuard)
	fmt.Printf("[%s]\t\t\t= Grid Type\n", ip.GridType)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Kappa\n", ip.Kappa)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}

var regionNames = map[string]bool{"xlow": true, "xhigh": true, "ylow": true, "yhigh": true}

// Validate fills defaults and rejects inputs the solver cannot build.
func (ip *InputParametersBC) Validate() error {
	if ip.Nx < 1 || ip.Ny < 1 || ip.Nz < 1 {
		return fmt.Errorf("mesh extents must be positive, got %d x %d x %d", ip.Nx, ip.Ny, ip.Nz)
	}
	if ip.NGuard == 0 {
		ip.NGuard = 2
	}
	if ip.Hx <= 0 || ip.Hy <= 0 {
		return fmt.Errorf("spacings must be positive, got Hx=%g Hy=%g", ip.Hx, ip.Hy)
	}
	switch strings.ToLower(ip.GridType) {
	case "", "uniform":
		ip.GridType = "uniform"
	case "stretched":
		if ip.StretchRatio <= 0 {
			return fmt.Errorf("stretched grid needs a positive StretchRatio, got %g", ip.StretchRatio)
		}
	default:
		return fmt.Errorf("unknown GridType %q", ip.GridType)
	}
	if ip.CFL <= 0 {
		ip.CFL = 0.5
	}
	if ip.Kappa <= 0 {
		ip.Kappa = 1
	}
	for name, bc := range ip.BCs {
		if !regionNames[strings.ToLower(name)] {
			return fmt.Errorf("unknown boundary region %q", name)
		}
		if bc.Order < 1 {
			return fmt.Errorf("BCs[%s]: order must be >= 1, got %d", name, bc.Order)
		}
	}
	return nil
}
