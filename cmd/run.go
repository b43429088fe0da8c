/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gobcs/InputParameters"
	"github.com/notargets/gobcs/model_problems"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the heat conduction model problem with configured boundary conditions",
	Long:  `Reads a YAML input file describing the mesh and the boundary conditions, then integrates the heat equation with the boundary operators enforced at every RHS evaluation`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		inputFile, err := cmd.Flags().GetString("inputFile")
		if err != nil {
			panic(err)
		}
		cpuProfile, _ := cmd.Flags().GetBool("cpuprofile")
		if cpuProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		graph, _ := cmd.Flags().GetBool("graph")
		delay, _ := cmd.Flags().GetInt("delay")
		ip := processInput(inputFile)
		ip.Print()
		c, err := model_problems.NewHeat2D(ip)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = c.Run(graph, time.Duration(delay)*time.Millisecond); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processInput(inputFile string) (ip *InputParameters.InputParametersBC) {
	if len(inputFile) == 0 {
		err := fmt.Errorf("must supply an input file (-I, --inputFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Stretched Mesh Test Case"
Nx: 32
Ny: 32
Nz: 1
NGuard: 2
GridType: stretched
Hx: 0.01
Hy: 0.01
StretchRatio: 1.05
CFL: 0.5
Kappa: 1.
FinalTime: 0.1
InitType: gaussian
BCs:
  xlow:
    Type: dirichlet
    Order: 2
    Value: "sin(y)*cos(t)"
  xhigh:
    Type: neumann
    Order: 2
  ylow:
    Type: free
    Order: 3
  yhigh:
    Type: dirichlet
    Order: 1
    Value: "1"
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Printf("error: unable to read input file %s: %s\n", inputFile, err.Error())
		os.Exit(1)
	}
	ip = &InputParameters.InputParametersBC{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error: unable to parse input file %s: %s\n", inputFile, err.Error())
		os.Exit(1)
	}
	if err = ip.Validate(); err != nil {
		fmt.Printf("error: invalid input file %s: %s\n", inputFile, err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputFile", "I", "", "YAML input file describing the mesh and boundary conditions")
	RunCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the working directory")
	RunCmd.Flags().BoolP("graph", "g", false, "display a live plot of the mid-plane temperature profile")
	RunCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
}
