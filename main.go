package main

import "github.com/notargets/gobcs/cmd"

func main() {
	cmd.Execute()
}
