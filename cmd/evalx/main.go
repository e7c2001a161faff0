// Command evalx is the CLI front end for the go-evalx expression engine.
package main

import (
	"os"

	"github.com/cwbudde/go-evalx/cmd/evalx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
