// gocube-sim - terminal simulator for a virtual 3x3x3 cube.
package main

import (
	"github.com/SeamusWaldron/gocube_sim/internal/cli"
)

func main() {
	cli.Execute()
}
