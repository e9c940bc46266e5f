// Command fractal prints fractal area sequences and their total areas.
//
// Usage:
//
//	fractal sequence --shape square --dims 1 --initial 4 --iterations 5
//	fractal sum --config fractal.yaml --precision 19
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
