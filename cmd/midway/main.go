// Command midway finds shortest paths with meet-in-the-middle search on
// grids and Rubik's cubes.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
