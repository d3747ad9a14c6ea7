// Command dftbench benchmarks and cross-checks the batched DFT strategies.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
