package main

import (
	"fmt"

	"github.com/spf13/cobra"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/cpu"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print CPU features, default workers and bundled fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			features := cpu.DetectFeatures()

			fmt.Fprintf(w, "cpu:       %s\n", features)
			fmt.Fprintf(w, "cpus:      %d (GOMAXPROCS %d)\n", features.NumCPU, features.MaxProcs)
			fmt.Fprintf(w, "workers:   %d\n", cpu.DefaultWorkers())

			for _, name := range algodft.FieldNames() {
				info, err := algodft.LookupField(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(w, "field:     %-10s two-adicity=%-3d p=%s\n", info.Name, info.TwoAdicity, info.Modulus)
			}

			return nil
		},
	}
}
