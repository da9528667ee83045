package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/internal/workload"
)

func newGenerateCmd() *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random workload as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = cfg.Workload.Count
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			generator, err := workload.NewGenerator(seed, cfg.Workload.Ranges())
			if err != nil {
				return err
			}
			processes, err := generator.Generate(count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			// the seed line is a CSV comment so the output loads back with run --file
			fmt.Fprintf(out, "# seed %d\n", seed)
			return workload.WriteCSV(out, processes)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of processes (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default time based)")
	return cmd
}
