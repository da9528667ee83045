package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/schedulers"
	"cpu-scheduler-simulator/internal/workload"
)

type runOptions struct {
	policy  string
	file    string
	count   int
	seed    int64
	quantum int
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule a workload and print the Gantt chart and statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			inputs, err := loadInputs(cmd, cfg, opts)
			if err != nil {
				return err
			}

			quantum := opts.quantum
			if !cmd.Flags().Changed("quantum") {
				quantum = cfg.RoundRobinTimeQuantum
			}
			params := schedulers.Params{TimeQuantum: quantum}

			var results []schedulers.ScheduleResult
			if strings.EqualFold(opts.policy, "all") {
				results, err = schedulers.ScheduleAll(inputs, params)
			} else {
				var result schedulers.ScheduleResult
				result, err = schedulers.Schedule(opts.policy, inputs, params)
				results = append(results, result)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Run", uuid.NewString())
			for _, result := range results {
				printResult(out, result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.policy, "policy", "p", "all", "FCFS, SJF, Priority, RoundRobin or all")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "CSV workload file (id,arrival,burst[,priority])")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of random processes (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default time based)")
	cmd.Flags().IntVarP(&opts.quantum, "quantum", "q", 0, "round robin time quantum (default from config)")
	return cmd
}

func loadInputs(cmd *cobra.Command, cfg *config.SchedulerConfig, opts runOptions) ([]core.ProcessInput, error) {
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, fmt.Errorf("opening scheduling file: %w", err)
		}
		defer f.Close()
		return workload.LoadCSV(f)
	}

	count := opts.count
	if !cmd.Flags().Changed("count") {
		count = cfg.Workload.Count
	}
	var seed *int64
	if cmd.Flags().Changed("seed") {
		seed = &opts.seed
	}
	return workload.GenerateWorkload(count, seed, cfg.Workload.Ranges())
}
