package main

import (
	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/config"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scheduler",
		Short:         "CPU scheduling simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (default ./config.yaml)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

func loadConfig(cmd *cobra.Command) (*config.SchedulerConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.LoadSchedulerConfig(path)
}
