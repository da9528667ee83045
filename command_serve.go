package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/api"
	"cpu-scheduler-simulator/config"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			var cfg *config.SchedulerConfig
			if path == "" {
				cfg = config.GetSchedulerConfig()
			} else if cfg, err = config.LoadSchedulerConfig(path); err != nil {
				return err
			}

			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Listen(fmt.Sprintf(":%d", cfg.Port))
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				log.Println("shutting down")
				return app.Shutdown()
			}
		},
	}
	return cmd
}
