package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vinhtrinh326/cpusched/internal/api"
)

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling policies over an HTTP JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg.Quantum))
			return api.Serve(ctx, app, cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", ":9095", "Listen address")
	cmd.Flags().Int64Var(&opts.quantum, "quantum", 2, "Default round-robin quantum for requests that omit it")
	return cmd
}
