package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/erraggy/openapi-snapshot/config"
	"github.com/erraggy/openapi-snapshot/output"
	"github.com/erraggy/openapi-snapshot/watch"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the endpoint and refresh the snapshot on an interval.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts, true)
			if err != nil {
				return err
			}
			return runWatch(cmd, cfg, opts.Verbose)
		},
	}

	cmd.Flags().Int64Var(&opts.Watch.IntervalMS, "interval-ms", config.DefaultInterval.Milliseconds(), "Poll interval in milliseconds")
	cmd.Flags().BoolVar(&opts.Watch.NoOutline, "no-outline", false, "Skip the default outline snapshot ("+config.DefaultOutlineOut+")")

	return cmd
}

func runWatch(cmd *cobra.Command, cfg *config.Config, verbose bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cmd, verbose)
	builder := output.NewBuilder()
	builder.Logger = logger
	builder.Fetcher.Logger = logger

	loop := &watch.Loop{
		Builder: builder,
		Writer:  &output.Writer{Stdout: cmd.OutOrStdout()},
		Prompt:  cmd.ErrOrStderr(),
		Logger:  logger,
	}
	return loop.Run(ctx, cfg)
}
