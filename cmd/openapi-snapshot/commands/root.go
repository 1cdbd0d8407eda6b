// Package commands wires the cobra command tree for openapi-snapshot.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	openapisnapshot "github.com/erraggy/openapi-snapshot"
	"github.com/erraggy/openapi-snapshot/config"
	"github.com/erraggy/openapi-snapshot/output"
)

// rootOptions holds the raw flag values for the whole command tree.
// Resolution against the config file and the built-in defaults happens in
// resolveConfig, not here.
type rootOptions struct {
	URL        string
	Out        string
	OutlineOut string
	Reduce     string
	Profile    string
	Minify     bool
	TimeoutMS  int64
	Headers    []string
	Stdout     bool
	ConfigPath string
	Verbose    bool

	Watch watchOptions
}

// watchOptions holds the watch-only flag values.
type watchOptions struct {
	IntervalMS int64
	NoOutline  bool
}

// NewRootCmd builds the openapi-snapshot command tree. The root command runs
// a one-shot snapshot; watch is the polling subcommand.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "openapi-snapshot",
		Short: "Fetch and save an OpenAPI JSON snapshot.",
		Example: `  openapi-snapshot
  openapi-snapshot watch
  openapi-snapshot --out openapi/backend_openapi.json --outline-out openapi/backend_openapi.outline.json
  openapi-snapshot --profile outline --out openapi/backend_openapi.outline.json
  openapi-snapshot --url http://localhost:3000/api-docs/openapi.json --out openapi/backend_openapi.json
  openapi-snapshot --minify --out openapi/backend_openapi.min.json`,
		Version:       openapisnapshot.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts, false)
			if err != nil {
				return err
			}
			return runSnapshot(cmd, cfg, opts.Verbose)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&opts.URL, "url", config.DefaultURL, "OpenAPI endpoint URL")
	flags.StringVar(&opts.Out, "out", config.DefaultOut, "Output file path")
	flags.StringVar(&opts.OutlineOut, "outline-out", "", "Outline output path (full profile only)")
	flags.StringVar(&opts.Reduce, "reduce", "", "Comma-separated top-level keys to keep (paths, components)")
	flags.StringVar(&opts.Profile, "profile", string(config.ProfileFull), "Output profile: full or outline")
	flags.BoolVar(&opts.Minify, "minify", false, "Write compact JSON instead of two-space indented")
	flags.Int64Var(&opts.TimeoutMS, "timeout-ms", config.DefaultTimeout.Milliseconds(), "Per-request timeout in milliseconds")
	flags.StringArrayVar(&opts.Headers, "header", nil, `Extra request header as "Name: value" (repeatable)`)
	flags.BoolVar(&opts.Stdout, "stdout", false, "Print the primary payload to stdout instead of writing files")
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML config file (default "+config.DefaultFileName+" if present)")
	flags.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging to stderr")

	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newVersionCmd())

	return root, opts
}

func runSnapshot(cmd *cobra.Command, cfg *config.Config, verbose bool) error {
	builder := output.NewBuilder()
	builder.Logger = newLogger(cmd, verbose)
	builder.Fetcher.Logger = builder.Logger

	payloads, err := builder.Build(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	writer := &output.Writer{Stdout: cmd.OutOrStdout()}
	return writer.WritePayloads(cfg, payloads)
}

// newLogger builds the CLI logger: slog text output on the command's error
// stream, debug level when --verbose is set.
func newLogger(cmd *cobra.Command, verbose bool) openapisnapshot.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return openapisnapshot.NewSlogAdapter(slog.New(handler))
}
