package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/punctfix/cmd/punctfix/commands"
	"github.com/walteh/punctfix/cmd/punctfix/opts"
	"github.com/walteh/punctfix/pkg/config"
	"github.com/walteh/punctfix/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds flags shared by every command
type rootFlags struct {
	configFile string
	debug      bool
	verbose    bool
	jobs       int
}

// newRootCmd builds the command tree. Console output goes to stdout, logs to
// stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "punctfix",
		Short: "Find and fix full-width punctuation in documentation",
		Long: `punctfix scans text files for full-width (CJK) punctuation such as ，。：（）
and either reports where it occurs (check) or rewrites it to ASCII (fix).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			ctx := setupLogging(cmd.Context(), stderr, flags.debug)
			ctx, err := newRootOpts(ctx, cmd, flags, rootOpts, stdout)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	addRootFlags(rootCmd, flags)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(
		commands.NewCheckCmd(rootOpts),
		commands.NewFixCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// newRootOpts fills rootOpts with initialized dependencies and returns ctx
// carrying the console logger
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags, rootOpts *opts.RootOpts, stdout io.Writer) (context.Context, error) {
	// Load config; a missing default file means defaults
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.LoadOrDefault(ctx, flags.configFile, explicit)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("loaded config")

	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = flags.jobs
	}
	if jobs < 1 {
		return nil, errors.Errorf("--jobs must be at least 1, got %d", jobs)
	}

	console := log.New(stdout, *zerolog.Ctx(ctx))
	console.SetVerbose(flags.verbose)

	rootOpts.Config = cfg
	rootOpts.Jobs = jobs
	return log.NewContext(ctx, console), nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path (.yaml, .yml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "also list clean files")
	cmd.PersistentFlags().IntVarP(&flags.jobs, "jobs", "j", 1, "number of files processed in parallel")
}

// setupLogging configures zerolog based on flags and attaches it to ctx
func setupLogging(ctx context.Context, stderr io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
