package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/punctfix/cmd/punctfix/opts"
	"github.com/walteh/punctfix/pkg/log"
	"github.com/walteh/punctfix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [pattern|file ...]",
		Short: "Report full-width punctuation without changing files",
		Long: `Check scans files for full-width (CJK) punctuation.
It will:
1. Expand the given patterns (or the configured include patterns)
2. Print path:line:column for every full-width punctuation mark
3. Exit non-zero if anything was found, after all files are scanned`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			files, err := resolveFiles(ctx, opts, args)
			if err != nil {
				return err
			}

			console.Header(fmt.Sprintf("checking %d files", len(files)))
			if len(files) == 0 {
				console.Warning("no files matched")
			}

			runner := operation.NewRunner(zerolog.Ctx(ctx), opts.Jobs)
			report, err := runner.Run(ctx, operation.NewCheckOperation(operation.Options{}), files)
			if err != nil {
				return errors.Errorf("checking files: %w", err)
			}

			for _, r := range report.Results {
				console.LogFileResult(ctx, r)
			}
			console.LogSummary(ctx, report.Summary, false)

			return report.Verdict()
		},
	}

	return cmd
}
