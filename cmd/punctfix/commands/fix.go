package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/punctfix/cmd/punctfix/opts"
	"github.com/walteh/punctfix/pkg/log"
	"github.com/walteh/punctfix/pkg/operation"
	"github.com/walteh/punctfix/pkg/status"
	"github.com/walteh/punctfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewFixCmd creates a new fix command
func NewFixCmd(opts *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [pattern|file ...]",
		Short: "Rewrite full-width punctuation to ASCII in place",
		Long: `Fix replaces full-width (CJK) punctuation with half-width ASCII.
It will:
1. Expand the given patterns (or the configured include patterns)
2. Rewrite every file containing full-width punctuation
3. Leave files without matches untouched

With --dry-run nothing is written and the changed lines are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			files, err := resolveFiles(ctx, opts, args)
			if err != nil {
				return err
			}

			verb := "fixing"
			if dryRun {
				verb = "previewing fixes for"
			}
			console.Header(fmt.Sprintf("%s %d files", verb, len(files)))
			if len(files) == 0 {
				console.Warning("no files matched")
			}

			runner := operation.NewRunner(zerolog.Ctx(ctx), opts.Jobs)
			report, err := runner.Run(ctx, operation.NewFixOperation(operation.Options{DryRun: dryRun}), files)
			if err != nil {
				return errors.Errorf("fixing files: %w", err)
			}

			for _, r := range report.Results {
				console.LogFileResult(ctx, r)
				if dryRun && r.Status == status.StatusFixed {
					console.LogPreview(ctx, r.Path, text.LineDiff(r.Original, r.Fixed))
				}
			}
			console.LogSummary(ctx, report.Summary, true)
			if dryRun {
				console.Info("dry run, no files were written")
			}

			return report.Verdict()
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print changes without writing files")

	return cmd
}
