package commands

import (
	"context"

	"github.com/walteh/punctfix/cmd/punctfix/opts"
	"github.com/walteh/punctfix/pkg/discover"
	"gitlab.com/tozd/go/errors"
)

// resolveFiles expands positional arguments, or the configured include
// patterns when there are none. Arguments are relative to the working
// directory; configured patterns are relative to the config root. Excludes
// always apply against the config root.
func resolveFiles(ctx context.Context, o *opts.RootOpts, args []string) ([]string, error) {
	discoverOpts := discover.Options{
		Root:        o.Config.Root,
		Include:     o.Config.Include,
		Exclude:     o.Config.Exclude,
		ExcludeRoot: o.Config.Root,
	}
	if len(args) > 0 {
		discoverOpts.Root = "."
		discoverOpts.Include = args
	}

	files, err := discover.Files(ctx, discoverOpts)
	if err != nil {
		return nil, errors.Errorf("finding files: %w", err)
	}
	return files, nil
}
