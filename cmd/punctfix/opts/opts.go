package opts

import (
	"github.com/walteh/punctfix/pkg/config"
)

// RootOpts contains shared options used by all commands. It is filled in by
// the root command's pre-run hook, after flags are parsed. The console logger
// travels on the command context (see log.FromContext).
type RootOpts struct {
	Config *config.Config
	Jobs   int
}
