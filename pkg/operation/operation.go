// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/punctfix/pkg/punct"
	"github.com/walteh/punctfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrViolations is returned by Check when any file still contains
// full-width punctuation.
var ErrViolations = errors.Base("full-width punctuation found")

// 🎯 Operation processes a single file
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Process reads path and classifies it; I/O failures end up in the result
	Process(ctx context.Context, path string) status.FileResult
}

// 🔧 Options contains dependencies shared by operations
type Options struct {
	// Scanner detects and fixes punctuation; defaults to punct.DefaultScanner
	Scanner *punct.Scanner
	// Files reads and writes file content; defaults to status.NewDiskFiles
	Files status.FileManager
	// DryRun makes fix report what it would change without writing
	DryRun bool
}

func (o Options) withDefaults() Options {
	if o.Scanner == nil {
		o.Scanner = punct.DefaultScanner()
	}
	if o.Files == nil {
		o.Files = status.NewDiskFiles()
	}
	return o
}

// 🔍 checkOperation reports matches without touching files
type checkOperation struct {
	opts Options
}

// 🏭 NewCheckOperation creates the detection-mode operation
func NewCheckOperation(opts Options) Operation {
	return &checkOperation{opts: opts.withDefaults()}
}

func (c *checkOperation) Name() string { return "check" }

func (c *checkOperation) Process(ctx context.Context, path string) status.FileResult {
	content, err := c.opts.Files.ReadFile(ctx, path)
	if err != nil {
		return failed(path, errors.Errorf("reading %s: %w", path, err))
	}

	text := string(content)
	if !c.opts.Scanner.HasMatch(text) {
		return status.FileResult{Path: path, Status: status.StatusClean}
	}

	matches := c.opts.Scanner.Locate(text)
	zerolog.Ctx(ctx).Debug().Str("file", path).Int("matches", len(matches)).Msg("found full-width punctuation")

	return status.FileResult{
		Path:    path,
		Status:  status.StatusErrored,
		Matches: matches,
	}
}

// 🔧 fixOperation rewrites files in place
type fixOperation struct {
	opts Options
}

// 🏭 NewFixOperation creates the fix-mode operation
func NewFixOperation(opts Options) Operation {
	return &fixOperation{opts: opts.withDefaults()}
}

func (f *fixOperation) Name() string { return "fix" }

func (f *fixOperation) Process(ctx context.Context, path string) status.FileResult {
	content, err := f.opts.Files.ReadFile(ctx, path)
	if err != nil {
		return failed(path, errors.Errorf("reading %s: %w", path, err))
	}

	original := string(content)
	if !f.opts.Scanner.HasMatch(original) {
		return status.FileResult{Path: path, Status: status.StatusClean}
	}

	fixed, count := f.opts.Scanner.FixCount(original)

	if f.opts.DryRun {
		zerolog.Ctx(ctx).Debug().Str("file", path).Int("replacements", count).Msg("dry run, not writing")
	} else if err := f.opts.Files.WriteFileAtomic(ctx, path, []byte(fixed)); err != nil {
		return failed(path, errors.Errorf("writing %s: %w", path, err))
	}

	return status.FileResult{
		Path:         path,
		Status:       status.StatusFixed,
		Replacements: count,
		Original:     original,
		Fixed:        fixed,
	}
}

func failed(path string, err error) status.FileResult {
	return status.FileResult{Path: path, Status: status.StatusFailed, Err: err}
}
