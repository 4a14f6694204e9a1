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
	"github.com/walteh/punctfix/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 OperationRunner executes an operation over a list of files
type OperationRunner struct {
	logger *zerolog.Logger
	jobs   int
}

// 🏗️ NewRunner creates a new runner processing up to jobs files at once
func NewRunner(logger *zerolog.Logger, jobs int) *OperationRunner {
	if jobs < 1 {
		jobs = 1
	}
	return &OperationRunner{
		logger: logger,
		jobs:   jobs,
	}
}

// 📦 Report holds per-file results in input order plus their summary
type Report struct {
	Operation string
	Results   []status.FileResult
	Summary   status.Summary
}

// Verdict turns the report into the run outcome: an error when files could
// not be processed, ErrViolations when a check found matches, nil otherwise.
// Fix runs never fail on matches.
func (r *Report) Verdict() error {
	if r.Summary.HasFailures() {
		return errors.Errorf("%d of %d files could not be processed", r.Summary.Failed, r.Summary.Files)
	}
	if r.Operation == "check" && r.Summary.HasViolations() {
		return errors.WithStack(ErrViolations)
	}
	return nil
}

// 🏃 Run processes every path. Per-file failures are recorded in the report;
// the returned error is only set when ctx is cancelled.
func (r *OperationRunner) Run(ctx context.Context, op Operation, paths []string) (*Report, error) {
	r.logger.Debug().Str("operation", op.Name()).Int("files", len(paths)).Int("jobs", r.jobs).Msg("running operation")

	var results []status.FileResult
	var err error
	if r.jobs == 1 {
		results, err = r.runSync(ctx, op, paths)
	} else {
		results, err = r.runAsync(ctx, op, paths)
	}
	if err != nil {
		return nil, err
	}

	return &Report{
		Operation: op.Name(),
		Results:   results,
		Summary:   status.Summarize(results),
	}, nil
}

// 🔄 runSync processes files one after another
func (r *OperationRunner) runSync(ctx context.Context, op Operation, paths []string) ([]status.FileResult, error) {
	results := make([]status.FileResult, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("operation cancelled: %w", err)
		}
		results[i] = op.Process(ctx, path)
	}
	return results, nil
}

// ⚡ runAsync processes files concurrently; each result lands at its input index
func (r *OperationRunner) runAsync(ctx context.Context, op Operation, paths []string) ([]status.FileResult, error) {
	results := make([]status.FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = op.Process(gctx, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("operation cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("operation cancelled: %w", err)
	}
	return results, nil
}
