package operation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/punctfix/pkg/status"
)

func testRunner(t *testing.T, jobs int) *OperationRunner {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return NewRunner(&logger, jobs)
}

func makeFiles(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		content := "clean line.\n"
		if i%3 == 0 {
			content = fmt.Sprintf("第%d行，有问题。\n", i)
		}
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("f%02d.md", i), content))
	}
	return paths
}

func TestRunner_Check(t *testing.T) {
	for _, jobs := range []int{1, 4} {
		t.Run(fmt.Sprintf("jobs_%d", jobs), func(t *testing.T) {
			paths := makeFiles(t, 10)

			report, err := testRunner(t, jobs).Run(context.Background(), NewCheckOperation(Options{}), paths)
			require.NoError(t, err)

			require.Len(t, report.Results, len(paths))
			for i, r := range report.Results {
				assert.Equal(t, paths[i], r.Path, "results keep input order")
				if i%3 == 0 {
					assert.Equal(t, status.StatusErrored, r.Status)
					assert.Len(t, r.Matches, 2)
				} else {
					assert.Equal(t, status.StatusClean, r.Status)
				}
			}

			assert.Equal(t, status.Summary{Files: 10, Clean: 6, Errored: 4, Matches: 8}, report.Summary)

			err = report.Verdict()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrViolations))
		})
	}
}

func TestRunner_Fix(t *testing.T) {
	for _, jobs := range []int{1, 3} {
		t.Run(fmt.Sprintf("jobs_%d", jobs), func(t *testing.T) {
			paths := makeFiles(t, 7)
			runner := testRunner(t, jobs)

			report, err := runner.Run(context.Background(), NewFixOperation(Options{}), paths)
			require.NoError(t, err)
			assert.Equal(t, status.Summary{Files: 7, Clean: 4, Fixed: 3, Replacements: 6}, report.Summary)
			require.NoError(t, report.Verdict(), "fix never fails on matches")

			// a second check pass is clean
			report, err = runner.Run(context.Background(), NewCheckOperation(Options{}), paths)
			require.NoError(t, err)
			assert.Equal(t, 7, report.Summary.Clean)
			require.NoError(t, report.Verdict())

			got, err := os.ReadFile(paths[0])
			require.NoError(t, err)
			assert.Equal(t, "第0行,有问题.\n", string(got))
		})
	}
}

func TestRunner_FailuresContinue(t *testing.T) {
	paths := makeFiles(t, 3)
	paths = append([]string{filepath.Join(t.TempDir(), "missing.md")}, paths...)

	report, err := testRunner(t, 2).Run(context.Background(), NewCheckOperation(Options{}), paths)
	require.NoError(t, err)

	assert.Equal(t, status.StatusFailed, report.Results[0].Status)
	assert.Equal(t, status.StatusErrored, report.Results[1].Status)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 1, report.Summary.Errored)

	err = report.Verdict()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 files could not be processed")
}

func TestRunner_Empty(t *testing.T) {
	report, err := testRunner(t, 1).Run(context.Background(), NewCheckOperation(Options{}), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.Equal(t, status.Summary{}, report.Summary)
	require.NoError(t, report.Verdict())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, jobs := range []int{1, 2} {
		_, err := testRunner(t, jobs).Run(ctx, NewCheckOperation(Options{}), makeFiles(t, 3))
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	}
}

func TestNewRunner_ClampsJobs(t *testing.T) {
	assert.Equal(t, 1, testRunner(t, 0).jobs)
	assert.Equal(t, 1, testRunner(t, -3).jobs)
	assert.Equal(t, 8, testRunner(t, 8).jobs)
}
