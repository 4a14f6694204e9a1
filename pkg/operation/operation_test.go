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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/punctfix/pkg/punct"
	"github.com/walteh/punctfix/pkg/status"
)

// 🔧 MockFiles is a mock implementation of the status.FileManager interface
type MockFiles struct {
	mock.Mock
}

func (m *MockFiles) ReadFile(ctx context.Context, path string) ([]byte, error) {
	result := m.Called(ctx, path)
	data, _ := result.Get(0).([]byte)
	return data, result.Error(1)
}

func (m *MockFiles) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	result := m.Called(ctx, path, content)
	return result.Error(0)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckOperation(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name        string
		content     string
		wantStatus  status.FileStatus
		wantMatches []punct.Match
	}{
		{
			name:       "empty_file",
			content:    "",
			wantStatus: status.StatusClean,
		},
		{
			name:       "clean_file",
			content:    "# Title\n\nHello, world.\n",
			wantStatus: status.StatusClean,
		},
		{
			name:       "errored_file",
			content:    "# 标题\n\n你好，世界。\n",
			wantStatus: status.StatusErrored,
			wantMatches: []punct.Match{
				{Line: 3, Column: 3, Offset: 16, Text: "，", Rule: "comma", Replacement: ","},
				{Line: 3, Column: 6, Offset: 25, Text: "。", Rule: "period", Replacement: "."},
			},
		},
	}

	op := NewCheckOperation(Options{})
	assert.Equal(t, "check", op.Name())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".md", tt.content)

			result := op.Process(ctx, path)
			require.NoError(t, result.Err)
			assert.Equal(t, path, result.Path)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantMatches, result.Matches)

			// detection never modifies the file
			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))
		})
	}
}

func TestCheckOperation_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")
	result := NewCheckOperation(Options{}).Process(context.Background(), path)

	assert.Equal(t, status.StatusFailed, result.Status)
	require.Error(t, result.Err)
	assert.True(t, errors.Is(result.Err, os.ErrNotExist))
}

func TestFixOperation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		content    string
		dryRun     bool
		want       string
		wantOnDisk string
		wantCount  int
		wantState  status.FileStatus
	}{
		{
			name:       "clean_file_untouched",
			content:    "nothing here.\n",
			want:       "",
			wantOnDisk: "nothing here.\n",
			wantState:  status.StatusClean,
		},
		{
			name:       "fixes_in_place",
			content:    "你好，世界。\n",
			want:       "你好,世界.\n",
			wantOnDisk: "你好,世界.\n",
			wantCount:  2,
			wantState:  status.StatusFixed,
		},
		{
			name:       "quotes_and_ellipsis",
			content:    "He said ‘hi’…",
			want:       "He said 'hi'...",
			wantOnDisk: "He said 'hi'...",
			wantCount:  3,
			wantState:  status.StatusFixed,
		},
		{
			name:       "dry_run_leaves_file",
			content:    "（注）",
			dryRun:     true,
			want:       "(注)",
			wantOnDisk: "（注）",
			wantCount:  2,
			wantState:  status.StatusFixed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "doc.md", tt.content)

			op := NewFixOperation(Options{DryRun: tt.dryRun})
			assert.Equal(t, "fix", op.Name())

			result := op.Process(ctx, path)
			require.NoError(t, result.Err)
			assert.Equal(t, tt.wantState, result.Status)
			assert.Equal(t, tt.wantCount, result.Replacements)
			assert.Equal(t, tt.want, result.Fixed)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOnDisk, string(got))
		})
	}
}

func TestFixOperation_WriteFailure(t *testing.T) {
	ctx := context.Background()
	files := &MockFiles{}
	files.On("ReadFile", mock.Anything, "doc.md").Return([]byte("一，二"), nil)
	files.On("WriteFileAtomic", mock.Anything, "doc.md", []byte("一,二")).Return(errors.New("read-only file system"))

	result := NewFixOperation(Options{Files: files}).Process(ctx, "doc.md")

	assert.Equal(t, status.StatusFailed, result.Status)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "writing doc.md")
	files.AssertExpectations(t)
}

func TestFixOperation_CleanFileNotWritten(t *testing.T) {
	files := &MockFiles{}
	files.On("ReadFile", mock.Anything, "ok.md").Return([]byte("ascii only."), nil)

	result := NewFixOperation(Options{Files: files}).Process(context.Background(), "ok.md")

	assert.Equal(t, status.StatusClean, result.Status)
	files.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything, mock.Anything)
}

func TestFixOperation_CustomTable(t *testing.T) {
	files := &MockFiles{}
	files.On("ReadFile", mock.Anything, "a.md").Return([]byte("一，二。"), nil)
	files.On("WriteFileAtomic", mock.Anything, "a.md", []byte("一,二。")).Return(nil)

	comma, ok := punct.Default.Lookup("comma")
	require.True(t, ok)

	result := NewFixOperation(Options{
		Files:   files,
		Scanner: punct.NewScanner(punct.Table{comma}),
	}).Process(context.Background(), "a.md")

	assert.Equal(t, status.StatusFixed, result.Status)
	assert.Equal(t, 1, result.Replacements)
	files.AssertExpectations(t)
}
