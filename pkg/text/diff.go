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

// Package text renders line-level previews of punctuation fixes.
package text

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🔀 LineChange is one line removed from or added to a file
type LineChange struct {
	Line    int    // 1-based line number in the original (removed) or fixed (added) text
	Added   bool   // false for a removed line
	Content string // Line content without its trailing newline
}

// 📝 LineDiff returns the lines that differ between original and fixed, in
// file order, removed lines before the lines replacing them.
func LineDiff(original, fixed string) []LineChange {
	if original == fixed {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, fixed)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var changes []LineChange
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		for _, content := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				changes = append(changes, LineChange{Line: oldLine, Content: content})
				oldLine++
			case diffmatchpatch.DiffInsert:
				changes = append(changes, LineChange{Line: newLine, Added: true, Content: content})
				newLine++
			}
		}
	}
	return changes
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(strings.TrimSuffix(l, "\n"), "\r")
	}
	return lines
}
