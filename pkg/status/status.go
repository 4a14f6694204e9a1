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

package status

import (
	"github.com/walteh/punctfix/pkg/punct"
)

// 📊 FileStatus is the outcome of processing one file
type FileStatus int

const (
	StatusUnknown FileStatus = iota
	StatusClean              // No full-width punctuation found
	StatusFixed              // Content rewritten (or would be, on a dry run)
	StatusErrored            // Matches found and left in place
	StatusFailed             // File could not be read or written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusFixed:
		return "fixed"
	case StatusErrored:
		return "errored"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult is what processing one file produced
type FileResult struct {
	Path         string        // Path as given to the runner
	Status       FileStatus    // Outcome
	Matches      []punct.Match // Ordered by position; set for errored files
	Replacements int           // Occurrences replaced; set for fixed files
	Original     string        // Content before fixing; set for fixed files
	Fixed        string        // Content after fixing; set for fixed files
	Err          error         // I/O failure; set for failed files
}

// 📈 Summary aggregates file results
type Summary struct {
	Files        int // Files processed
	Clean        int // Files without matches
	Fixed        int // Files rewritten
	Errored      int // Files with unfixed matches
	Failed       int // Files with I/O errors
	Matches      int // Matches reported across errored files
	Replacements int // Occurrences replaced across fixed files
}

// Add folds one result into the summary.
func (s *Summary) Add(r FileResult) {
	s.Files++
	switch r.Status {
	case StatusClean:
		s.Clean++
	case StatusFixed:
		s.Fixed++
		s.Replacements += r.Replacements
	case StatusErrored:
		s.Errored++
		s.Matches += len(r.Matches)
	case StatusFailed:
		s.Failed++
	}
}

// Summarize builds a summary from results.
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, r := range results {
		s.Add(r)
	}
	return s
}

// HasViolations reports whether any file was left with matches.
func (s Summary) HasViolations() bool {
	return s.Errored > 0
}

// HasFailures reports whether any file hit an I/O error.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
