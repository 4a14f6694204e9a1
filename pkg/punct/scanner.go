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

package punct

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// 📍 Match is one occurrence of a rule in a block of text
type Match struct {
	Line        int    // 1-based line number
	Column      int    // 1-based column, counted in runes
	Offset      int    // Byte offset of the match
	Text        string // The matched full-width text
	Rule        string // Name of the rule that matched
	Replacement string // What Fix turns Text into
}

// String renders the match as line:column followed by the matched text
func (m Match) String() string {
	return fmt.Sprintf("%d:%d %s", m.Line, m.Column, m.Text)
}

// 🔍 Scanner detects, locates and fixes full-width punctuation
type Scanner struct {
	table    Table
	combined *regexp.Regexp
}

// 🏭 NewScanner creates a scanner for the given table
func NewScanner(t Table) *Scanner {
	return &Scanner{
		table:    t,
		combined: t.Combine(),
	}
}

var defaultScanner = &Scanner{table: Default, combined: defaultCombined}

// DefaultScanner returns the scanner backed by the built-in table.
func DefaultScanner() *Scanner {
	return defaultScanner
}

// HasMatch reports whether any rule occurs anywhere in text.
func (s *Scanner) HasMatch(text string) bool {
	return s.combined.MatchString(text)
}

// Fix applies every rule in table order, each to the output of the previous one.
func (s *Scanner) Fix(text string) string {
	fixed, _ := s.FixCount(text)
	return fixed
}

// FixCount is Fix, also returning how many occurrences were replaced.
func (s *Scanner) FixCount(text string) (string, int) {
	count := 0
	current := text
	for _, r := range s.table {
		n := len(r.Matcher.FindAllStringIndex(current, -1))
		if n == 0 {
			continue
		}
		count += n
		current = r.Matcher.ReplaceAllLiteralString(current, r.Replacement)
	}
	return current, count
}

// Locate returns every occurrence of every rule ordered by position. Matches
// at the same offset keep table order.
func (s *Scanner) Locate(text string) []Match {
	if !s.HasMatch(text) {
		return nil
	}

	var matches []Match
	for _, r := range s.table {
		for _, loc := range r.Matcher.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{
				Offset:      loc[0],
				Text:        text[loc[0]:loc[1]],
				Rule:        r.Name,
				Replacement: r.Replacement,
			})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	// walk forward once, tracking the current line and where it starts
	line, lineStart, pos := 1, 0, 0
	for i := range matches {
		m := &matches[i]
		segment := text[pos:m.Offset]
		if n := strings.Count(segment, "\n"); n > 0 {
			line += n
			lineStart = pos + strings.LastIndexByte(segment, '\n') + 1
		}
		pos = m.Offset
		m.Line = line
		m.Column = utf8.RuneCountInString(text[lineStart:m.Offset]) + 1
	}

	return matches
}

// HasMatch reports whether text contains punctuation from the default table.
func HasMatch(text string) bool {
	return defaultScanner.HasMatch(text)
}

// Fix rewrites text using the default table.
func Fix(text string) string {
	return defaultScanner.Fix(text)
}

// Locate finds every default-table match in text.
func Locate(text string) []Match {
	return defaultScanner.Locate(text)
}
