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
	"regexp"
	"strings"
)

// 📏 Rule maps one or more full-width characters to a half-width replacement
type Rule struct {
	Name        string         // Short identifier used in diagnostics
	Matcher     *regexp.Regexp // Full-width characters this rule accepts
	Replacement string         // Literal half-width text
}

// 📋 Table is an ordered, read-only list of rules
type Table []Rule

func rule(name, pattern, replacement string) Rule {
	return Rule{
		Name:        name,
		Matcher:     regexp.MustCompile(pattern),
		Replacement: replacement,
	}
}

// Default is the built-in substitution table. Order is significant: Fix
// applies the rules one after another over the running result.
var Default = Table{
	rule("comma", `[，、]`, ","),
	rule("period", `。`, "."),
	rule("question", `？`, "?"),
	rule("colon", `：`, ":"),
	rule("semicolon", `；`, ";"),
	rule("single-quote", `[‘’]`, "'"),
	rule("double-quote", `[“”]`, `"`),
	rule("open-paren", `（`, "("),
	rule("close-paren", `）`, ")"),
	rule("open-bracket", `[【［]`, "["),
	rule("close-bracket", `[】］]`, "]"),
	rule("open-angle", `[《〈]`, "<"),
	rule("close-angle", `[》〉]`, ">"),
	// one or two consecutive glyphs collapse into a single "..."
	rule("ellipsis", `…{1,2}`, "..."),
}

// defaultCombined is built once from Default and never modified.
var defaultCombined = Default.Combine()

// Combine builds a single matcher that accepts anything any rule accepts.
// It carries no replacement information and is only good for existence tests.
func (t Table) Combine() *regexp.Regexp {
	if len(t) == 0 {
		// matches nothing
		return regexp.MustCompile(`[^\x00-\x{10FFFF}]`)
	}
	parts := make([]string, 0, len(t))
	for _, r := range t {
		parts = append(parts, "(?:"+r.Matcher.String()+")")
	}
	return regexp.MustCompile(strings.Join(parts, "|"))
}

// Lookup returns the rule with the given name.
func (t Table) Lookup(name string) (Rule, bool) {
	for _, r := range t {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}
