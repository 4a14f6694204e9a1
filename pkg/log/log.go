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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/punctfix/pkg/punct"
	"github.com/walteh/punctfix/pkg/status"
	"github.com/walteh/punctfix/pkg/text"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	matchIndent  = 6  // spaces to indent match diagnostics
	nameWidth    = 35 // Base width for filename
	statusWidth  = 15 // Width for status text
	detailIndent = 8  // spaces to indent preview lines
)

// 🎯 Logger prints diagnostics to the console and mirrors them to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
	verbose   bool
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
		mu:        sync.Mutex{},
	}
}

// SetVerbose makes LogFileResult print clean files too.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileResult formats the header line of a file result
func (l *Logger) formatFileResult(r status.FileResult) string {
	var symbol rune
	var symbolColor color.Attribute
	var detail string
	switch r.Status {
	case status.StatusClean:
		symbol = '•'
		symbolColor = color.FgCyan
		detail = "clean"
	case status.StatusFixed:
		symbol = '⟳'
		symbolColor = color.FgBlue
		detail = fmt.Sprintf("fixed %d", r.Replacements)
	case status.StatusErrored:
		symbol = '✗'
		symbolColor = color.FgRed
		detail = fmt.Sprintf("%d found", len(r.Matches))
	case status.StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
		detail = fmt.Sprintf("failed: %v", r.Err)
	default:
		symbol = '-'
		symbolColor = color.FgYellow
		detail = r.Status.String()
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, r.Path),
		fmt.Sprintf("%-*s", statusWidth, detail))
}

// 📝 formatMatch formats one diagnostic as path:line:column
func (l *Logger) formatMatch(path string, m punct.Match) string {
	return fmt.Sprintf("%s%s %s %s %s %s",
		fmt.Sprintf("%*s", matchIndent, ""),
		color.New(color.Bold).Sprintf("%s:%d:%d", path, m.Line, m.Column),
		color.New(color.FgRed).Sprint(m.Text),
		color.New(color.Faint).Sprint(m.Rule),
		"→",
		color.New(color.FgGreen).Sprint(m.Replacement))
}

// 📝 LogFileResult logs a file result and, for errored files, every match
func (l *Logger) LogFileResult(ctx context.Context, r status.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if r.Status != status.StatusClean || l.verbose {
		fmt.Fprintln(l.console, l.formatFileResult(r))
	}
	if r.Status == status.StatusErrored {
		for _, m := range r.Matches {
			fmt.Fprintln(l.console, l.formatMatch(r.Path, m))
		}
	}

	event := l.zlog.Debug()
	switch r.Status {
	case status.StatusFailed:
		event = l.zlog.Error().Err(r.Err)
	case status.StatusErrored, status.StatusFixed:
		event = l.zlog.Info()
	}
	event.
		Str("file", r.Path).
		Str("status", r.Status.String()).
		Int("matches", len(r.Matches)).
		Int("replacements", r.Replacements).
		Msg(l.formatter.FormatResult(r))
}

// 📝 LogPreview logs the lines a fix would change
func (l *Logger) LogPreview(ctx context.Context, path string, changes []text.LineChange) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, c := range changes {
		prefix := color.New(color.FgRed).Sprintf("- %d:", c.Line)
		if c.Added {
			prefix = color.New(color.FgGreen).Sprintf("+ %d:", c.Line)
		}
		fmt.Fprintf(l.console, "%*s%s %s\n", detailIndent, "", prefix, c.Content)
	}

	l.zlog.Debug().Str("file", path).Int("changed_lines", len(changes)).Msg("fix preview")
}

// 📝 LogSummary logs the run summary. A summary is a failure when check found
// violations or any file could not be processed.
func (l *Logger) LogSummary(ctx context.Context, s status.Summary, fix bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console)
	msg := l.formatter.FormatSummary(s, fix)
	if (s.HasViolations() && !fix) || s.HasFailures() {
		l.message("❌", color.FgRed, msg)
	} else {
		l.message("✅", color.FgGreen, msg)
	}

	l.zlog.Info().
		Int("files", s.Files).
		Int("clean", s.Clean).
		Int("fixed", s.Fixed).
		Int("errored", s.Errored).
		Int("failed", s.Failed).
		Int("matches", s.Matches).
		Msg("run complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("punctfix")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// message writes one symbol-prefixed line; callers hold mu
func (l *Logger) message(symbol string, attr color.Attribute, msg string) {
	fmt.Fprintf(l.console, "%s %s\n", symbol, color.New(attr).Sprint(msg))
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.message("⚠️ ", color.FgYellow, msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message with a pterm error prefix
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Error.WithWriter(l.console).Println(msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.message("ℹ️ ", color.FgCyan, msg)
	l.zlog.Info().Msg(msg)
}
