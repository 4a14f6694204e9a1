package status

import (
	"fmt"
)

// FileFormatter defines how file results and summaries should be formatted
type FileFormatter interface {
	// FormatResult formats the one-line outcome of a file
	FormatResult(r FileResult) string

	// FormatSummary formats the aggregate line printed at the end of a run,
	// without a status symbol
	FormatSummary(s Summary, fix bool) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatResult formats a file result with emojis
func (f *DefaultFileFormatter) FormatResult(r FileResult) string {
	switch r.Status {
	case StatusClean:
		return fmt.Sprintf("👍 Clean %s", r.Path)
	case StatusFixed:
		return fmt.Sprintf("📝 Fixed %s (%s)", r.Path, plural(r.Replacements, "replacement"))
	case StatusErrored:
		return fmt.Sprintf("❌ %s in %s", plural(len(r.Matches), "match"), r.Path)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s: %v", r.Path, r.Err)
	default:
		return fmt.Sprintf("❔ Unknown %s", r.Path)
	}
}

// FormatSummary formats the run summary
func (f *DefaultFileFormatter) FormatSummary(s Summary, fix bool) string {
	failed := ""
	if s.Failed > 0 {
		failed = fmt.Sprintf(", %s unreadable", plural(s.Failed, "file"))
	}

	if fix {
		if s.Fixed == 0 {
			return fmt.Sprintf("Nothing to fix in %s%s", plural(s.Files, "file"), failed)
		}
		return fmt.Sprintf("Fixed %s of %s (%s)%s",
			plural(s.Fixed, "file"), plural(s.Files, "file"), plural(s.Replacements, "replacement"), failed)
	}

	if s.Errored == 0 {
		return fmt.Sprintf("No full-width punctuation in %s%s", plural(s.Files, "file"), failed)
	}
	return fmt.Sprintf("Found %s in %s of %s%s",
		plural(s.Matches, "match"), plural(s.Errored, "file"), plural(s.Files, "file"), failed)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	if noun == "match" {
		return fmt.Sprintf("%d matches", n)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
