package punct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	wantOrder := []string{
		"comma", "period", "question", "colon", "semicolon",
		"single-quote", "double-quote",
		"open-paren", "close-paren",
		"open-bracket", "close-bracket",
		"open-angle", "close-angle",
		"ellipsis",
	}

	names := make([]string, 0, len(Default))
	for _, r := range Default {
		names = append(names, r.Name)
	}
	assert.Equal(t, wantOrder, names)
}

func TestDefaultTable_ReplacementsNeverMatch(t *testing.T) {
	combined := Default.Combine()
	for _, r := range Default {
		assert.False(t, combined.MatchString(r.Replacement), "replacement of %s is matchable", r.Name)
		assert.NotEmpty(t, r.Replacement, "rule %s", r.Name)
	}
}

func TestCombine(t *testing.T) {
	combined := Default.Combine()
	for _, sample := range []string{
		"，", "、", "。", "？", "：", "；", "‘", "’", "“", "”",
		"（", "）", "【", "】", "［", "］", "《", "》", "〈", "〉", "…",
	} {
		assert.True(t, combined.MatchString(sample), "sample %q", sample)
	}

	assert.False(t, combined.MatchString(",.?:;'\"()[]<>..."))
	assert.False(t, Table{}.Combine().MatchString("anything，"))
}

func TestLookup(t *testing.T) {
	r, ok := Default.Lookup("period")
	require.True(t, ok)
	assert.Equal(t, ".", r.Replacement)

	_, ok = Default.Lookup("exclamation")
	assert.False(t, ok)
}
