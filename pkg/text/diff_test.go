package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineDiff(t *testing.T) {
	tests := []struct {
		name     string
		original string
		fixed    string
		want     []LineChange
	}{
		{
			name:     "identical",
			original: "same\n",
			fixed:    "same\n",
			want:     nil,
		},
		{
			name:     "single_line_no_newline",
			original: "你好，世界。",
			fixed:    "你好,世界.",
			want: []LineChange{
				{Line: 1, Content: "你好，世界。"},
				{Line: 1, Added: true, Content: "你好,世界."},
			},
		},
		{
			name:     "middle_line",
			original: "一\n二，\n三\n",
			fixed:    "一\n二,\n三\n",
			want: []LineChange{
				{Line: 2, Content: "二，"},
				{Line: 2, Added: true, Content: "二,"},
			},
		},
		{
			name:     "two_separate_lines",
			original: "（a）\nok\nb。\n",
			fixed:    "(a)\nok\nb.\n",
			want: []LineChange{
				{Line: 1, Content: "（a）"},
				{Line: 1, Added: true, Content: "(a)"},
				{Line: 3, Content: "b。"},
				{Line: 3, Added: true, Content: "b."},
			},
		},
		{
			name:     "crlf_trimmed",
			original: "x：\r\n",
			fixed:    "x:\r\n",
			want: []LineChange{
				{Line: 1, Content: "x："},
				{Line: 1, Added: true, Content: "x:"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineDiff(tt.original, tt.fixed))
		})
	}
}
