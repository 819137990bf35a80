package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Role Markers And Trailing Fragment",
			in:   "[INST] The answer is 42.[/INST] What else",
			want: "The answer is 42.",
		},
		{
			name: "Leading Punctuation",
			in:   ": Dixon studied computer science at Penn State.",
			want: "Dixon studied computer science at Penn State.",
		},
		{
			name: "Complete Answer Untouched",
			in:   "Dixon graduated in May 2025. He now builds AI systems.",
			want: "Dixon graduated in May 2025. He now builds AI systems.",
		},
		{
			name: "Fragment Before Midpoint Kept",
			in:   "Hi. and then a very long trailing fragment without any terminal punctuation present",
			want: "Hi. and then a very long trailing fragment without any terminal punctuation present",
		},
		{
			name: "Truncates Past Midpoint",
			in:   "Dixon built several projects including a football predictor! And he also",
			want: "Dixon built several projects including a football predictor!",
		},
		{
			name: "Sentence Splitter Tokens",
			in:   "<s>He loves the NFL.</s>",
			want: "He loves the NFL.",
		},
		{
			name: "Whitespace Only",
			in:   "  \n ",
			want: "",
		},
		{
			name: "Question Terminator",
			in:   "Want to know more? He can tell",
			want: "Want to know more?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanResponse(tt.in))
		})
	}
}
