package xiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want []string
	}{
		{
			name: "plain entries",
			blob: "1.1.1.1\n2.2.0.0/16\n",
			want: []string{"1.1.1.1", "2.2.0.0/16"},
		},
		{
			name: "no trailing newline",
			blob: "1.1.1.1\n2.2.2.2",
			want: []string{"1.1.1.1", "2.2.2.2"},
		},
		{
			name: "hash comments and blanks",
			blob: "# header comment\n\n10.0.0.0/8\n\n# trailing comment\n192.168.0.0/16\n",
			want: []string{"10.0.0.0/8", "192.168.0.0/16"},
		},
		{
			name: "semicolon comments",
			blob: "; generated file\n1.2.3.4\n",
			want: []string{"1.2.3.4"},
		},
		{
			name: "per-line whitespace trimmed",
			blob: "  1.1.1.1  \n\t2.2.2.2\t\n",
			want: []string{"1.1.1.1", "2.2.2.2"},
		},
		{
			name: "indented comment is still a comment",
			blob: "   # indented\n3.3.3.3\n",
			want: []string{"3.3.3.3"},
		},
		{
			name: "CRLF line endings",
			blob: "1.1.1.1\r\n# c\r\n2.2.2.2\r\n",
			want: []string{"1.1.1.1", "2.2.2.2"},
		},
		{
			name: "invalid syntax passes through unvalidated",
			blob: "not-an-ip\n",
			want: []string{"not-an-ip"},
		},
		{name: "empty blob", blob: "", want: nil},
		{name: "only comments and blanks", blob: "# a\n\n; b\n", want: nil},
		{name: "only whitespace", blob: "   \n\t\n", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.blob))
		})
	}
}

func TestIsComment(t *testing.T) {
	assert.True(t, IsComment("# x"))
	assert.True(t, IsComment("#"))
	assert.True(t, IsComment("; x"))
	assert.False(t, IsComment(""))
	assert.False(t, IsComment("1.1.1.1"))
	assert.False(t, IsComment("1.1.1.1 # not a line comment"))
}
