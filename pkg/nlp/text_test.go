package nlp

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"One sentence", []string{"One sentence"}},
		{"First. Second.  Third.\nFourth", []string{"First.", "Second.", "Third.", "Fourth"}},
		{"mail me at a.b@c.com please.", []string{"mail me at a.b@c.com please."}},
		{"Ends with period. ", []string{"Ends with period.", ""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sentences(tt.in), "input %q", tt.in)
	}
}

func TestFirstSentences(t *testing.T) {
	assert.Equal(t, "A. B. C.", FirstSentences("A. B. C. D. E.", 3))
	assert.Equal(t, "A. B.", FirstSentences("A. B.", 3))
	assert.Equal(t, "", FirstSentences("", 3))
}

func TestFirstParagraph(t *testing.T) {
	assert.Equal(t, "line one\nline two", FirstParagraph("line one\nline two\n\n\nnext"))
	assert.Equal(t, "no break", FirstParagraph("no break"))
	assert.Equal(t, "", FirstParagraph("\n\nleading break"))
}

func TestSection(t *testing.T) {
	re := regexp.MustCompile(`(?i)(?:^|\n)\s*hobbies\s*[:\n]+([\s\S]{0,10})`)

	got, ok := Section(re, "Name\nHOBBIES: chess and go, more text here")
	assert.True(t, ok)
	assert.Equal(t, " chess and", got)

	_, ok = Section(re, "Name\nmy hobbies: none")
	assert.False(t, ok)
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "open source", CollapseSpaces("open   source"))
	assert.Equal(t, "a b", CollapseSpaces("a\t\nb"))
	assert.Equal(t, "a b", CollapseSpaces("a b"))
}
