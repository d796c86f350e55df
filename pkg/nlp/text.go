package nlp

import (
	"regexp"
	"strings"
)

var (
	reParagraphBreak = regexp.MustCompile(`\n{2,}`)
	reSentenceEnd    = regexp.MustCompile(`\.\s+`)
	reMultiSpace     = regexp.MustCompile(`\s{2,}`)
)

// Section returns the first capture group of a labeled-section pattern.
// The pattern is expected to look like `(?:^|\n)\s*<label>\s*[:\n]+([\s\S]{0,N})`,
// so the capture is bounded by the pattern itself.
func Section(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// FirstParagraph cuts s at the first blank-line break.
func FirstParagraph(s string) string {
	if loc := reParagraphBreak.FindStringIndex(s); loc != nil {
		return s[:loc[0]]
	}
	return s
}

// Sentences splits s after every period that is followed by whitespace.
// The period stays attached to the sentence it ends.
func Sentences(s string) []string {
	var out []string
	prev := 0
	for _, loc := range reSentenceEnd.FindAllStringIndex(s, -1) {
		out = append(out, s[prev:loc[0]+1])
		prev = loc[1]
	}
	return append(out, s[prev:])
}

// FirstSentences joins at most n leading sentences of s with a single space.
func FirstSentences(s string, n int) string {
	parts := Sentences(s)
	if len(parts) > n {
		parts = parts[:n]
	}
	return strings.Join(parts, " ")
}

// CollapseSpaces replaces runs of two or more whitespace characters with one space.
func CollapseSpaces(s string) string {
	return reMultiSpace.ReplaceAllString(s, " ")
}
