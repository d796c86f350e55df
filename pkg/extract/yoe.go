package extract

import (
	"regexp"
	"strconv"
)

// yoeMatcher extracts a years-of-experience figure from text.
type yoeMatcher struct {
	name string
	re   *regexp.Regexp
}

func (m yoeMatcher) match(text string) (int, bool) {
	sm := m.re.FindStringSubmatch(text)
	if sm == nil {
		return 0, false
	}
	n, err := strconv.Atoi(sm[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// yoeMatchers are tried in order; the first hit wins.
var yoeMatchers = []yoeMatcher{
	// "3 years", "4 yrs", "2+ years"
	{name: "years", re: regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b(?:[^a-z]|$)`)},
	// "3 years of experience"
	{name: "years-experience", re: regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\s*(?:of)?\s*experience\b`)},
	// "yoe: 3"
	{name: "yoe-label", re: regexp.MustCompile(`(?i)\byoe\s*[:\-]?\s*(\d{1,2})\b`)},
}

func pickYOE(text string) (int, bool) {
	for _, m := range yoeMatchers {
		if n, ok := m.match(text); ok {
			return n, true
		}
	}
	return 0, false
}
