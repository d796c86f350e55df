package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/artem13815/jobseeker/pkg/nlp"
)

var (
	reNameToken = regexp.MustCompile(`^[A-Z][a-zA-Z'-]+$`)
	reEmail     = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)
	rePhone     = regexp.MustCompile(`(?:\+?\d[\s-]?){7,}`)
	reDOB       = regexp.MustCompile(`(?i)\b(?:dob|date of birth)[:\s-]*([0-9]{4}[-/][0-9]{2}[-/][0-9]{2}|[0-9]{2}[-/][0-9]{2}[-/][0-9]{4})\b`)

	reSummarySection   = regexp.MustCompile(`(?i)(?:^|\n)\s*(?:summary|profile)\s*[:\n]+([\s\S]{0,800})`)
	reInterestsSection = regexp.MustCompile(`(?i)(?:^|\n)\s*(?:interests?|hobbies|areas?\s+of\s+interest)\s*[:\n]+([\s\S]{0,500})`)
	reInterestPhrase   = regexp.MustCompile(`(?i)(interested in|passionate about|focus(?:ed)? on)\s+([^.\n]{3,200})`)
	reInterestSplit    = regexp.MustCompile(`(?i)[,•|;]|\band\b`)
)

const (
	summarySentences = 3
	minInterestLen   = 2
	maxInterestLen   = 50
)

// pickName treats the first non-empty line as "First Last...".
func pickName(text string) (first, last string) {
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if len(parts) >= 2 && reNameToken.MatchString(parts[0]) {
			return parts[0], strings.Join(parts[1:], " ")
		}
		return "", ""
	}
	return "", ""
}

func pickEmail(text string) string {
	return reEmail.FindString(text)
}

func pickPhone(text string) string {
	return strings.TrimSpace(rePhone.FindString(text))
}

func pickDOB(text string) string {
	m := reDOB.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// pickSummary prefers a "Summary:"/"Profile:" section and falls back to the
// opening sentences of the whole document.
func pickSummary(text string) string {
	if block, ok := nlp.Section(reSummarySection, text); ok {
		block = nlp.FirstParagraph(strings.TrimSpace(block))
		return strings.TrimSpace(nlp.FirstSentences(block, summarySentences))
	}
	return strings.TrimSpace(nlp.FirstSentences(strings.TrimSpace(text), summarySentences))
}

// pickInterests reads an "Interests:" section. Without one it looks for
// "interested in ..." style phrases inside the already computed summary.
func pickInterests(text, summary string) []string {
	var block string
	if sec, ok := nlp.Section(reInterestsSection, text); ok {
		block = nlp.FirstParagraph(sec)
	} else if m := reInterestPhrase.FindStringSubmatch(summary); m != nil {
		block = m[2]
	}
	if block == "" {
		return nil
	}
	return splitInterests(block)
}

func splitInterests(block string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, piece := range reInterestSplit.Split(block, -1) {
		piece = strings.TrimSpace(piece)
		if n := utf8.RuneCountInString(piece); n < minInterestLen || n > maxInterestLen {
			continue
		}
		piece = nlp.CollapseSpaces(piece)
		if _, dup := seen[piece]; dup {
			continue
		}
		seen[piece] = struct{}{}
		out = append(out, piece)
	}
	return out
}
