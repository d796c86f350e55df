package nlp

import (
	"regexp"
	"strings"
)

var (
	reSkillsSection = regexp.MustCompile(`(?i)(?:^|\n)\s*skills?\s*[:\n]+([\s\S]{0,600})`)
	reSkillSplit    = regexp.MustCompile(`[\n,•|]`)
	reSkillNoise    = regexp.MustCompile(`[^a-z0-9#+.]`)
)

// ExtractSkills scans the "Skills" section of text (or the whole text when
// there is no such section) and returns the canonical names of every known
// skill it mentions, in first-seen order, without case-insensitive
// duplicates. Unknown tokens are dropped. Returns nil when nothing matched.
func ExtractSkills(text string) []string {
	block, ok := Section(reSkillsSection, text)
	if ok {
		block = FirstParagraph(block)
	} else {
		block = text
	}

	var out []string
	seen := map[string]struct{}{}
	for _, raw := range reSkillSplit.Split(block, -1) {
		canon, ok := CanonicalSkill(raw)
		if !ok {
			continue
		}
		key := strings.ToLower(canon)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, canon)
	}
	return out
}

// CanonicalSkill looks token up in CanonicalAliases, first by its
// noise-stripped key, then by the trimmed lowercase token itself.
func CanonicalSkill(token string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return "", false
	}
	if canon, ok := CanonicalAliases[skillKey(t)]; ok {
		return canon, true
	}
	canon, ok := CanonicalAliases[t]
	return canon, ok
}

// skillKey strips everything except a-z, 0-9, '#', '+' and '.'.
// Input must already be lowercase.
func skillKey(lower string) string {
	return reSkillNoise.ReplaceAllString(lower, "")
}

// DedupeFold trims skills, drops empty entries and removes case-insensitive
// duplicates. The first spelling seen wins.
func DedupeFold(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, raw := range skills {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// FoldSet returns the lowercase membership set of skills.
func FoldSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}
