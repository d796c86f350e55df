package jobseeker

import (
	"fmt"
	"strings"

	"github.com/artem13815/jobseeker/pkg/nlp"
)

// SkillsMode задаёт политику применения извлечённых навыков к профилю.
type SkillsMode string

const (
	// SkillsAdd unions extracted skills into the stored set.
	SkillsAdd SkillsMode = "add"
	// SkillsReplace overwrites the stored set, even with an empty list.
	SkillsReplace SkillsMode = "replace"
)

// ParseSkillsMode accepts "add" and "replace" in any case. Empty input
// means add.
func ParseSkillsMode(s string) (SkillsMode, error) {
	switch m := SkillsMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return SkillsAdd, nil
	case SkillsAdd, SkillsReplace:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// SkillsDecision is what the merge policy wants done with the stored set.
type SkillsDecision struct {
	Mode SkillsMode
	// ToAdd holds the delta in add mode.
	ToAdd []string
	// Final is the stored set after the write.
	Final []string
	// Write is false when the stored set stays as it is.
	Write bool
}

// SkillsToAdd returns the members of extracted whose lowercase form is
// absent from existing, in extracted order. Never nil.
func SkillsToAdd(extracted, existing []string) []string {
	have := nlp.FoldSet(existing)
	out := make([]string, 0, len(extracted))
	for _, s := range extracted {
		key := strings.ToLower(s)
		if _, ok := have[key]; ok {
			continue
		}
		have[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// MergeSkills reconciles extracted skills with the stored ones.
func MergeSkills(mode SkillsMode, extracted, existing []string) SkillsDecision {
	if mode == SkillsReplace {
		final := make([]string, len(extracted))
		copy(final, extracted)
		return SkillsDecision{Mode: mode, Final: final, Write: true}
	}

	toAdd := SkillsToAdd(extracted, existing)
	final := make([]string, 0, len(existing)+len(toAdd))
	final = append(final, existing...)
	final = append(final, toAdd...)
	return SkillsDecision{
		Mode:  SkillsAdd,
		ToAdd: toAdd,
		Final: final,
		Write: len(toAdd) > 0,
	}
}
