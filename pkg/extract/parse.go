// Package extract turns decoded resume text into structured fields using a
// fixed set of deterministic heuristics. Every picker is a pure function of
// the input text; a field that cannot be found is simply left out.
package extract

import "github.com/artem13815/jobseeker/pkg/nlp"

// Parse runs every field picker over text. It never fails: an empty or
// unrecognisable input yields an empty ParsedResume.
func Parse(text string) ParsedResume {
	var out ParsedResume

	first, last := pickName(text)
	personal := PersonalInfo{
		FirstName: first,
		LastName:  last,
		DOB:       pickDOB(text),
		Email:     pickEmail(text),
		Phone:     pickPhone(text),
	}
	if !personal.Empty() {
		out.PersonalInfo = &personal
	}

	// interests may be mined from the summary, so it goes first
	summary := pickSummary(text)
	background := BackgroundInfo{
		Summary:   summary,
		Interests: pickInterests(text, summary),
	}
	if yoe, ok := pickYOE(text); ok {
		background.YOE = &yoe
	}
	if !background.Empty() {
		out.BackgroundInfo = &background
	}

	out.Skills = nlp.ExtractSkills(text)
	out.ResumeSummary = summary
	return out
}
