package extract

// ParsedResume содержит структурированный результат разбора текста резюме.
// Sub-records are nil unless at least one of their fields was found, so an
// empty input marshals to {} and a patch built from it never clobbers
// stored data with empty objects.
type ParsedResume struct {
	PersonalInfo   *PersonalInfo   `json:"personal_info,omitempty"`
	BackgroundInfo *BackgroundInfo `json:"background_info,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	ResumeSummary  string          `json:"resume_summary,omitempty"`
}

// PersonalInfo хранит контактные данные кандидата.
type PersonalInfo struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	DOB       string `json:"dob,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Empty reports whether no field is populated.
func (p PersonalInfo) Empty() bool {
	return p == PersonalInfo{}
}

// BackgroundInfo описывает опыт, краткое резюме и интересы.
type BackgroundInfo struct {
	YOE       *int     `json:"yoe,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Empty reports whether no field is populated.
func (b BackgroundInfo) Empty() bool {
	return b.YOE == nil && b.Summary == "" && len(b.Interests) == 0
}
