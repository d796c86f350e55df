package jobseeker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/jobseeker/pkg/extract"
)

var (
	ErrMissingUser = errors.New("missing userId")
	ErrInvalidUser = errors.New("invalid userId")
	ErrInvalidMode = errors.New("invalid skillsMode")
	ErrEmptyText   = errors.New("could not read resume text")
	ErrNotFound    = errors.New("jobseeker not found")
)

// Profile хранит сохранённый профиль соискателя.
// Info maps are kept as raw JSON: keys written by other systems survive
// a round trip untouched.
type Profile struct {
	UserID         uuid.UUID       `json:"userId"`
	PersonalInfo   json.RawMessage `json:"personal_info,omitempty" swaggertype:"object"`
	BackgroundInfo json.RawMessage `json:"background_info,omitempty" swaggertype:"object"`
	ResumeSummary  string          `json:"resume_summary,omitempty"`
	Skills         []string        `json:"skills"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Patch carries only the parts of a parsed resume that were found.
// Nil sub-records and an empty summary leave stored values alone.
type Patch struct {
	PersonalInfo   *extract.PersonalInfo
	BackgroundInfo *extract.BackgroundInfo
	ResumeSummary  string
}

// PatchFrom picks the patchable fields out of a parse result.
func PatchFrom(p extract.ParsedResume) Patch {
	return Patch{
		PersonalInfo:   p.PersonalInfo,
		BackgroundInfo: p.BackgroundInfo,
		ResumeSummary:  p.ResumeSummary,
	}
}

func (p Patch) Empty() bool {
	return p.PersonalInfo == nil && p.BackgroundInfo == nil && p.ResumeSummary == ""
}

// Repository: порт хранения профилей соискателей.
type Repository interface {
	// ApplyPatch creates the row when absent and merges present fields
	// key by key into the stored maps.
	ApplyPatch(ctx context.Context, userID uuid.UUID, patch Patch) error
	// GetSkills returns the stored set, nil when there is no row.
	GetSkills(ctx context.Context, userID uuid.UUID) ([]string, error)
	ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) error
	// UnionSkills appends the skills that are not yet stored, compared
	// case-insensitively at write time.
	UnionSkills(ctx context.Context, userID uuid.UUID, skills []string) error
	Get(ctx context.Context, userID uuid.UUID) (Profile, error)
	List(ctx context.Context, f ListFilter) ([]Profile, error)
}

// ListFilter: параметры выборки профилей.
type ListFilter struct {
	// Skill keeps profiles holding this skill, compared case-insensitively.
	Skill  string
	Limit  int
	Offset int
}
