package extract

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResume = `Jane Doe
jane.doe@example.com | +44 20 7946 0958
Date of birth: 12/03/1991

Profile
Senior backend engineer with 8+ years of experience. Passionate about developer tooling and observability. Enjoys mentoring. Also likes tea.

Skills
Go, PostgreSQL, Docker
Kubernetes | gRPC

Interests: climbing, open source and chess
`

func TestParse_NameEmailSkills(t *testing.T) {
	got := Parse("John Smith\nEmail: john@acme.com\nSkills: JS, React, sql")

	require.NotNil(t, got.PersonalInfo)
	assert.Equal(t, "John", got.PersonalInfo.FirstName)
	assert.Equal(t, "Smith", got.PersonalInfo.LastName)
	assert.Equal(t, "john@acme.com", got.PersonalInfo.Email)
	assert.Equal(t, []string{"JavaScript", "React", "SQL"}, got.Skills)
}

func TestParse_SummaryAndYOE(t *testing.T) {
	got := Parse("Summary:\nBuilt scalable systems for 5 years of experience with distributed caches.")

	require.NotNil(t, got.BackgroundInfo)
	require.NotNil(t, got.BackgroundInfo.YOE)
	assert.Equal(t, 5, *got.BackgroundInfo.YOE)
	assert.True(t, strings.HasPrefix(got.BackgroundInfo.Summary, "Built scalable systems"))
	assert.Equal(t, got.BackgroundInfo.Summary, got.ResumeSummary)
	assert.Nil(t, got.PersonalInfo)
}

func TestParse_EmptyTextMarshalsToEmptyObject(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		got := Parse(in)
		b, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(b), "input %q", in)
	}
}

func TestParse_FullResume(t *testing.T) {
	got := Parse(fullResume)

	require.NotNil(t, got.PersonalInfo)
	assert.Equal(t, PersonalInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		DOB:       "12/03/1991",
		Email:     "jane.doe@example.com",
		Phone:     "+44 20 7946 0958",
	}, *got.PersonalInfo)

	require.NotNil(t, got.BackgroundInfo)
	require.NotNil(t, got.BackgroundInfo.YOE)
	assert.Equal(t, 8, *got.BackgroundInfo.YOE)
	assert.Equal(t,
		"Senior backend engineer with 8+ years of experience. Passionate about developer tooling and observability. Enjoys mentoring.",
		got.BackgroundInfo.Summary)
	assert.Equal(t, []string{"climbing", "open source", "chess"}, got.BackgroundInfo.Interests)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "gRPC"}, got.Skills)
	assert.Equal(t, got.BackgroundInfo.Summary, got.ResumeSummary)
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{
		fullResume,
		"John Smith\nEmail: john@acme.com\nSkills: JS, React, sql",
		"",
		"random words without structure 123",
	}
	for _, in := range inputs {
		a, err := json.Marshal(Parse(in))
		require.NoError(t, err)
		b, err := json.Marshal(Parse(in))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b))
	}
}

func TestParse_PresentSubRecordsAreNeverEmpty(t *testing.T) {
	inputs := []string{
		fullResume,
		"",
		"lowercase header line\nno structure here",
		"John Smith",
		"phone 5551234567",
		"yoe: 0",
		"Hobbies:\n\n",
		"Skills: go",
	}
	for _, in := range inputs {
		got := Parse(in)
		if got.PersonalInfo != nil {
			assert.False(t, got.PersonalInfo.Empty(), "input %q", in)
		}
		if got.BackgroundInfo != nil {
			assert.False(t, got.BackgroundInfo.Empty(), "input %q", in)
		}
	}
}

func TestParse_ZeroYearsIsKept(t *testing.T) {
	got := Parse("yoe: 0")
	require.NotNil(t, got.BackgroundInfo)
	require.NotNil(t, got.BackgroundInfo.YOE)
	assert.Equal(t, 0, *got.BackgroundInfo.YOE)

	b, err := json.Marshal(got.BackgroundInfo)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"yoe":0`)
}
