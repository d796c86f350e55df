package jobseeker

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobseeker/pkg/nlp"
)

type memRepo struct {
	profiles map[uuid.UUID]*Profile
	patches  []Patch
	filters  []ListFilter
	failOn   string
}

func newMemRepo() *memRepo {
	return &memRepo{profiles: map[uuid.UUID]*Profile{}}
}

func (r *memRepo) fail(op string) error {
	if r.failOn == op {
		return errors.New(op + " failed")
	}
	return nil
}

func (r *memRepo) row(id uuid.UUID) *Profile {
	p, ok := r.profiles[id]
	if !ok {
		p = &Profile{UserID: id, Skills: []string{}}
		r.profiles[id] = p
	}
	return p
}

func (r *memRepo) ApplyPatch(_ context.Context, id uuid.UUID, patch Patch) error {
	if err := r.fail("patch"); err != nil {
		return err
	}
	r.patches = append(r.patches, patch)
	p := r.row(id)
	if patch.ResumeSummary != "" {
		p.ResumeSummary = patch.ResumeSummary
	}
	return nil
}

func (r *memRepo) GetSkills(_ context.Context, id uuid.UUID) ([]string, error) {
	if err := r.fail("get"); err != nil {
		return nil, err
	}
	if p, ok := r.profiles[id]; ok {
		return append([]string(nil), p.Skills...), nil
	}
	return nil, nil
}

func (r *memRepo) ReplaceSkills(_ context.Context, id uuid.UUID, skills []string) error {
	if err := r.fail("replace"); err != nil {
		return err
	}
	r.row(id).Skills = append([]string{}, skills...)
	return nil
}

func (r *memRepo) UnionSkills(_ context.Context, id uuid.UUID, skills []string) error {
	if err := r.fail("union"); err != nil {
		return err
	}
	p := r.row(id)
	p.Skills = append(p.Skills, SkillsToAdd(skills, p.Skills)...)
	return nil
}

func (r *memRepo) Get(_ context.Context, id uuid.UUID) (Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return *p, nil
}

func (r *memRepo) List(_ context.Context, f ListFilter) ([]Profile, error) {
	if err := r.fail("list"); err != nil {
		return nil, err
	}
	r.filters = append(r.filters, f)
	var out []Profile
	for _, p := range r.profiles {
		if f.Skill != "" {
			if _, ok := nlp.FoldSet(p.Skills)[strings.ToLower(f.Skill)]; !ok {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

type textDecoder struct {
	text string
	err  error
}

func (d textDecoder) Decode(string, string, []byte) (string, error) { return d.text, d.err }

type recArchiver struct {
	key   string
	err   error
	calls int
}

func (a *recArchiver) Archive(context.Context, uuid.UUID, string, string, []byte) (string, error) {
	a.calls++
	return a.key, a.err
}

type recPublisher struct {
	events []IngestedEvent
	err    error
}

func (p *recPublisher) PublishIngested(_ context.Context, ev IngestedEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func TestIngest_AddKeepsStoredCasing(t *testing.T) {
	repo := newMemRepo()
	uid := uuid.New()
	repo.row(uid).Skills = []string{"javascript"}

	svc := NewService(repo, textDecoder{text: "Skills: JavaScript, Go"})
	res, err := svc.Ingest(context.Background(), IngestInput{UserID: uid.String()})
	require.NoError(t, err)

	assert.Equal(t, SkillsAdd, res.Skills.Mode)
	assert.Equal(t, []string{"Go"}, res.Skills.Added)
	assert.Nil(t, res.Skills.Resulting)
	assert.Equal(t, []string{"javascript", "Go"}, repo.profiles[uid].Skills)
}

func TestIngest_ReplaceWithNoSkillsClearsStoredSet(t *testing.T) {
	repo := newMemRepo()
	uid := uuid.New()
	repo.row(uid).Skills = []string{"Go", "SQL"}

	svc := NewService(repo, textDecoder{text: "Nothing technical here."})
	res, err := svc.Ingest(context.Background(), IngestInput{UserID: uid.String(), SkillsMode: "replace"})
	require.NoError(t, err)

	assert.Equal(t, SkillsReplace, res.Skills.Mode)
	assert.NotNil(t, res.Skills.Resulting)
	assert.Empty(t, res.Skills.Resulting)
	assert.Empty(t, repo.profiles[uid].Skills)
}

func TestIngest_AddWithoutSkillsDoesNotTouchSet(t *testing.T) {
	repo := newMemRepo()
	uid := uuid.New()
	repo.row(uid).Skills = []string{"Go"}
	repo.failOn = "get"

	svc := NewService(repo, textDecoder{text: "John Smith\nno skills listed"})
	res, err := svc.Ingest(context.Background(), IngestInput{UserID: uid.String(), SkillsMode: "add"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, res.Skills.Added)
	assert.Equal(t, []string{"Go"}, repo.profiles[uid].Skills)
}

func TestIngest_PatchHoldsOnlyFoundFields(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, textDecoder{text: "john@acme.com"})

	_, err := svc.Ingest(context.Background(), IngestInput{UserID: uuid.NewString()})
	require.NoError(t, err)
	require.Len(t, repo.patches, 1)

	p := repo.patches[0]
	require.NotNil(t, p.PersonalInfo)
	assert.Equal(t, "john@acme.com", p.PersonalInfo.Email)
	assert.Empty(t, p.PersonalInfo.FirstName)
}

func TestIngest_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   IngestInput
		dec  textDecoder
		want error
	}{
		{"missing user", IngestInput{UserID: "  "}, textDecoder{text: "x"}, ErrMissingUser},
		{"bad user", IngestInput{UserID: "not-a-uuid"}, textDecoder{text: "x"}, ErrInvalidUser},
		{"bad mode", IngestInput{UserID: uuid.NewString(), SkillsMode: "merge"}, textDecoder{text: "x"}, ErrInvalidMode},
		{"blank text", IngestInput{UserID: uuid.NewString()}, textDecoder{text: " \n\t"}, ErrEmptyText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemRepo()
			_, err := NewService(repo, tc.dec).Ingest(context.Background(), tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, repo.patches)
		})
	}
}

func TestIngest_DecodeErrorIsWrapped(t *testing.T) {
	sentinel := errors.New("unsupported")
	svc := NewService(newMemRepo(), textDecoder{err: sentinel})

	_, err := svc.Ingest(context.Background(), IngestInput{UserID: uuid.NewString()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
}

func TestIngest_StorageErrors(t *testing.T) {
	for _, op := range []string{"patch", "get", "union", "replace"} {
		t.Run(op, func(t *testing.T) {
			repo := newMemRepo()
			repo.failOn = op
			mode := "add"
			if op == "replace" {
				mode = "replace"
			}
			svc := NewService(repo, textDecoder{text: "Skills: Go"})
			_, err := svc.Ingest(context.Background(), IngestInput{UserID: uuid.NewString(), SkillsMode: mode})
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), op))
		})
	}
}

func TestIngest_ArchiveAndPublish(t *testing.T) {
	repo := newMemRepo()
	arch := &recArchiver{key: "resumes/x/y.pdf"}
	pub := &recPublisher{}
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	uid := uuid.New()

	svc := NewService(repo, textDecoder{text: "Skills: Go, SQL"},
		WithArchiver(arch), WithPublisher(pub), WithClock(func() time.Time { return at }))
	res, err := svc.Ingest(context.Background(), IngestInput{UserID: uid.String(), Filename: "cv.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "resumes/x/y.pdf", res.ArchiveKey)
	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, uid, ev.UserID)
	assert.Equal(t, SkillsAdd, ev.Mode)
	assert.Equal(t, []string{"Go", "SQL"}, ev.SkillsAdded)
	assert.Equal(t, "resumes/x/y.pdf", ev.ArchiveKey)
	assert.Equal(t, at, ev.IngestedAt)
}

func TestIngest_SideEffectFailuresAreNotFatal(t *testing.T) {
	arch := &recArchiver{err: errors.New("bucket down")}
	pub := &recPublisher{err: errors.New("broker down")}

	svc := NewService(newMemRepo(), textDecoder{text: "Skills: Go"}, WithArchiver(arch), WithPublisher(pub))
	res, err := svc.Ingest(context.Background(), IngestInput{UserID: uuid.NewString()})
	require.NoError(t, err)
	assert.Empty(t, res.ArchiveKey)
	assert.Equal(t, 1, arch.calls)
	assert.Len(t, pub.events, 1)
}

func TestGet(t *testing.T) {
	repo := newMemRepo()
	uid := uuid.New()
	repo.row(uid).ResumeSummary = "hello"
	svc := NewService(repo, textDecoder{})

	p, err := svc.Get(context.Background(), uid.String())
	require.NoError(t, err)
	assert.Equal(t, "hello", p.ResumeSummary)

	_, err = svc.Get(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.Get(context.Background(), "")
	assert.True(t, errors.Is(err, ErrMissingUser))
}

func TestList_NormalisesFilter(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, textDecoder{})

	items, err := svc.List(context.Background(), ListFilter{Skill: " k8s ", Limit: 1000, Offset: -3})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	require.Len(t, repo.filters, 1)
	assert.Equal(t, ListFilter{Skill: "Kubernetes", Limit: 200, Offset: 0}, repo.filters[0])

	_, err = svc.List(context.Background(), ListFilter{Skill: "cobol"})
	require.NoError(t, err)
	assert.Equal(t, ListFilter{Skill: "cobol", Limit: 50}, repo.filters[1])
}

func TestList_BySkill(t *testing.T) {
	repo := newMemRepo()
	a, b := uuid.New(), uuid.New()
	repo.row(a).Skills = []string{"kubernetes"}
	repo.row(b).Skills = []string{"Go"}

	items, err := NewService(repo, textDecoder{}).List(context.Background(), ListFilter{Skill: "k8s"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a, items[0].UserID)
}

func TestList_StorageError(t *testing.T) {
	repo := newMemRepo()
	repo.failOn = "list"
	_, err := NewService(repo, textDecoder{}).List(context.Background(), ListFilter{})
	assert.ErrorContains(t, err, "list profiles")
}
