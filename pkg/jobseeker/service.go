package jobseeker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artem13815/jobseeker/pkg/extract"
	"github.com/artem13815/jobseeker/pkg/nlp"
)

// TextDecoder turns an uploaded document into plain text.
type TextDecoder interface {
	Decode(filename, mimeType string, data []byte) (string, error)
}

// Archiver keeps a copy of the original upload and returns its key.
type Archiver interface {
	Archive(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (string, error)
}

// Publisher announces finished ingests.
type Publisher interface {
	PublishIngested(ctx context.Context, ev IngestedEvent) error
}

// IngestedEvent is the payload of the "resume.ingested" event.
type IngestedEvent struct {
	UserID      uuid.UUID  `json:"userId"`
	Mode        SkillsMode `json:"mode"`
	SkillsAdded []string   `json:"skillsAdded"`
	Skills      []string   `json:"skills,omitempty"`
	ArchiveKey  string     `json:"archiveKey,omitempty"`
	IngestedAt  time.Time  `json:"ingestedAt"`
}

type IngestInput struct {
	UserID     string
	SkillsMode string
	Filename   string
	MimeType   string
	Data       []byte
}

// SkillsApplied reports what happened to the stored skill set.
// Resulting is set in replace mode, Added in add mode.
type SkillsApplied struct {
	Mode      SkillsMode
	Resulting []string
	Added     []string
}

type IngestResult struct {
	UserID     uuid.UUID
	Parsed     extract.ParsedResume
	Skills     SkillsApplied
	ArchiveKey string
}

// UseCase describes the jobseeker profile use cases.
type UseCase interface {
	Ingest(ctx context.Context, in IngestInput) (IngestResult, error)
	Get(ctx context.Context, userID string) (Profile, error)
	List(ctx context.Context, f ListFilter) ([]Profile, error)
}

var _ UseCase = (*Service)(nil)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Option func(*Service)

func WithArchiver(a Archiver) Option { return func(s *Service) { s.archiver = a } }

func WithPublisher(p Publisher) Option { return func(s *Service) { s.publisher = p } }

func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

type Service struct {
	repo      Repository
	decoder   TextDecoder
	archiver  Archiver
	publisher Publisher
	log       zerolog.Logger
	now       func() time.Time
}

// NewService wires the ingest pipeline. Archiver and publisher are optional.
func NewService(repo Repository, decoder TextDecoder, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		decoder: decoder,
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func parseUserID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrMissingUser
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	return id, nil
}

// Ingest decodes an uploaded resume, parses it, merges the found fields into
// the user's profile and applies the requested skills policy.
func (s *Service) Ingest(ctx context.Context, in IngestInput) (IngestResult, error) {
	userID, err := parseUserID(in.UserID)
	if err != nil {
		return IngestResult{}, err
	}
	mode, err := ParseSkillsMode(in.SkillsMode)
	if err != nil {
		return IngestResult{}, err
	}

	text, err := s.decoder.Decode(in.Filename, in.MimeType, in.Data)
	if err != nil {
		return IngestResult{}, fmt.Errorf("decode resume: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return IngestResult{}, ErrEmptyText
	}

	parsed := extract.Parse(text)
	if err := s.repo.ApplyPatch(ctx, userID, PatchFrom(parsed)); err != nil {
		s.log.Error().Err(err).Str("user_id", userID.String()).Msg("apply profile patch")
		return IngestResult{}, fmt.Errorf("apply patch: %w", err)
	}

	applied, err := s.applySkills(ctx, userID, mode, nlp.DedupeFold(parsed.Skills))
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID.String()).Str("mode", string(mode)).Msg("apply skills")
		return IngestResult{}, err
	}

	res := IngestResult{UserID: userID, Parsed: parsed, Skills: applied}
	res.ArchiveKey = s.archive(ctx, userID, in)
	s.publish(ctx, res)

	s.log.Info().
		Str("user_id", userID.String()).
		Str("mode", string(mode)).
		Int("added", len(applied.Added)).
		Int("resulting", len(applied.Resulting)).
		Msg("resume ingested")
	return res, nil
}

func (s *Service) applySkills(ctx context.Context, userID uuid.UUID, mode SkillsMode, extracted []string) (SkillsApplied, error) {
	if mode == SkillsReplace {
		dec := MergeSkills(mode, extracted, nil)
		if err := s.repo.ReplaceSkills(ctx, userID, dec.Final); err != nil {
			return SkillsApplied{}, fmt.Errorf("replace skills: %w", err)
		}
		return SkillsApplied{Mode: mode, Resulting: dec.Final}, nil
	}

	applied := SkillsApplied{Mode: SkillsAdd, Added: []string{}}
	if len(extracted) == 0 {
		return applied, nil
	}
	existing, err := s.repo.GetSkills(ctx, userID)
	if err != nil {
		return SkillsApplied{}, fmt.Errorf("read skills: %w", err)
	}
	dec := MergeSkills(SkillsAdd, extracted, existing)
	if !dec.Write {
		return applied, nil
	}
	if err := s.repo.UnionSkills(ctx, userID, dec.ToAdd); err != nil {
		return SkillsApplied{}, fmt.Errorf("union skills: %w", err)
	}
	applied.Added = dec.ToAdd
	return applied, nil
}

// archive and publish are best effort: the profile is already written.
func (s *Service) archive(ctx context.Context, userID uuid.UUID, in IngestInput) string {
	if s.archiver == nil {
		return ""
	}
	key, err := s.archiver.Archive(ctx, userID, in.Filename, in.MimeType, in.Data)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("archive upload")
		return ""
	}
	return key
}

func (s *Service) publish(ctx context.Context, res IngestResult) {
	if s.publisher == nil {
		return
	}
	ev := IngestedEvent{
		UserID:      res.UserID,
		Mode:        res.Skills.Mode,
		SkillsAdded: res.Skills.Added,
		Skills:      res.Skills.Resulting,
		ArchiveKey:  res.ArchiveKey,
		IngestedAt:  s.now().UTC(),
	}
	if ev.SkillsAdded == nil {
		ev.SkillsAdded = []string{}
	}
	if err := s.publisher.PublishIngested(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("user_id", res.UserID.String()).Msg("publish ingest event")
	}
}

// Get returns the stored profile of a user.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return Profile{}, err
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, err
		}
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// List returns stored profiles, newest first. The skill filter goes through
// the alias table so "k8s" finds profiles holding "Kubernetes".
func (s *Service) List(ctx context.Context, f ListFilter) ([]Profile, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	f.Skill = strings.TrimSpace(f.Skill)
	if canon, ok := nlp.CanonicalSkill(f.Skill); ok {
		f.Skill = canon
	}
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if items == nil {
		items = []Profile{}
	}
	return items, nil
}
