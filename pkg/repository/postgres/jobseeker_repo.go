package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/artem13815/jobseeker/pkg/jobseeker"
	pgstore "github.com/artem13815/jobseeker/pkg/storage/postgres"
)

// JobseekerRepository хранит профили соискателей.
type JobseekerRepository struct {
	db  pgstore.DB
	now func() time.Time
}

var _ jobseeker.Repository = (*JobseekerRepository)(nil)

func NewJobseekerRepository(db pgstore.DB) (*JobseekerRepository, error) {
	r := &JobseekerRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobseekerRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobseekers (
	id UUID PRIMARY KEY,
	personal_info JSONB NOT NULL DEFAULT '{}'::jsonb,
	background_info JSONB NOT NULL DEFAULT '{}'::jsonb,
	resume_summary TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

// jsonArg returns nil for a nil record so SQL can tell "absent" from "{}".
func jsonArg[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ApplyPatch upserts the row. Present maps are merged key by key with
// jsonb ||, an empty summary keeps the stored one.
func (r *JobseekerRepository) ApplyPatch(ctx context.Context, userID uuid.UUID, patch jobseeker.Patch) error {
	personal, err := jsonArg(patch.PersonalInfo)
	if err != nil {
		return fmt.Errorf("encode personal_info: %w", err)
	}
	background, err := jsonArg(patch.BackgroundInfo)
	if err != nil {
		return fmt.Errorf("encode background_info: %w", err)
	}
	_, err = r.db.Exec(ctx, `
INSERT INTO jobseekers (id, personal_info, background_info, resume_summary, created_at, updated_at)
VALUES ($1, COALESCE($2::jsonb, '{}'::jsonb), COALESCE($3::jsonb, '{}'::jsonb), $4, $5, $5)
ON CONFLICT (id) DO UPDATE SET
	personal_info = jobseekers.personal_info || COALESCE($2::jsonb, '{}'::jsonb),
	background_info = jobseekers.background_info || COALESCE($3::jsonb, '{}'::jsonb),
	resume_summary = COALESCE(NULLIF($4::text, ''), jobseekers.resume_summary),
	updated_at = $5
`, userID, personal, background, patch.ResumeSummary, r.now())
	return err
}

func (r *JobseekerRepository) GetSkills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var skills []string
	err := r.db.QueryRow(ctx, `SELECT skills FROM jobseekers WHERE id = $1`, userID).Scan(&skills)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return skills, nil
}

func (r *JobseekerRepository) ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	_, err := r.db.Exec(ctx, `
INSERT INTO jobseekers (id, skills, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (id) DO UPDATE SET skills = EXCLUDED.skills, updated_at = EXCLUDED.updated_at
`, userID, skills, r.now())
	return err
}

// UnionSkills appends skills not yet present. The comparison happens inside
// the UPDATE, so a concurrent add that landed first keeps its casing and no
// case duplicate is written.
func (r *JobseekerRepository) UnionSkills(ctx context.Context, userID uuid.UUID, skills []string) (err error) {
	if len(skills) == 0 {
		return nil
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	now := r.now()
	if _, err = tx.Exec(ctx, `
INSERT INTO jobseekers (id, created_at, updated_at) VALUES ($1, $2, $2)
ON CONFLICT (id) DO NOTHING
`, userID, now); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `
UPDATE jobseekers SET skills = skills || ARRAY(
	SELECT t.s FROM unnest($2::text[]) WITH ORDINALITY AS t(s, ord)
	WHERE NOT EXISTS (
		SELECT 1 FROM unnest(jobseekers.skills) AS e WHERE lower(e) = lower(t.s)
	)
	ORDER BY t.ord
), updated_at = $3
WHERE id = $1
`, userID, skills, now); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const profileColumns = `id, personal_info, background_info, resume_summary, skills, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (jobseeker.Profile, error) {
	var p jobseeker.Profile
	if err := row.Scan(&p.UserID, &p.PersonalInfo, &p.BackgroundInfo, &p.ResumeSummary, &p.Skills, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return jobseeker.Profile{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (r *JobseekerRepository) Get(ctx context.Context, userID uuid.UUID) (jobseeker.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM jobseekers WHERE id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobseeker.Profile{}, jobseeker.ErrNotFound
		}
		return jobseeker.Profile{}, err
	}
	return p, nil
}

// List returns profiles ordered by last update. An empty skill matches all.
func (r *JobseekerRepository) List(ctx context.Context, f jobseeker.ListFilter) ([]jobseeker.Profile, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+profileColumns+`
FROM jobseekers
WHERE $1::text = '' OR EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE lower(s) = lower($1::text))
ORDER BY updated_at DESC, id
LIMIT $2 OFFSET $3
`, f.Skill, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []jobseeker.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
