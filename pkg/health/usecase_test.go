package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/jobseeker/pkg/health/checkers"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubProbe struct{ err error }

func (s stubProbe) Check(context.Context) error { return s.err }

func TestCheck_Ready(t *testing.T) {
	rep := NewService(
		checkers.NewPostgresChecker(stubPinger{}),
		checkers.NewDependencyChecker("minio", stubProbe{}),
	).Check(context.Background())
	assert.True(t, rep.Ready)
	assert.Equal(t, []Status{{Name: "postgres", OK: true}, {Name: "minio", OK: true}}, rep.Checks)
}

func TestCheck_ReportsEveryDependency(t *testing.T) {
	svc := NewService(
		checkers.NewPostgresChecker(stubPinger{err: errors.New("timeout")}),
		checkers.NewDependencyChecker("minio", stubProbe{}),
		checkers.NewDependencyChecker("rabbitmq", stubProbe{err: errors.New("closed")}),
	)
	rep := svc.Check(context.Background())
	assert.False(t, rep.Ready)
	assert.Equal(t, []Status{
		{Name: "postgres", OK: false, Error: "timeout"},
		{Name: "minio", OK: true},
		{Name: "rabbitmq", OK: false, Error: "closed"},
	}, rep.Checks)
}

func TestNewService_SkipsNil(t *testing.T) {
	var missing Checker
	s := NewService(missing, checkers.NewPostgresChecker(stubPinger{}))
	rep := s.Check(context.Background())
	assert.True(t, rep.Ready)
	assert.Len(t, rep.Checks, 1)
}

func TestCheck_NoCheckers(t *testing.T) {
	rep := NewService().Check(context.Background())
	assert.True(t, rep.Ready)
	assert.Empty(t, rep.Checks)
}

type slowProbe struct {
	started chan struct{}
	release chan struct{}
}

func (p slowProbe) Check(ctx context.Context) error {
	close(p.started)
	select {
	case <-p.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestCheck_RunsConcurrently(t *testing.T) {
	slow := slowProbe{started: make(chan struct{}), release: make(chan struct{})}
	// второй чекер отпускает первый: последовательный запуск упёрся бы в таймаут
	svc := NewService(
		checkers.NewDependencyChecker("minio", slow),
		checkers.NewDependencyChecker("rabbitmq", releaseProbe{slow: slow}),
	)
	rep := svc.Check(context.Background())
	assert.True(t, rep.Ready, "%+v", rep.Checks)
	assert.Equal(t, "minio", rep.Checks[0].Name)
	assert.Equal(t, "rabbitmq", rep.Checks[1].Name)
}

type releaseProbe struct{ slow slowProbe }

func (p releaseProbe) Check(ctx context.Context) error {
	select {
	case <-p.slow.started:
		close(p.slow.release)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
