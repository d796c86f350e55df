package health

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Status: результат проверки одной зависимости.
type Status struct {
	Name  string `json:"name" example:"postgres"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Report собирает статусы всех зависимостей в порядке регистрации.
type Report struct {
	Ready  bool     `json:"ready"`
	Checks []Status `json:"checks"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Check(ctx context.Context) Report
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped so
// optional dependencies can be passed unconditionally.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

// Check runs every checker concurrently; one slow dependency does not hide
// the state of the others.
func (s *service) Check(ctx context.Context) Report {
	statuses := make([]Status, len(s.checkers))
	// ошибки собираются в statuses, группа не отменяет соседние проверки
	var g errgroup.Group
	for i, ch := range s.checkers {
		i, ch := i, ch
		g.Go(func() error {
			st := Status{Name: ch.Name(), OK: true}
			if err := ch.Check(ctx); err != nil {
				st.OK, st.Error = false, err.Error()
			}
			statuses[i] = st
			return nil
		})
	}
	_ = g.Wait()

	rep := Report{Ready: true, Checks: statuses}
	for _, st := range statuses {
		if !st.OK {
			rep.Ready = false
		}
	}
	return rep
}
