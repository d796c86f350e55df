// Package checkers adapts infrastructure clients to health.Checker.
package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe is anything that can report its own health, such as the object
// archive or the event publisher.
type Probe interface {
	Check(ctx context.Context) error
}

// Checker gives a probe a name and its own deadline.
type Checker struct {
	name    string
	timeout time.Duration
	check   func(ctx context.Context) error
}

func (c *Checker) Name() string { return c.name }

func (c *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.check(ctx)
}

func NewPostgresChecker(db Pinger) *Checker {
	return &Checker{name: "postgres", timeout: time.Second, check: db.Ping}
}

func NewDependencyChecker(name string, probe Probe) *Checker {
	return &Checker{name: name, timeout: 2 * time.Second, check: probe.Check}
}
