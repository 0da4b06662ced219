// internal/service/saga.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"trackhub/internal/util"
)

// compensationAttempts bounds how often a single rollback write is retried
// before the drift is reported as ErrCompensationFailed.
const compensationAttempts = 3

// compensation is a corrective write registered after a forward step of a
// multi-step mutation succeeded.
type compensation struct {
	name string
	fn   func(ctx context.Context) error
}

// saga tracks the forward progress of one ledger mutation against a store
// that offers no multi-statement atomicity. After each successful write the
// caller registers the write's inverse; when a later step fails, fail()
// unwinds the registered inverses in reverse order.
type saga struct {
	op     string
	logger *slog.Logger
	undo   []compensation
}

func newSaga(op string, logger *slog.Logger) *saga {
	return &saga{op: op, logger: logger}
}

// onRollback registers the inverse of the forward step that just succeeded.
func (s *saga) onRollback(name string, fn func(ctx context.Context) error) {
	s.undo = append(s.undo, compensation{name: name, fn: fn})
}

// fail unwinds all registered compensations in reverse order and returns the
// error to surface to the caller. Each compensation is retried up to
// compensationAttempts times; compensations that still fail are joined onto
// the original cause as ErrCompensationFailed rather than swallowed.
func (s *saga) fail(ctx context.Context, cause error) error {
	s.logger.Error("ledger mutation failed, compensating", "op", s.op, "steps", len(s.undo), "error", cause)

	var compErrs []error
	for i := len(s.undo) - 1; i >= 0; i-- {
		c := s.undo[i]
		var lastErr error
		for attempt := 1; attempt <= compensationAttempts; attempt++ {
			lastErr = c.fn(ctx)
			if lastErr == nil {
				break
			}
			s.logger.Warn("compensation attempt failed", "op", s.op, "step", c.name, "attempt", attempt, "error", lastErr)
		}
		if lastErr != nil {
			compErrs = append(compErrs, fmt.Errorf("%s: %w", c.name, lastErr))
		}
	}

	if len(compErrs) > 0 {
		s.logger.Error("compensation exhausted, balances may have drifted", "op", s.op, "failed_steps", len(compErrs))
		return errors.Join(cause, fmt.Errorf("%w: %w", util.ErrCompensationFailed, errors.Join(compErrs...)))
	}
	return cause
}
