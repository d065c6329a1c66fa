package service

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
)

// saga collects compensations for applied steps. abort runs them newest
// first and folds any compensation error into the step error.
type saga struct {
	name          string
	compensations []compensation
	logger        *pterm.Logger
}

type compensation struct {
	step string
	undo func() error
}

func newSaga(name string, logger *pterm.Logger) *saga {
	return &saga{name: name, logger: logger}
}

func (s *saga) onRollback(step string, undo func() error) {
	s.compensations = append(s.compensations, compensation{step: step, undo: undo})
}

func (s *saga) abort(cause error) error {
	errs := []error{cause}
	for i := len(s.compensations) - 1; i >= 0; i-- {
		c := s.compensations[i]
		if err := c.undo(); err != nil {
			s.logger.Error("compensation failed", s.logger.Args("operation", s.name, "step", c.step, "error", err))
			errs = append(errs, fmt.Errorf("rollback %s: %w", c.step, err))
			continue
		}
		s.logger.Debug("compensated", s.logger.Args("operation", s.name, "step", c.step))
	}
	s.compensations = nil

	if len(errs) == 1 {
		return cause
	}
	return errors.Join(errs...)
}
