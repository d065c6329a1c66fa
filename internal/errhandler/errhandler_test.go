package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/cybank/internal/service"
	"github.com/hance08/cybank/internal/store"
)

func TestMessageIsDistinctPerFailure(t *testing.T) {
	failures := []error{
		service.ErrSelfTransfer,
		fmt.Errorf("%w: balance 20.00, requested 25.00", service.ErrInsufficientFunds),
		fmt.Errorf("%w: %w", service.ErrInvalidSource, store.ErrOwnershipMismatch),
		fmt.Errorf("%w: %w", service.ErrInvalidSource, store.ErrRecordNotFound),
		fmt.Errorf("%w: %w", service.ErrInvalidDestination, store.ErrOwnershipMismatch),
		fmt.Errorf("%w: %w", service.ErrInvalidDestination, store.ErrRecordNotFound),
		fmt.Errorf("%w: disk full", service.ErrLogFailure),
		fmt.Errorf("%w: timeout", service.ErrSyncFailure),
		fmt.Errorf("%w: amount must be positive", service.ErrInvalidAmount),
		service.ErrInvalidCredentials,
		store.ErrUserExists,
	}

	seen := make(map[string]error)
	for _, err := range failures {
		msg := Message(err)
		if msg == "" {
			t.Errorf("empty message for %v", err)
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("%v and %v share message %q", prev, err, msg)
		}
		seen[msg] = err
	}
}

func TestMessageInvalidAmountKeepsDetail(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrInvalidAmount, errors.New("amount cannot exceed ₱999,999.99"))
	if got, want := Message(err), "Amount cannot exceed ₱999,999.99"; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestIsCancelled(t *testing.T) {
	if !IsCancelled(terminal.InterruptErr) {
		t.Error("survey interrupt not treated as cancel")
	}
	if !IsCancelled(fmt.Errorf("input cancelled: %w", huh.ErrUserAborted)) {
		t.Error("wrapped huh abort not treated as cancel")
	}
	if IsCancelled(service.ErrSelfTransfer) {
		t.Error("ordinary failure treated as cancel")
	}
}
