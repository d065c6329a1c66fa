package errhandler

import (
	"context"
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/cybank/internal/service"
	"github.com/hance08/cybank/internal/store"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}

// Message maps an operation failure to the text shown to the user. Each
// failure kind gets its own message; unknown errors fall back to err itself.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case IsCancelled(err):
		return "Operation cancelled"
	case errors.Is(err, service.ErrSelfTransfer):
		return "Cannot transfer to the same account"
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient funds for this transfer"
	case errors.Is(err, service.ErrInvalidSource) && errors.Is(err, store.ErrOwnershipMismatch):
		return "The source account belongs to another user"
	case errors.Is(err, service.ErrInvalidSource):
		return "Source account not found"
	case errors.Is(err, service.ErrInvalidDestination) && errors.Is(err, store.ErrOwnershipMismatch):
		return "The destination account belongs to another user"
	case errors.Is(err, service.ErrInvalidDestination):
		return "Destination account not found"
	case errors.Is(err, service.ErrLogFailure):
		return "Could not record the transaction; no money was moved"
	case errors.Is(err, service.ErrSyncFailure):
		return "Could not update the linked bank account; no money was moved"
	case errors.Is(err, service.ErrInvalidAmount):
		return capitalize(strings.TrimPrefix(err.Error(), service.ErrInvalidAmount.Error()+": "))
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, store.ErrUserExists):
		return "Username already exists"
	case errors.Is(err, store.ErrOwnershipMismatch):
		return "That record belongs to another user"
	case errors.Is(err, store.ErrRecordNotFound):
		return "Record not found"
	default:
		return capitalize(err.Error())
	}
}

// HandleError prints err for the user. A cancelled prompt is a warning,
// never a crash.
func HandleError(err error) {
	if err == nil {
		return
	}
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return
	}

	pterm.Error.Println(Message(err))
}

// Fatal prints err and exits. Interrupts exit cleanly.
func Fatal(err error) {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Message(err))
	os.Exit(1)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
