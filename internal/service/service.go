package service

import (
	"fmt"
	"io"

	"github.com/hance08/cybank/internal/config"
	"github.com/hance08/cybank/internal/store"
	"github.com/hance08/cybank/internal/validation"
	"github.com/pterm/pterm"
)

type Service struct {
	User        *UserService
	Account     *AccountService
	LinkedBank  *LinkedBankService
	Transaction *TransactionService
	Transfer    *TransferService
	Report      *ReportService

	// Limits bounds every deposit and withdrawal amount.
	Limits validation.AmountLimits
}

// NewService wires every service onto one repository. Deposits, withdrawals
// and transfers share a lock table so they serialise on common accounts.
func NewService(repo store.Repository, cfg *config.Config, logger *pterm.Logger) (*Service, error) {
	if logger == nil {
		logger = DiscardLogger()
	}

	limits, err := validation.NewAmountLimits(cfg.Limits.MinAmount, cfg.Limits.MaxAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid limits config: %w", err)
	}

	locks := newLockTable()

	return &Service{
		User:        NewUserService(repo, logger),
		Account:     NewAccountService(repo),
		LinkedBank:  NewLinkedBankService(repo, logger),
		Transaction: NewTransactionService(repo, locks, limits, logger),
		Transfer:    NewTransferService(repo, locks, cfg.Transfer.RecordFailed, logger),
		Report:      NewReportService(repo),
		Limits:      limits,
	}, nil
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard).WithLevel(pterm.LogLevelDisabled)
}

// ParseLogLevel maps a config value to a pterm log level. Unknown values
// fall back to warn.
func ParseLogLevel(level string) pterm.LogLevel {
	switch level {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "error":
		return pterm.LogLevelError
	case "off", "disabled":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelWarn
	}
}
