package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// TransferService moves value between two balances. Every transfer runs
// as a saga inside one repository unit of work: validate, debit the
// source, log it, credit the destination, log it. A failure after the
// first mutation restores the pre-transfer balances in reverse order.
type TransferService struct {
	repo         store.Repository
	locks        *lockTable
	recordFailed bool
	logger       *pterm.Logger
	now          func() time.Time
}

func NewTransferService(repo store.Repository, locks *lockTable, recordFailed bool, logger *pterm.Logger) *TransferService {
	return &TransferService{
		repo:         repo,
		locks:        locks,
		recordFailed: recordFailed,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// TransferBetweenAccounts moves amount from one of the user's ledger
// accounts to another.
func (s *TransferService) TransferBetweenAccounts(ctx context.Context, userID, fromID, toID string, amount decimal.Decimal, description string) (*model.Transfer, error) {
	// Self-transfer is rejected whatever the amount or balance.
	if fromID == toID {
		return nil, ErrSelfTransfer
	}
	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(accountKey(fromID), accountKey(toID))
	defer unlock()

	src, err := ownedAccount(s.repo, userID, fromID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}
	if err := checkFunds(src, amount); err != nil {
		return nil, err
	}
	dst, err := ownedAccount(s.repo, userID, toID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if description == "" {
		description = constants.DescTransferInternal
	}
	transfer := &model.Transfer{
		UserID:          userID,
		Kind:            model.TransferInternal,
		SourceID:        src.ID,
		SourceName:      src.Name,
		DestinationID:   dst.ID,
		DestinationName: dst.Name,
		Amount:          amount,
		Description:     description,
		Status:          model.TransferCompleted,
	}

	err = s.repo.ExecTx(func(repo store.Repository) error {
		sg := newSaga("internal transfer", s.logger)

		if err := s.debit(repo, sg, src, amount, "Transfer to "+dst.Name); err != nil {
			return err
		}

		if err := repo.SetAccountBalance(dst.ID, dst.Balance.Add(amount)); err != nil {
			return sg.abort(fmt.Errorf("credit destination: %w", err))
		}
		sg.onRollback("credit destination", func() error {
			return repo.SetAccountBalance(dst.ID, dst.Balance)
		})

		if _, err := repo.RecordTransaction(dst.ID, model.Credit(amount), "Transfer from "+src.Name, constants.CategoryTransfer); err != nil {
			return sg.abort(fmt.Errorf("%w: %w", ErrLogFailure, err))
		}

		return s.complete(repo, sg, transfer)
	})
	if err != nil {
		s.fail(transfer, err)
		return nil, err
	}

	s.logger.Info("transfer completed", s.logger.Args(
		"transfer_id", transfer.ID, "kind", transfer.Kind, "from", src.ID, "to", dst.ID, "amount", amount.StringFixed(2)))
	return transfer, nil
}

// TransferToLinkedBank moves amount from a ledger account to one of the
// user's linked bank accounts. The external side keeps no log; its balance
// and sync time are updated together.
func (s *TransferService) TransferToLinkedBank(ctx context.Context, userID, fromID, linkedID string, amount decimal.Decimal, description string) (*model.Transfer, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(accountKey(fromID), linkedKey(linkedID))
	defer unlock()

	src, err := ownedAccount(s.repo, userID, fromID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}
	if err := checkFunds(src, amount); err != nil {
		return nil, err
	}
	bank, err := ownedLinkedBank(s.repo, userID, linkedID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if description == "" {
		description = constants.DescTransferExternal
	}
	bankLabel := fmt.Sprintf("%s (%s)", bank.BankName, bank.AccountNumber)
	transfer := &model.Transfer{
		UserID:          userID,
		Kind:            model.TransferExternal,
		SourceID:        src.ID,
		SourceName:      src.Name,
		DestinationID:   bank.ID,
		DestinationName: bankLabel,
		Amount:          amount,
		Description:     description,
		Status:          model.TransferCompleted,
	}

	err = s.repo.ExecTx(func(repo store.Repository) error {
		sg := newSaga("external transfer", s.logger)

		if err := s.debit(repo, sg, src, amount, "Transfer to "+bankLabel); err != nil {
			return err
		}

		if err := repo.SetLinkedBankBalance(bank.ID, bank.Balance.Add(amount), s.now()); err != nil {
			return sg.abort(fmt.Errorf("%w: %w", ErrSyncFailure, err))
		}
		sg.onRollback("sync linked bank", func() error {
			return repo.SetLinkedBankBalance(bank.ID, bank.Balance, bank.LastSynced)
		})

		return s.complete(repo, sg, transfer)
	})
	if err != nil {
		s.fail(transfer, err)
		return nil, err
	}

	s.logger.Info("transfer completed", s.logger.Args(
		"transfer_id", transfer.ID, "kind", transfer.Kind, "from", src.ID, "to", bank.ID, "amount", amount.StringFixed(2)))
	return transfer, nil
}

// History lists the user's transfers in the order they were recorded.
func (s *TransferService) History(userID string) ([]*model.Transfer, error) {
	return s.repo.ListTransfers(userID)
}

func (s *TransferService) GetTransfer(userID, transferID string) (*model.Transfer, error) {
	t, err := s.repo.GetTransfer(transferID)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, fmt.Errorf("transfer with ID %s: %w", transferID, store.ErrOwnershipMismatch)
	}
	return t, nil
}

// checkAmount only requires a positive amount. The deposit limits do not
// apply, so any balance can be moved in full.
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	return nil
}

func checkFunds(src *model.Account, amount decimal.Decimal) error {
	if src.Balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s, requested %s",
			ErrInsufficientFunds, src.Balance.StringFixed(2), amount.StringFixed(2))
	}
	return nil
}

// debit applies and logs the source side, registering its compensation.
func (s *TransferService) debit(repo store.Repository, sg *saga, src *model.Account, amount decimal.Decimal, logDesc string) error {
	if err := repo.SetAccountBalance(src.ID, src.Balance.Sub(amount)); err != nil {
		return fmt.Errorf("debit source: %w", err)
	}
	sg.onRollback("debit source", func() error {
		return repo.SetAccountBalance(src.ID, src.Balance)
	})

	if _, err := repo.RecordTransaction(src.ID, model.Debit(amount), logDesc, constants.CategoryTransfer); err != nil {
		return sg.abort(fmt.Errorf("%w: %w", ErrLogFailure, err))
	}
	return nil
}

func (s *TransferService) complete(repo store.Repository, sg *saga, transfer *model.Transfer) error {
	transfer.CreatedAt = s.now()
	if err := repo.RecordTransfer(transfer); err != nil {
		return sg.abort(fmt.Errorf("record transfer: %w", err))
	}
	return nil
}

// fail records a FAILED transfer for an attempt that was rolled back after
// its first mutation. It runs outside the aborted unit of work.
func (s *TransferService) fail(transfer *model.Transfer, cause error) {
	s.logger.Warn("transfer rolled back", s.logger.Args(
		"kind", transfer.Kind, "from", transfer.SourceID, "to", transfer.DestinationID, "error", cause))

	if !s.recordFailed {
		return
	}

	failed := *transfer
	failed.ID = ""
	failed.Status = model.TransferFailed
	failed.Reason = cause.Error()
	failed.CreatedAt = s.now()
	if err := s.repo.RecordTransfer(&failed); err != nil {
		s.logger.Error("failed to record failed transfer", s.logger.Args("error", err))
	}
}
