package service

import (
	"fmt"

	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/store"
	"github.com/hance08/cybank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// TransactionService produces the non-transfer log entries: deposits and
// withdrawals against a single account.
type TransactionService struct {
	repo   store.Repository
	locks  *lockTable
	limits validation.AmountLimits
	logger *pterm.Logger
}

func NewTransactionService(repo store.Repository, locks *lockTable, limits validation.AmountLimits, logger *pterm.Logger) *TransactionService {
	return &TransactionService{repo: repo, locks: locks, limits: limits, logger: logger}
}

func (ts *TransactionService) Deposit(userID, accountID string, amount decimal.Decimal, description, category string) (*model.Transaction, error) {
	if description == "" {
		description = constants.DescDeposit
	}
	return ts.apply(userID, accountID, model.Credit(amount), amount, description, category)
}

// Withdraw fails with ErrInsufficientFunds when the balance is below the
// amount; withdrawing the whole balance is allowed.
func (ts *TransactionService) Withdraw(userID, accountID string, amount decimal.Decimal, description, category string) (*model.Transaction, error) {
	if description == "" {
		description = constants.DescWithdraw
	}
	return ts.apply(userID, accountID, model.Debit(amount), amount, description, category)
}

func (ts *TransactionService) apply(userID, accountID string, entry model.Entry, amount decimal.Decimal, description, category string) (*model.Transaction, error) {
	if err := ts.limits.Validate(amount); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	unlock := ts.locks.lock(accountKey(accountID))
	defer unlock()

	acc, err := ownedAccount(ts.repo, userID, accountID)
	if err != nil {
		return nil, err
	}
	if !entry.IsCredit() && acc.Balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s",
			ErrInsufficientFunds, acc.Balance.StringFixed(2), amount.StringFixed(2))
	}

	var txn *model.Transaction
	err = ts.repo.ExecTx(func(repo store.Repository) error {
		sg := newSaga(string(entry.Type()), ts.logger)

		if err := repo.SetAccountBalance(acc.ID, acc.Balance.Add(entry.Signed())); err != nil {
			return err
		}
		sg.onRollback("balance", func() error { return repo.SetAccountBalance(acc.ID, acc.Balance) })

		var err error
		txn, err = repo.RecordTransaction(acc.ID, entry, description, category)
		if err != nil {
			return sg.abort(fmt.Errorf("%w: %w", ErrLogFailure, err))
		}
		return nil
	})
	if err != nil {
		ts.logger.Warn("balance update rolled back", ts.logger.Args("account_id", acc.ID, "entry", entry.String(), "error", err))
		return nil, err
	}

	ts.logger.Info("balance updated", ts.logger.Args("account_id", acc.ID, "entry", entry.String()))
	return txn, nil
}

// History returns the account's log in creation order.
func (ts *TransactionService) History(userID, accountID string) ([]*model.Transaction, error) {
	if _, err := ownedAccount(ts.repo, userID, accountID); err != nil {
		return nil, err
	}
	return ts.repo.ListTransactions(accountID)
}
