package store

import (
	"time"

	"github.com/hance08/cybank/internal/model"
	"github.com/shopspring/decimal"
)

// AccountRepository owns ledger accounts. Balances are replaced, never
// adjusted: callers compute the new value and the store keeps it as given.
type AccountRepository interface {
	CreateAccount(userID, name string) (*model.Account, error)
	GetAccountByID(id string) (*model.Account, error)
	ListAccounts(userID string) ([]*model.Account, error)
	SetAccountBalance(id string, balance decimal.Decimal) error
}

type LinkedBankRepository interface {
	CreateLinkedBank(userID, bankName, accountNumber, accountType string, balance decimal.Decimal) (*model.LinkedBankAccount, error)
	GetLinkedBankByID(id string) (*model.LinkedBankAccount, error)
	ListLinkedBanks(userID string) ([]*model.LinkedBankAccount, error)
	// SetLinkedBankBalance replaces the balance and stamps LastSynced.
	SetLinkedBankBalance(id string, balance decimal.Decimal, syncedAt time.Time) error
	UnlinkBank(id, userID string) error
	TotalLinkedBalance(userID string) (decimal.Decimal, error)
}

// TransactionRepository is the append-only per-account transaction log.
type TransactionRepository interface {
	RecordTransaction(accountID string, entry model.Entry, description, category string) (*model.Transaction, error)
	ListTransactions(accountID string) ([]*model.Transaction, error)
}

// TransferRepository is the append-only transfer history.
type TransferRepository interface {
	RecordTransfer(transfer *model.Transfer) error
	ListTransfers(userID string) ([]*model.Transfer, error)
	GetTransfer(id string) (*model.Transfer, error)
}

type UserRepository interface {
	CreateUser(username, passwordHash, fullName, email string) (*model.User, error)
	GetUserByID(id string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
}

type Repository interface {
	AccountRepository
	LinkedBankRepository
	TransactionRepository
	TransferRepository
	UserRepository

	// ExecTx runs fn against a repository bound to a single unit of work.
	// Backends with real transactions commit when fn returns nil and roll
	// back otherwise; the memory backend runs fn as is.
	ExecTx(fn func(Repository) error) error
	Close() error
}
