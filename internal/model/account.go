package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountStatusActive = "ACTIVE"
	AccountStatusClosed = "CLOSED"
)

type Account struct {
	ID        string
	UserID    string
	Name      string
	Balance   decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// LinkedBankAccount is a local mock of an account held at an external bank.
// It has a balance but no transaction log.
type LinkedBankAccount struct {
	ID            string
	UserID        string
	BankName      string
	AccountNumber string
	AccountType   string
	Balance       decimal.Decimal
	LastSynced    time.Time
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Email        string
	CreatedAt    time.Time
}
