package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransferKind string

const (
	// TransferInternal moves value between two ledger accounts.
	TransferInternal TransferKind = "INTERNAL"
	// TransferExternal moves value from a ledger account to a linked bank.
	TransferExternal TransferKind = "EXTERNAL"
)

type TransferStatus string

const (
	TransferCompleted TransferStatus = "COMPLETED"
	TransferFailed    TransferStatus = "FAILED"
)

type Transfer struct {
	ID              string
	UserID          string
	Kind            TransferKind
	SourceID        string
	SourceName      string
	DestinationID   string
	DestinationName string
	Amount          decimal.Decimal
	Description     string
	Status          TransferStatus
	Reason          string
	CreatedAt       time.Time
}
