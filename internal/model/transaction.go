package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryCredit EntryType = "CREDIT"
	EntryDebit  EntryType = "DEBIT"
)

// Entry is the balance effect of a Transaction. The amount is always a
// positive magnitude; the direction lives only in the type, so the signed
// amount can never disagree with it.
type Entry struct {
	kind   EntryType
	amount decimal.Decimal
}

func Credit(amount decimal.Decimal) Entry {
	return Entry{kind: EntryCredit, amount: amount.Abs()}
}

func Debit(amount decimal.Decimal) Entry {
	return Entry{kind: EntryDebit, amount: amount.Abs()}
}

// EntryFromSigned rebuilds an Entry from a stored signed amount.
func EntryFromSigned(signed decimal.Decimal) Entry {
	if signed.IsNegative() {
		return Debit(signed)
	}
	return Credit(signed)
}

// ParseEntry rebuilds an Entry from a stored type tag and magnitude.
func ParseEntry(kind string, amount decimal.Decimal) (Entry, error) {
	switch EntryType(kind) {
	case EntryCredit:
		return Credit(amount), nil
	case EntryDebit:
		return Debit(amount), nil
	default:
		return Entry{}, fmt.Errorf("unknown entry type %q", kind)
	}
}

func (e Entry) Type() EntryType         { return e.kind }
func (e Entry) Amount() decimal.Decimal { return e.amount }
func (e Entry) IsCredit() bool          { return e.kind == EntryCredit }

// Signed returns the amount with credit positive and debit negative.
func (e Entry) Signed() decimal.Decimal {
	if e.kind == EntryDebit {
		return e.amount.Neg()
	}
	return e.amount
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.kind, e.Signed().StringFixed(2))
}

type Transaction struct {
	ID          string
	AccountID   string
	Entry       Entry
	Description string
	Category    string
	CreatedAt   time.Time
}
