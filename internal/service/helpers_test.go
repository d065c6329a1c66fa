package service

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/hance08/cybank/internal/config"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/store"
	"github.com/shopspring/decimal"
)

var errInjected = errors.New("injected failure")

// faults is shared by every wrapper created from one faultyRepo so counts
// survive ExecTx.
type faults struct {
	failRecordOn int // 1-based RecordTransaction call to fail, 0 for never
	recordCalls  int
	failSync     bool
	failRestore  bool // fail every SetAccountBalance after the first
	setCalls     int
}

type faultyRepo struct {
	store.Repository
	f *faults
}

func (r faultyRepo) ExecTx(fn func(store.Repository) error) error {
	return r.Repository.ExecTx(func(tx store.Repository) error {
		return fn(faultyRepo{Repository: tx, f: r.f})
	})
}

func (r faultyRepo) RecordTransaction(accountID string, entry model.Entry, description, category string) (*model.Transaction, error) {
	r.f.recordCalls++
	if r.f.recordCalls == r.f.failRecordOn {
		return nil, errInjected
	}
	return r.Repository.RecordTransaction(accountID, entry, description, category)
}

func (r faultyRepo) SetAccountBalance(id string, balance decimal.Decimal) error {
	r.f.setCalls++
	if r.f.failRestore && r.f.setCalls > 1 {
		return errInjected
	}
	return r.Repository.SetAccountBalance(id, balance)
}

func (r faultyRepo) SetLinkedBankBalance(id string, balance decimal.Decimal, syncedAt time.Time) error {
	if r.f.failSync {
		return errInjected
	}
	return r.Repository.SetLinkedBankBalance(id, balance, syncedAt)
}

type backend struct {
	name string
	open func(t *testing.T) store.Repository
}

func backends() []backend {
	return []backend{
		{"memory", func(t *testing.T) store.Repository { return store.NewMemoryStore() }},
		{"sqlite", func(t *testing.T) store.Repository {
			t.Helper()
			s, err := store.NewSQLiteStore(store.MemoryDSN, os.DirFS("../.."))
			if err != nil {
				t.Fatalf("NewSQLiteStore: %v", err)
			}
			t.Cleanup(func() { s.Close() })
			return s
		}},
	}
}

func newTestService(t *testing.T, repo store.Repository) *Service {
	t.Helper()
	svc, err := NewService(repo, config.NewDefault(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedAccount creates an account for userID and sets its balance directly.
func seedAccount(t *testing.T, repo store.Repository, userID, name, balance string) *model.Account {
	t.Helper()
	acc, err := repo.CreateAccount(userID, name)
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if err := repo.SetAccountBalance(acc.ID, dec(balance)); err != nil {
		t.Fatalf("SetAccountBalance: %v", err)
	}
	acc.Balance = dec(balance)
	return acc
}

func balanceOf(t *testing.T, repo store.Repository, accountID string) decimal.Decimal {
	t.Helper()
	acc, err := repo.GetAccountByID(accountID)
	if err != nil {
		t.Fatalf("GetAccountByID: %v", err)
	}
	return acc.Balance
}

func assertBalance(t *testing.T, repo store.Repository, accountID, want string) {
	t.Helper()
	if got := balanceOf(t, repo, accountID); !got.Equal(dec(want)) {
		t.Errorf("balance of %s = %s, want %s", accountID, got.StringFixed(2), want)
	}
}

func logLen(t *testing.T, repo store.Repository, accountID string) int {
	t.Helper()
	log, err := repo.ListTransactions(accountID)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	return len(log)
}
