package service

import (
	"errors"
	"testing"

	"github.com/hance08/cybank/internal/store"
)

func TestLinkedBankLifecycle(t *testing.T) {
	repo := store.NewMemoryStore()
	svc := newTestService(t, repo)

	bank, err := svc.LinkedBank.Link("u1", "BDO", "1234567890", "Savings", dec("1500"))
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if bank.AccountType != "savings" {
		t.Errorf("account type = %q, want normalized savings", bank.AccountType)
	}
	svc.LinkedBank.Link("u1", "BPI", "12345678", "checking", dec("500"))

	total, err := svc.LinkedBank.TotalBalance("u1")
	if err != nil {
		t.Fatalf("TotalBalance: %v", err)
	}
	if !total.Equal(dec("2000")) {
		t.Errorf("total = %s, want 2000", total)
	}

	if _, err := svc.LinkedBank.Get("u2", bank.ID); !errors.Is(err, store.ErrOwnershipMismatch) {
		t.Errorf("foreign Get err = %v, want ErrOwnershipMismatch", err)
	}
	if err := svc.LinkedBank.Unlink("u2", bank.ID); !errors.Is(err, store.ErrOwnershipMismatch) {
		t.Errorf("foreign Unlink err = %v, want ErrOwnershipMismatch", err)
	}
	if err := svc.LinkedBank.Unlink("u1", bank.ID); err != nil {
		t.Fatalf("Unlink: %v", err)
	}

	banks, _ := svc.LinkedBank.List("u1")
	if len(banks) != 1 || banks[0].BankName != "BPI" {
		t.Errorf("List after unlink = %+v", banks)
	}
}

func TestLinkValidation(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())

	tests := []struct {
		name, bank, number, accType, initial string
	}{
		{"unsupported bank", "Chase", "12345678", "savings", "0"},
		{"short number", "BDO", "1234", "savings", "0"},
		{"letters in number", "BDO", "1234abcd", "savings", "0"},
		{"unknown type", "BDO", "12345678", "crypto", "0"},
		{"negative balance", "BDO", "12345678", "savings", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.LinkedBank.Link("u1", tt.bank, tt.number, tt.accType, dec(tt.initial)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
