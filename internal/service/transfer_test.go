package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/store"
)

func TestTransferBetweenAccounts(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			svc := newTestService(t, repo)
			x := seedAccount(t, repo, "u1", "Checking", "100")
			y := seedAccount(t, repo, "u1", "Savings", "0")

			if _, err := svc.Transaction.Deposit("u1", x.ID, dec("50"), "", ""); err != nil {
				t.Fatalf("Deposit: %v", err)
			}
			assertBalance(t, repo, x.ID, "150")

			tr, err := svc.Transfer.TransferBetweenAccounts(context.Background(), "u1", x.ID, y.ID, dec("150"), "")
			if err != nil {
				t.Fatalf("TransferBetweenAccounts: %v", err)
			}

			assertBalance(t, repo, x.ID, "0")
			assertBalance(t, repo, y.ID, "150")

			if tr.Status != model.TransferCompleted || tr.Kind != model.TransferInternal {
				t.Errorf("transfer = %+v, want COMPLETED INTERNAL", tr)
			}
			if tr.Description != "Transfer between accounts" {
				t.Errorf("description = %q, want default", tr.Description)
			}

			xLog, _ := repo.ListTransactions(x.ID)
			if len(xLog) != 2 {
				t.Fatalf("source log has %d entries, want 2", len(xLog))
			}
			if xLog[0].Entry.Type() != model.EntryCredit || !xLog[0].Entry.Signed().Equal(dec("50")) {
				t.Errorf("deposit entry = %s, want CREDIT +50", xLog[0].Entry)
			}
			if xLog[1].Entry.Type() != model.EntryDebit || !xLog[1].Entry.Signed().Equal(dec("-150")) {
				t.Errorf("debit entry = %s, want DEBIT -150", xLog[1].Entry)
			}
			if xLog[1].Description != "Transfer to Savings" {
				t.Errorf("debit description = %q", xLog[1].Description)
			}

			yLog, _ := repo.ListTransactions(y.ID)
			if len(yLog) != 1 || !yLog[0].Entry.Signed().Equal(dec("150")) || yLog[0].Description != "Transfer from Checking" {
				t.Errorf("destination log = %+v", yLog)
			}

			history, _ := svc.Transfer.History("u1")
			if len(history) != 1 || history[0].ID != tr.ID || history[0].Status != model.TransferCompleted {
				t.Errorf("history = %+v", history)
			}
		})
	}
}

func TestTransferValidationFailuresLeaveNoTrace(t *testing.T) {
	ctx := context.Background()

	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			svc := newTestService(t, repo)
			x := seedAccount(t, repo, "u1", "Checking", "20")
			y := seedAccount(t, repo, "u1", "Savings", "5")
			other := seedAccount(t, repo, "u2", "Theirs", "1000")

			tests := []struct {
				name    string
				from    string
				to      string
				amount  string
				wantErr []error
			}{
				{"insufficient funds", x.ID, y.ID, "25", []error{ErrInsufficientFunds}},
				{"one cent over", x.ID, y.ID, "20.01", []error{ErrInsufficientFunds}},
				{"self transfer", x.ID, x.ID, "10", []error{ErrSelfTransfer}},
				{"self transfer without funds", x.ID, x.ID, "500", []error{ErrSelfTransfer}},
				{"source owned by another user", other.ID, y.ID, "10", []error{ErrInvalidSource, store.ErrOwnershipMismatch}},
				{"destination owned by another user", x.ID, other.ID, "10", []error{ErrInvalidDestination, store.ErrOwnershipMismatch}},
				{"unknown source", "missing", y.ID, "10", []error{ErrInvalidSource, store.ErrRecordNotFound}},
				{"unknown destination", x.ID, "missing", "10", []error{ErrInvalidDestination, store.ErrRecordNotFound}},
				{"zero amount", x.ID, y.ID, "0", []error{ErrInvalidAmount}},
				{"negative amount", x.ID, y.ID, "-5", []error{ErrInvalidAmount}},
				{"self transfer above the deposit cap", x.ID, x.ID, "1000000", []error{ErrSelfTransfer}},
				{"self transfer of zero", x.ID, x.ID, "0", []error{ErrSelfTransfer}},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					_, err := svc.Transfer.TransferBetweenAccounts(ctx, "u1", tt.from, tt.to, dec(tt.amount), "")
					for _, want := range tt.wantErr {
						if !errors.Is(err, want) {
							t.Errorf("err = %v, want errors.Is %v", err, want)
						}
					}
				})
			}

			assertBalance(t, repo, x.ID, "20")
			assertBalance(t, repo, y.ID, "5")
			assertBalance(t, repo, other.ID, "1000")
			for _, id := range []string{x.ID, y.ID, other.ID} {
				if n := logLen(t, repo, id); n != 0 {
					t.Errorf("account %s has %d log entries, want 0", id, n)
				}
			}
			if history, _ := svc.Transfer.History("u1"); len(history) != 0 {
				t.Errorf("validation failures were recorded: %+v", history)
			}
		})
	}
}

func TestTransferExactBalanceSucceeds(t *testing.T) {
	repo := store.NewMemoryStore()
	svc := newTestService(t, repo)
	x := seedAccount(t, repo, "u1", "Checking", "20")
	y := seedAccount(t, repo, "u1", "Savings", "0")

	if _, err := svc.Transfer.TransferBetweenAccounts(context.Background(), "u1", x.ID, y.ID, dec("20"), ""); err != nil {
		t.Fatalf("transfer of the full balance failed: %v", err)
	}
	assertBalance(t, repo, x.ID, "0")
	assertBalance(t, repo, y.ID, "20")
}

func TestTransferFullBalanceAboveDepositCap(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			svc := newTestService(t, repo)
			ctx := context.Background()
			x := seedAccount(t, repo, "u1", "Checking", "1500000.00")
			y := seedAccount(t, repo, "u1", "Savings", "0")

			tr, err := svc.Transfer.TransferBetweenAccounts(ctx, "u1", x.ID, y.ID, dec("1500000.00"), "")
			if err != nil {
				t.Fatalf("transfer of the full balance failed: %v", err)
			}
			if !tr.Amount.Equal(dec("1500000")) {
				t.Errorf("amount = %s, want 1500000", tr.Amount)
			}
			assertBalance(t, repo, x.ID, "0")
			assertBalance(t, repo, y.ID, "1500000")

			bank, err := repo.CreateLinkedBank("u1", "BDO", "12345678", "savings", dec("0"))
			if err != nil {
				t.Fatalf("CreateLinkedBank: %v", err)
			}
			if _, err := svc.Transfer.TransferToLinkedBank(ctx, "u1", y.ID, bank.ID, dec("1500000.00"), ""); err != nil {
				t.Fatalf("linked transfer of the full balance failed: %v", err)
			}
			assertBalance(t, repo, y.ID, "0")
			got, err := repo.GetLinkedBankByID(bank.ID)
			if err != nil {
				t.Fatalf("GetLinkedBankByID: %v", err)
			}
			if !got.Balance.Equal(dec("1500000")) {
				t.Errorf("linked balance = %s, want 1500000", got.Balance)
			}
		})
	}
}

func TestTransferRollsBackOnLogFailure(t *testing.T) {
	tests := []struct {
		name         string
		failRecordOn int
	}{
		{"debit log fails", 1},
		{"credit log fails", 2},
	}

	for _, b := range backends() {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				base := b.open(t)
				f := &faults{}
				repo := faultyRepo{Repository: base, f: f}
				svc := newTestService(t, repo)
				x := seedAccount(t, base, "u1", "Checking", "100")
				y := seedAccount(t, base, "u1", "Savings", "40")

				f.failRecordOn = tt.failRecordOn
				_, err := svc.Transfer.TransferBetweenAccounts(context.Background(), "u1", x.ID, y.ID, dec("60"), "")
				if !errors.Is(err, ErrLogFailure) || !errors.Is(err, errInjected) {
					t.Fatalf("err = %v, want ErrLogFailure wrapping the injected error", err)
				}

				assertBalance(t, base, x.ID, "100")
				assertBalance(t, base, y.ID, "40")
				if n := logLen(t, base, y.ID); n != 0 {
					t.Errorf("destination has %d log entries, want 0", n)
				}

				history, _ := svc.Transfer.History("u1")
				if len(history) != 1 {
					t.Fatalf("history has %d transfers, want 1 FAILED", len(history))
				}
				if history[0].Status != model.TransferFailed || history[0].Reason == "" {
					t.Errorf("recorded transfer = %+v, want FAILED with a reason", history[0])
				}
				if !history[0].Amount.Equal(dec("60")) || history[0].SourceID != x.ID || history[0].DestinationID != y.ID {
					t.Errorf("recorded transfer endpoints = %+v", history[0])
				}
			})
		}
	}
}

func TestTransferToLinkedBank(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			svc := newTestService(t, repo)
			x := seedAccount(t, repo, "u1", "Checking", "500")
			bank, err := repo.CreateLinkedBank("u1", "BDO", "12345678", "savings", dec("1000"))
			if err != nil {
				t.Fatalf("CreateLinkedBank: %v", err)
			}

			tr, err := svc.Transfer.TransferToLinkedBank(context.Background(), "u1", x.ID, bank.ID, dec("200"), "")
			if err != nil {
				t.Fatalf("TransferToLinkedBank: %v", err)
			}

			assertBalance(t, repo, x.ID, "300")
			got, _ := repo.GetLinkedBankByID(bank.ID)
			if !got.Balance.Equal(dec("1200")) {
				t.Errorf("linked balance = %s, want 1200", got.Balance)
			}
			if got.LastSynced.Before(bank.LastSynced) {
				t.Errorf("LastSynced went backwards: %v < %v", got.LastSynced, bank.LastSynced)
			}

			if tr.Kind != model.TransferExternal || tr.Description != "Transfer to external bank" {
				t.Errorf("transfer = %+v", tr)
			}
			log, _ := repo.ListTransactions(x.ID)
			if len(log) != 1 || log[0].Description != "Transfer to BDO (12345678)" || log[0].Entry.Type() != model.EntryDebit {
				t.Errorf("source log = %+v", log)
			}
		})
	}
}

func TestTransferToLinkedBankValidation(t *testing.T) {
	repo := store.NewMemoryStore()
	svc := newTestService(t, repo)
	x := seedAccount(t, repo, "u1", "Checking", "50")
	mine, _ := repo.CreateLinkedBank("u1", "BPI", "12345678", "checking", dec("0"))
	theirs, _ := repo.CreateLinkedBank("u2", "BPI", "87654321", "checking", dec("0"))
	ctx := context.Background()

	if _, err := svc.Transfer.TransferToLinkedBank(ctx, "u1", x.ID, theirs.ID, dec("10"), ""); !errors.Is(err, ErrInvalidDestination) || !errors.Is(err, store.ErrOwnershipMismatch) {
		t.Errorf("foreign linked bank err = %v", err)
	}
	if _, err := svc.Transfer.TransferToLinkedBank(ctx, "u1", x.ID, "missing", dec("10"), ""); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("unknown linked bank err = %v", err)
	}
	if _, err := svc.Transfer.TransferToLinkedBank(ctx, "u1", x.ID, mine.ID, dec("50.01"), ""); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("insufficient funds err = %v", err)
	}
	assertBalance(t, repo, x.ID, "50")
}

func TestTransferToLinkedBankRollsBackOnSyncFailure(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			base := b.open(t)
			f := &faults{}
			repo := faultyRepo{Repository: base, f: f}
			svc := newTestService(t, repo)
			x := seedAccount(t, base, "u1", "Checking", "100")
			bank, _ := base.CreateLinkedBank("u1", "BDO", "12345678", "savings", dec("10"))

			f.failSync = true
			_, err := svc.Transfer.TransferToLinkedBank(context.Background(), "u1", x.ID, bank.ID, dec("30"), "")
			if !errors.Is(err, ErrSyncFailure) {
				t.Fatalf("err = %v, want ErrSyncFailure", err)
			}

			assertBalance(t, base, x.ID, "100")
			got, _ := base.GetLinkedBankByID(bank.ID)
			if !got.Balance.Equal(dec("10")) {
				t.Errorf("linked balance = %s, want 10", got.Balance)
			}

			history, _ := svc.Transfer.History("u1")
			if len(history) != 1 || history[0].Status != model.TransferFailed || history[0].Kind != model.TransferExternal {
				t.Errorf("history = %+v, want one FAILED external transfer", history)
			}
		})
	}
}

func TestTransferFailedNotRecordedWhenDisabled(t *testing.T) {
	base := store.NewMemoryStore()
	f := &faults{}
	repo := faultyRepo{Repository: base, f: f}
	svc := newTestService(t, repo)
	svc.Transfer.recordFailed = false
	x := seedAccount(t, base, "u1", "Checking", "100")
	y := seedAccount(t, base, "u1", "Savings", "0")

	f.failRecordOn = 2
	if _, err := svc.Transfer.TransferBetweenAccounts(context.Background(), "u1", x.ID, y.ID, dec("10"), ""); !errors.Is(err, ErrLogFailure) {
		t.Fatalf("err = %v, want ErrLogFailure", err)
	}
	if history, _ := svc.Transfer.History("u1"); len(history) != 0 {
		t.Errorf("history = %+v, want empty", history)
	}
}

func TestTransferCancelledContext(t *testing.T) {
	repo := store.NewMemoryStore()
	svc := newTestService(t, repo)
	x := seedAccount(t, repo, "u1", "Checking", "100")
	y := seedAccount(t, repo, "u1", "Savings", "0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Transfer.TransferBetweenAccounts(ctx, "u1", x.ID, y.ID, dec("10"), ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	assertBalance(t, repo, x.ID, "100")
	assertBalance(t, repo, y.ID, "0")
}

func TestConcurrentTransfersConserveTotal(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repo := b.open(t)
			svc := newTestService(t, repo)
			x := seedAccount(t, repo, "u1", "A", "1000")
			y := seedAccount(t, repo, "u1", "B", "1000")
			ctx := context.Background()

			const rounds = 50
			var wg sync.WaitGroup
			for i := 0; i < rounds; i++ {
				wg.Add(2)
				go func() {
					defer wg.Done()
					svc.Transfer.TransferBetweenAccounts(ctx, "u1", x.ID, y.ID, dec("7"), "")
				}()
				go func() {
					defer wg.Done()
					svc.Transfer.TransferBetweenAccounts(ctx, "u1", y.ID, x.ID, dec("3"), "")
				}()
			}
			wg.Wait()

			total := balanceOf(t, repo, x.ID).Add(balanceOf(t, repo, y.ID))
			if !total.Equal(dec("2000")) {
				t.Errorf("total = %s, want 2000", total)
			}
			assertBalance(t, repo, x.ID, "800")
			assertBalance(t, repo, y.ID, "1200")

			history, _ := svc.Transfer.History("u1")
			if len(history) != 2*rounds {
				t.Errorf("history has %d transfers, want %d", len(history), 2*rounds)
			}
		})
	}
}

func TestGetTransfer(t *testing.T) {
	repo := store.NewMemoryStore()
	svc := newTestService(t, repo)
	x := seedAccount(t, repo, "u1", "Checking", "100")
	y := seedAccount(t, repo, "u1", "Savings", "0")

	tr, err := svc.Transfer.TransferBetweenAccounts(context.Background(), "u1", x.ID, y.ID, dec("10"), "Rent")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	got, err := svc.Transfer.GetTransfer("u1", tr.ID)
	if err != nil {
		t.Fatalf("GetTransfer: %v", err)
	}
	if got.Description != "Rent" || !got.Amount.Equal(dec("10")) {
		t.Errorf("GetTransfer = %+v", got)
	}

	if _, err := svc.Transfer.GetTransfer("u2", tr.ID); !errors.Is(err, store.ErrOwnershipMismatch) {
		t.Errorf("foreign GetTransfer err = %v, want ErrOwnershipMismatch", err)
	}
	if _, err := svc.Transfer.GetTransfer("u1", "missing"); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("missing GetTransfer err = %v, want ErrRecordNotFound", err)
	}
}

func TestReadsAreIdempotent(t *testing.T) {
	repo := store.NewMemoryStore()
	svc := newTestService(t, repo)
	seedAccount(t, repo, "u1", "Checking", "100")
	seedAccount(t, repo, "u1", "Savings", "5")

	first, _ := svc.Account.ListAccounts("u1")
	second, _ := svc.Account.ListAccounts("u1")
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || !first[i].Balance.Equal(second[i].Balance) {
			t.Errorf("read %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
