package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/cybank/internal/model"
	"github.com/shopspring/decimal"
)

func (s *SQLiteStore) CreateAccount(userID, name string) (*model.Account, error) {
	acc := &model.Account{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Balance:   decimal.Zero,
		Status:    model.AccountStatusActive,
		CreatedAt: s.now(),
	}

	_, err := s.db.Exec(`
        INSERT INTO accounts (id, user_id, name, balance, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, acc.ID, acc.UserID, acc.Name, acc.Balance, acc.Status, toUnix(acc.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return acc, nil
}

func (s *SQLiteStore) GetAccountByID(id string) (*model.Account, error) {
	row := s.db.QueryRow(`
        SELECT id, user_id, name, balance, status, created_at
        FROM accounts
        WHERE id = ?
    `, id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %s: %w", id, err)
	}
	return acc, nil
}

func (s *SQLiteStore) ListAccounts(userID string) ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT id, user_id, name, balance, status, created_at
        FROM accounts
        WHERE user_id = ?
        ORDER BY seq
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	accounts := []*model.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

func (s *SQLiteStore) SetAccountBalance(id string, balance decimal.Decimal) error {
	result, err := s.db.Exec(`
        UPDATE accounts
        SET balance = ?
        WHERE id = ?
    `, balance, id)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}
	return expectOneRow(result, "account", id)
}

func (s *SQLiteStore) CreateLinkedBank(userID, bankName, accountNumber, accountType string, balance decimal.Decimal) (*model.LinkedBankAccount, error) {
	bank := &model.LinkedBankAccount{
		ID:            uuid.NewString(),
		UserID:        userID,
		BankName:      bankName,
		AccountNumber: accountNumber,
		AccountType:   accountType,
		Balance:       balance,
		LastSynced:    s.now(),
	}

	_, err := s.db.Exec(`
        INSERT INTO linked_banks (id, user_id, bank_name, account_number, account_type, balance, last_synced)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, bank.ID, bank.UserID, bank.BankName, bank.AccountNumber, bank.AccountType, bank.Balance, toUnix(bank.LastSynced))
	if err != nil {
		return nil, fmt.Errorf("failed to insert linked bank: %w", err)
	}

	return bank, nil
}

func (s *SQLiteStore) GetLinkedBankByID(id string) (*model.LinkedBankAccount, error) {
	row := s.db.QueryRow(`
        SELECT id, user_id, bank_name, account_number, account_type, balance, last_synced
        FROM linked_banks
        WHERE id = ?
    `, id)

	bank, err := scanLinkedBank(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("linked bank with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query linked bank with ID %s: %w", id, err)
	}
	return bank, nil
}

func (s *SQLiteStore) ListLinkedBanks(userID string) ([]*model.LinkedBankAccount, error) {
	rows, err := s.db.Query(`
        SELECT id, user_id, bank_name, account_number, account_type, balance, last_synced
        FROM linked_banks
        WHERE user_id = ?
        ORDER BY seq
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query linked banks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	banks := []*model.LinkedBankAccount{}
	for rows.Next() {
		bank, err := scanLinkedBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan linked bank: %w", err)
		}
		banks = append(banks, bank)
	}
	return banks, rows.Err()
}

func (s *SQLiteStore) SetLinkedBankBalance(id string, balance decimal.Decimal, syncedAt time.Time) error {
	result, err := s.db.Exec(`
        UPDATE linked_banks
        SET balance = ?, last_synced = ?
        WHERE id = ?
    `, balance, toUnix(syncedAt), id)
	if err != nil {
		return fmt.Errorf("failed to update linked bank balance: %w", err)
	}
	return expectOneRow(result, "linked bank", id)
}

func (s *SQLiteStore) UnlinkBank(id, userID string) error {
	var owner string
	err := s.db.QueryRow("SELECT user_id FROM linked_banks WHERE id = ?", id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("linked bank with ID %s: %w", id, ErrRecordNotFound)
		}
		return fmt.Errorf("failed to query linked bank with ID %s: %w", id, err)
	}
	if owner != userID {
		return fmt.Errorf("linked bank with ID %s: %w", id, ErrOwnershipMismatch)
	}

	result, err := s.db.Exec("DELETE FROM linked_banks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete linked bank: %w", err)
	}
	return expectOneRow(result, "linked bank", id)
}

// TotalLinkedBalance sums in Go because balances are stored as decimal text.
func (s *SQLiteStore) TotalLinkedBalance(userID string) (decimal.Decimal, error) {
	banks, err := s.ListLinkedBanks(userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, bank := range banks {
		total = total.Add(bank.Balance)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var createdAt int64

	err := row.Scan(
		&acc.ID, &acc.UserID, &acc.Name,
		&acc.Balance, &acc.Status, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	acc.CreatedAt = fromUnix(createdAt)
	return acc, nil
}

func scanLinkedBank(row rowScanner) (*model.LinkedBankAccount, error) {
	bank := &model.LinkedBankAccount{}
	var lastSynced int64

	err := row.Scan(
		&bank.ID, &bank.UserID, &bank.BankName, &bank.AccountNumber,
		&bank.AccountType, &bank.Balance, &lastSynced,
	)
	if err != nil {
		return nil, err
	}

	bank.LastSynced = fromUnix(lastSynced)
	return bank, nil
}
