package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/cybank/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// RecordTransaction appends to the account's log. The type tag and the
// positive magnitude are stored; the signed amount is derived on read.
func (s *SQLiteStore) RecordTransaction(accountID string, entry model.Entry, description, category string) (*model.Transaction, error) {
	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE id = ?)", accountID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check account existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("account with ID %s: %w", accountID, ErrRecordNotFound)
	}

	txn := &model.Transaction{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Entry:       entry,
		Description: description,
		Category:    category,
		CreatedAt:   s.now(),
	}

	stmt, err := s.db.Prepare(`
        INSERT INTO transactions (id, account_id, entry_type, amount, description, category, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(txn.ID, txn.AccountID, string(entry.Type()), entry.Amount(),
		txn.Description, txn.Category, toUnix(txn.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return txn, nil
}

func (s *SQLiteStore) ListTransactions(accountID string) ([]*model.Transaction, error) {
	rows, err := s.db.Query(`
        SELECT id, account_id, entry_type, amount, description, category, created_at
        FROM transactions
        WHERE account_id = ?
        ORDER BY seq
    `, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []*model.Transaction{}
	for rows.Next() {
		txn := &model.Transaction{}
		var (
			entryType string
			amount    decimal.Decimal
			createdAt int64
		)
		err := rows.Scan(&txn.ID, &txn.AccountID, &entryType, &amount,
			&txn.Description, &txn.Category, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.Entry, err = model.ParseEntry(entryType, amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", txn.ID, err)
		}
		txn.CreatedAt = fromUnix(createdAt)
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

func (s *SQLiteStore) RecordTransfer(transfer *model.Transfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.NewString()
	}
	if transfer.CreatedAt.IsZero() {
		transfer.CreatedAt = s.now()
	}

	_, err := s.db.Exec(`
        INSERT INTO transfers (id, user_id, kind, source_id, source_name, destination_id,
            destination_name, amount, description, status, reason, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, transfer.ID, transfer.UserID, string(transfer.Kind), transfer.SourceID, transfer.SourceName,
		transfer.DestinationID, transfer.DestinationName, transfer.Amount, transfer.Description,
		string(transfer.Status), transfer.Reason, toUnix(transfer.CreatedAt))
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			return fmt.Errorf("transfer %s: %w", transfer.ID, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to insert transfer: %w", err)
	}

	return nil
}

func (s *SQLiteStore) ListTransfers(userID string) ([]*model.Transfer, error) {
	rows, err := s.db.Query(`
        SELECT id, user_id, kind, source_id, source_name, destination_id, destination_name,
            amount, description, status, reason, created_at
        FROM transfers
        WHERE user_id = ?
        ORDER BY seq
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*model.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, t)
	}

	return transfers, rows.Err()
}

func (s *SQLiteStore) GetTransfer(id string) (*model.Transfer, error) {
	row := s.db.QueryRow(`
        SELECT id, user_id, kind, source_id, source_name, destination_id, destination_name,
            amount, description, status, reason, created_at
        FROM transfers
        WHERE id = ?
    `, id)

	t, err := scanTransfer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transfer with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transfer: %w", err)
	}
	return t, nil
}

func scanTransfer(row rowScanner) (*model.Transfer, error) {
	t := &model.Transfer{}
	var (
		kind, status string
		createdAt    int64
	)

	err := row.Scan(
		&t.ID, &t.UserID, &kind, &t.SourceID, &t.SourceName,
		&t.DestinationID, &t.DestinationName, &t.Amount, &t.Description,
		&status, &t.Reason, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	t.Kind = model.TransferKind(kind)
	t.Status = model.TransferStatus(status)
	t.CreatedAt = fromUnix(createdAt)
	return t, nil
}
