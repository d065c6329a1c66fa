package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/cybank/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

func (s *SQLiteStore) CreateUser(username, passwordHash, fullName, email string) (*model.User, error) {
	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Email:        email,
		CreatedAt:    s.now(),
	}

	_, err := s.db.Exec(`
        INSERT INTO users (id, username, password_hash, full_name, email, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, user.ID, user.Username, user.PasswordHash, user.FullName, user.Email, toUnix(user.CreatedAt))
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) || errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return nil, fmt.Errorf("failed to create user '%s': %w", username, ErrUserExists)
			}
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (s *SQLiteStore) GetUserByID(id string) (*model.User, error) {
	row := s.db.QueryRow(`
        SELECT id, username, password_hash, full_name, email, created_at
        FROM users
        WHERE id = ?
    `, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *SQLiteStore) GetUserByUsername(username string) (*model.User, error) {
	row := s.db.QueryRow(`
        SELECT id, username, password_hash, full_name, email, created_at
        FROM users
        WHERE username = ?
    `, username)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user '%s': %w", username, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query user '%s': %w", username, err)
	}
	return user, nil
}

func scanUser(row rowScanner) (*model.User, error) {
	user := &model.User{}
	var createdAt int64

	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.FullName, &user.Email, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	user.CreatedAt = fromUnix(createdAt)
	return user, nil
}
