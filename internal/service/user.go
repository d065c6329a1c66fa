package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/store"
	"github.com/hance08/cybank/internal/validation"
	"github.com/pterm/pterm"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   store.UserRepository
	logger *pterm.Logger
}

func NewUserService(repo store.UserRepository, logger *pterm.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register validates the profile fields and stores a bcrypt hash of the
// password. A taken username fails with store.ErrUserExists.
func (us *UserService) Register(username, password, fullName, email string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateFullName(fullName); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := us.repo.CreateUser(username, string(hash), fullName, email)
	if err != nil {
		return nil, err
	}

	us.logger.Info("user registered", us.logger.Args("user_id", user.ID, "username", username))
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for both an unknown username
// and a wrong password.
func (us *UserService) Authenticate(username, password string) (*model.User, error) {
	user, err := us.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		us.logger.Warn("failed login", us.logger.Args("username", username))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (us *UserService) GetUser(id string) (*model.User, error) {
	return us.repo.GetUserByID(id)
}
