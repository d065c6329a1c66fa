package service

import (
	"fmt"
	"strings"

	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/store"
	"github.com/hance08/cybank/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo store.AccountRepository
}

func NewAccountService(repo store.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// CreateAccount opens a zero-balance account. An empty name becomes the
// default account name.
func (as *AccountService) CreateAccount(userID, name string) (*model.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = constants.DefaultAccountName
	}
	if err := validation.ValidateAccountName(name); err != nil {
		return nil, err
	}
	return as.repo.CreateAccount(userID, name)
}

func (as *AccountService) GetAccount(userID, accountID string) (*model.Account, error) {
	return ownedAccount(as.repo, userID, accountID)
}

func (as *AccountService) ListAccounts(userID string) ([]*model.Account, error) {
	return as.repo.ListAccounts(userID)
}

func (as *AccountService) TotalBalance(userID string) (decimal.Decimal, error) {
	accounts, err := as.repo.ListAccounts(userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total, nil
}

func ownedAccount(repo store.AccountRepository, userID, accountID string) (*model.Account, error) {
	acc, err := repo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}
	if acc.UserID != userID {
		return nil, fmt.Errorf("account with ID %s: %w", accountID, store.ErrOwnershipMismatch)
	}
	return acc, nil
}

func ownedLinkedBank(repo store.LinkedBankRepository, userID, linkedID string) (*model.LinkedBankAccount, error) {
	bank, err := repo.GetLinkedBankByID(linkedID)
	if err != nil {
		return nil, err
	}
	if bank.UserID != userID {
		return nil, fmt.Errorf("linked bank with ID %s: %w", linkedID, store.ErrOwnershipMismatch)
	}
	return bank, nil
}
