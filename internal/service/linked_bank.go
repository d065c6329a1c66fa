package service

import (
	"strings"

	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/store"
	"github.com/hance08/cybank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// LinkedBankService manages local mocks of external bank accounts.
type LinkedBankService struct {
	repo   store.LinkedBankRepository
	logger *pterm.Logger
}

func NewLinkedBankService(repo store.LinkedBankRepository, logger *pterm.Logger) *LinkedBankService {
	return &LinkedBankService{repo: repo, logger: logger}
}

func (ls *LinkedBankService) Link(userID, bankName, accountNumber, accountType string, initial decimal.Decimal) (*model.LinkedBankAccount, error) {
	bankName = strings.TrimSpace(bankName)
	accountNumber = strings.TrimSpace(accountNumber)

	if err := validation.ValidateBankName(bankName); err != nil {
		return nil, err
	}
	if err := validation.ValidateAccountNumber(accountNumber); err != nil {
		return nil, err
	}
	accountType, err := validation.NormalizeAccountType(accountType)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateBalance(initial); err != nil {
		return nil, err
	}

	bank, err := ls.repo.CreateLinkedBank(userID, bankName, accountNumber, accountType, initial)
	if err != nil {
		return nil, err
	}

	ls.logger.Info("bank linked", ls.logger.Args("user_id", userID, "linked_id", bank.ID, "bank", bankName))
	return bank, nil
}

func (ls *LinkedBankService) List(userID string) ([]*model.LinkedBankAccount, error) {
	return ls.repo.ListLinkedBanks(userID)
}

func (ls *LinkedBankService) Get(userID, linkedID string) (*model.LinkedBankAccount, error) {
	return ownedLinkedBank(ls.repo, userID, linkedID)
}

func (ls *LinkedBankService) Unlink(userID, linkedID string) error {
	if err := ls.repo.UnlinkBank(linkedID, userID); err != nil {
		return err
	}
	ls.logger.Info("bank unlinked", ls.logger.Args("user_id", userID, "linked_id", linkedID))
	return nil
}

func (ls *LinkedBankService) TotalBalance(userID string) (decimal.Decimal, error) {
	return ls.repo.TotalLinkedBalance(userID)
}
