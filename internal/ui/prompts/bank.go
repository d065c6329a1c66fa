package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/utils"
	"github.com/hance08/cybank/internal/validation"
	"github.com/shopspring/decimal"
)

type LinkBankInput struct {
	BankName      string
	AccountNumber string
	AccountType   string
	Initial       decimal.Decimal
}

func PromptLinkBank() (LinkBankInput, error) {
	var (
		in      LinkBankInput
		initial string
	)

	bankOpts := make([]huh.Option[string], 0, len(constants.SupportedBanks))
	for _, b := range constants.SupportedBanks {
		bankOpts = append(bankOpts, huh.NewOption(b, b))
	}
	typeOpts := make([]huh.Option[string], 0, len(constants.LinkedAccountTypes))
	for _, t := range constants.LinkedAccountTypes {
		typeOpts = append(typeOpts, huh.NewOption(strings.ReplaceAll(t, "_", " "), t))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Bank:").
				Options(bankOpts...).
				Value(&in.BankName).
				Height(8),
			huh.NewInput().
				Title("Account number:").
				Description("8 to 16 digits").
				Validate(validation.ValidateAccountNumber).
				Value(&in.AccountNumber),
			huh.NewSelect[string]().
				Title("Account type:").
				Options(typeOpts...).
				Value(&in.AccountType),
			huh.NewInput().
				Title("Current balance:").
				Placeholder("0.00").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					amount, err := utils.ParseAmount(s)
					if err != nil {
						return err
					}
					return validation.ValidateBalance(amount)
				}).
				Value(&initial),
		),
	)
	if err := form.Run(); err != nil {
		return in, err
	}

	in.Initial = decimal.Zero
	if strings.TrimSpace(initial) != "" {
		amount, err := utils.ParseAmount(initial)
		if err != nil {
			return in, err
		}
		in.Initial = amount
	}
	return in, nil
}

func PromptLinkedBankSelect(title string, banks []*model.LinkedBankAccount) (*model.LinkedBankAccount, error) {
	byID := make(map[string]*model.LinkedBankAccount, len(banks))
	options := make([]huh.Option[string], 0, len(banks))

	for _, bank := range banks {
		byID[bank.ID] = bank
		label := fmt.Sprintf("%s (%s)  %s", bank.BankName, utils.MaskAccountNumber(bank.AccountNumber), utils.FormatAmount(bank.Balance))
		options = append(options, huh.NewOption(label, bank.ID))
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no linked bank accounts")
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return nil, fmt.Errorf("input cancelled: %w", err)
	}

	return byID[selected], nil
}
