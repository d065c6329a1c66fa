package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/utils"
	"github.com/hance08/cybank/internal/validation"
)

// PromptAccountName prompts for a new account name; empty input takes the
// default account name.
func PromptAccountName() (string, error) {
	return PromptInput("Account name:", constants.DefaultAccountName, validation.ValidateAccountName)
}

// PromptAccountSelect lets the user pick one of accounts. exclude, when not
// empty, hides that account id.
func PromptAccountSelect(title string, accounts []*model.Account, exclude string) (*model.Account, error) {
	byID := make(map[string]*model.Account, len(accounts))
	var options []huh.Option[string]

	for _, acc := range accounts {
		if acc.ID == exclude {
			continue
		}
		byID[acc.ID] = acc
		label := fmt.Sprintf("%s  %s", acc.Name, utils.FormatAmount(acc.Balance))
		options = append(options, huh.NewOption(label, acc.ID))
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no accounts available")
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
