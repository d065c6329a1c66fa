package views

import (
	"strings"

	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderLinkedBanks(banks []*model.LinkedBankAccount) error {
	if len(banks) == 0 {
		pterm.Warning.Println("No linked bank accounts")
		return nil
	}

	tableData := pterm.TableData{{"Bank", "Account No.", "Type", "Balance", "Last Synced"}}

	total := decimal.Zero
	for _, bank := range banks {
		tableData = append(tableData, []string{
			bank.BankName,
			utils.MaskAccountNumber(bank.AccountNumber),
			strings.ReplaceAll(bank.AccountType, "_", " "),
			utils.FormatAmount(bank.Balance),
			bank.LastSynced.Local().Format(constants.DateTimeFormat),
		})
		total = total.Add(bank.Balance)
	}

	pterm.DefaultSection.Println("Linked Bank Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d linked accounts, %s\n", len(banks), utils.FormatAmount(total))
	return nil
}
