package views

import (
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts yet")
		return nil
	}

	tableData := pterm.TableData{{"Name", "Status", "Balance", "Opened"}}

	total := decimal.Zero
	for _, acc := range accounts {
		balance := utils.FormatAmount(acc.Balance)
		if acc.Balance.IsNegative() {
			balance = pterm.Red(balance)
		} else {
			balance = pterm.Green(balance)
		}

		status := acc.Status
		if status != model.AccountStatusActive {
			status = pterm.Gray(status)
		}

		tableData = append(tableData, []string{
			acc.Name,
			status,
			balance,
			acc.CreatedAt.Local().Format("2006-01-02"),
		})
		total = total.Add(acc.Balance)
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts, %s\n", len(accounts), utils.FormatAmount(total))

	return nil
}
