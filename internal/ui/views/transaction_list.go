package views

import (
	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/ui"
	"github.com/hance08/cybank/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render prints an account's log oldest first.
func (v *TransactionListView) Render(account *model.Account, txns []*model.Transaction) error {
	pterm.DefaultSection.Printf("Transactions: %s", account.Name)

	if len(txns) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"Date", "Type", "Description", "Category", "Amount"},
	}

	for _, txn := range txns {
		credit := txn.Entry.IsCredit()
		category := txn.Category
		if category == "" {
			category = "-"
		}

		tableData = append(tableData, []string{
			txn.CreatedAt.Local().Format(constants.DateTimeFormat),
			ui.ColorAmount(string(txn.Entry.Type()), credit),
			txn.Description,
			category,
			ui.ColorAmount(utils.FormatSigned(txn.Entry.Signed()), credit),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions, balance %s\n", len(txns), utils.FormatAmount(account.Balance))
	return nil
}
