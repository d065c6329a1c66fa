package views

import (
	"fmt"
	"strings"

	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/service"
	"github.com/hance08/cybank/internal/ui"
	"github.com/hance08/cybank/internal/utils"
	"github.com/pterm/pterm"
)

func RenderAccountSummary(s *service.AccountSummary) error {
	ui.PrintL2Title("Account Summary")

	if len(s.Accounts) == 0 {
		pterm.Warning.Println("No accounts yet")
		return nil
	}

	tableData := pterm.TableData{{"Account", "Balance", "Transactions", "Opened"}}
	for _, line := range s.Accounts {
		tableData = append(tableData, []string{
			line.Account.Name,
			utils.FormatAmount(line.Account.Balance),
			fmt.Sprintf("%d", line.TransactionCount),
			line.Account.CreatedAt.Local().Format("2006-01-02"),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total balance: %s across %d accounts\n", utils.FormatAmount(s.TotalBalance), len(s.Accounts))
	return nil
}

func RenderTransactionReport(r *service.TransactionReport) error {
	ui.PrintL2Title("Transaction Report")

	if len(r.Transactions) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{{"Date", "Account", "Description", "Amount"}}
	for _, line := range r.Transactions {
		txn := line.Transaction
		tableData = append(tableData, []string{
			txn.CreatedAt.Local().Format(constants.DateTimeFormat),
			line.AccountName,
			txn.Description,
			ui.ColorAmount(utils.FormatSigned(txn.Entry.Signed()), txn.Entry.IsCredit()),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	totals := pterm.TableData{
		{pterm.Blue("Total credits"), pterm.Green(utils.FormatAmount(r.TotalCredits))},
		{pterm.Blue("Total debits"), pterm.Red(utils.FormatAmount(r.TotalDebits))},
		{pterm.Blue("Net change"), utils.FormatAmount(r.NetChange)},
	}
	return pterm.DefaultTable.WithData(totals).Render()
}

func RenderLinkedBankPortfolio(p *service.LinkedBankPortfolio) error {
	ui.PrintL2Title("Linked Bank Portfolio")

	if len(p.Banks) == 0 {
		pterm.Warning.Println("No linked bank accounts")
		return nil
	}

	tableData := pterm.TableData{{"Type", "Accounts", "Balance", "Banks"}}
	for _, group := range p.ByType {
		tableData = append(tableData, []string{
			strings.ReplaceAll(group.AccountType, "_", " "),
			fmt.Sprintf("%d", group.Count),
			utils.FormatAmount(group.TotalBalance),
			strings.Join(group.Banks, ", "),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %s, average per bank: %s\n",
		utils.FormatAmount(p.TotalBalance), utils.FormatAmount(p.AverageBalance))
	return nil
}

func RenderCompleteReport(r *service.CompleteReport) error {
	ui.PrintL1Title("Complete Financial Report")
	pterm.Println(pterm.Gray("Generated " + r.GeneratedAt.Local().Format(constants.DateTimeFormat)))
	pterm.Println()

	if err := RenderAccountSummary(r.Summary); err != nil {
		return err
	}
	pterm.Println()
	if err := RenderTransactionReport(r.Transactions); err != nil {
		return err
	}
	pterm.Println()
	if err := RenderLinkedBankPortfolio(r.Portfolio); err != nil {
		return err
	}
	pterm.Println()

	c := r.Combined
	ui.PrintL2Title("Combined")
	tableData := pterm.TableData{
		{pterm.Blue("CyBank balance"), fmt.Sprintf("%s (%s%%)", utils.FormatAmount(c.TotalLedgerBalance), c.LedgerPercentage.StringFixed(2))},
		{pterm.Blue("Linked balance"), fmt.Sprintf("%s (%s%%)", utils.FormatAmount(c.TotalLinkedBalance), c.LinkedPercentage.StringFixed(2))},
		{pterm.Blue("Net worth"), utils.FormatAmount(c.TotalBalance)},
		{pterm.Blue("Accounts"), fmt.Sprintf("%d", c.TotalAccounts)},
		{pterm.Blue("Linked banks"), fmt.Sprintf("%d", c.TotalLinkedBanks)},
		{pterm.Blue("Transactions"), fmt.Sprintf("%d", c.TotalTransactions)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
