package cmd

import (
	"context"
	"fmt"

	"github.com/hance08/cybank/internal/errhandler"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/service"
	"github.com/hance08/cybank/internal/ui"
	"github.com/hance08/cybank/internal/ui/views"
	"github.com/hance08/cybank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type demoRunner struct {
	svc *service.Service
	ctx context.Context
}

func NewDemoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough",
		Long: `Run a non-interactive walkthrough against a fresh in-memory ledger.

Registers a demo user, opens two accounts, moves money between them and
to a linked bank, shows the rejected cases and prints the final report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			runner := &demoRunner{svc: svc, ctx: ctx}
			return runner.Run()
		},
	}
}

func (r *demoRunner) Run() error {
	ui.PrintL1Title("CyBank Demo")

	user, err := r.svc.User.Register("demo", "secret1", "Juan Dela Cruz", "juan@example.com")
	if err != nil {
		return err
	}
	if _, err := r.svc.User.Authenticate("demo", "secret1"); err != nil {
		return err
	}
	pterm.Success.Printf("Registered and logged in as %s\n", user.FullName)

	primary, err := r.svc.Account.CreateAccount(user.ID, "")
	if err != nil {
		return err
	}
	savings, err := r.svc.Account.CreateAccount(user.ID, "Savings")
	if err != nil {
		return err
	}

	ui.PrintL2Title("Deposits")
	for _, amt := range []string{"100", "50"} {
		if _, err := r.svc.Transaction.Deposit(user.ID, primary.ID, dec(amt), "", ""); err != nil {
			return err
		}
		pterm.Info.Printf("Deposited %s into %s\n", utils.FormatAmount(dec(amt)), primary.Name)
	}

	ui.PrintL2Title("Transfer between accounts")
	transfer, err := r.svc.Transfer.TransferBetweenAccounts(r.ctx, user.ID, primary.ID, savings.ID, dec("150"), "Move to savings")
	if err != nil {
		return err
	}
	if err := views.RenderTransferReceipt(transfer); err != nil {
		return err
	}

	ui.PrintL2Title("Rejected transfers")
	rejected := []struct {
		label  string
		from   string
		to     string
		amount string
	}{
		{"zero amount", savings.ID, primary.ID, "0"},
		{"negative amount", savings.ID, primary.ID, "-5"},
		{"insufficient funds", primary.ID, savings.ID, "10"},
		{"same account", savings.ID, savings.ID, "10"},
		{"unknown destination", savings.ID, "no-such-account", "10"},
	}
	for _, c := range rejected {
		_, err := r.svc.Transfer.TransferBetweenAccounts(r.ctx, user.ID, c.from, c.to, dec(c.amount), "")
		if err == nil {
			return fmt.Errorf("transfer with %s was accepted", c.label)
		}
		pterm.Printf("%-20s %s\n", c.label+":", pterm.Red(errhandler.Message(err)))
	}

	ui.PrintL2Title("Linked bank")
	bank, err := r.svc.LinkedBank.Link(user.ID, "BDO", "12345678", "Savings", dec("1000"))
	if err != nil {
		return err
	}
	transfer, err = r.svc.Transfer.TransferToLinkedBank(r.ctx, user.ID, savings.ID, bank.ID, dec("25"), "")
	if err != nil {
		return err
	}
	if err := views.RenderTransferReceipt(transfer); err != nil {
		return err
	}

	return r.summary(user)
}

func (r *demoRunner) summary(user *model.User) error {
	ui.PrintL2Title("Accounts")
	accounts, err := r.svc.Account.ListAccounts(user.ID)
	if err != nil {
		return err
	}
	if err := views.NewAccountListView().Render(accounts); err != nil {
		return err
	}

	ui.PrintL2Title("Linked banks")
	banks, err := r.svc.LinkedBank.List(user.ID)
	if err != nil {
		return err
	}
	if err := views.RenderLinkedBanks(banks); err != nil {
		return err
	}

	ui.PrintL2Title("Transfers")
	transfers, err := r.svc.Transfer.History(user.ID)
	if err != nil {
		return err
	}
	if err := views.RenderTransfers(transfers); err != nil {
		return err
	}

	report, err := r.svc.Report.CompleteReport(user.ID)
	if err != nil {
		return err
	}
	return views.RenderCompleteReport(report)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
