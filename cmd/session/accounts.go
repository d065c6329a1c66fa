package session

import (
	"context"

	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/ui/prompts"
	"github.com/hance08/cybank/internal/ui/views"
	"github.com/hance08/cybank/internal/utils"
	"github.com/hance08/cybank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func (r *Runner) listAccounts(ctx context.Context) error {
	accounts, err := r.svc.Account.ListAccounts(r.user.ID)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		pterm.Info.Println("You have no accounts yet. Open one from the menu.")
		return nil
	}

	if err := views.NewAccountListView().Render(accounts); err != nil {
		return err
	}

	total, err := r.svc.Account.TotalBalance(r.user.ID)
	if err != nil {
		return err
	}
	pterm.Printf("Total balance: %s\n", pterm.Bold.Sprint(utils.FormatAmount(total)))
	return nil
}

func (r *Runner) createAccount(ctx context.Context) error {
	name, err := prompts.PromptAccountName()
	if err != nil {
		return err
	}

	acc, err := r.svc.Account.CreateAccount(r.user.ID, name)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Account '%s' opened\n", acc.Name)
	return nil
}

func (r *Runner) deposit(ctx context.Context) error {
	acc, amount, desc, err := r.promptMovement("Deposit into:", constants.DescDeposit)
	if err != nil {
		return err
	}

	txn, err := r.svc.Transaction.Deposit(r.user.ID, acc.ID, amount, desc, "")
	if err != nil {
		return err
	}

	pterm.Success.Printf("Deposited %s into %s\n", utils.FormatAmount(txn.Entry.Amount()), acc.Name)
	return r.printBalance(acc.ID)
}

func (r *Runner) withdraw(ctx context.Context) error {
	acc, amount, desc, err := r.promptMovement("Withdraw from:", constants.DescWithdraw)
	if err != nil {
		return err
	}

	txn, err := r.svc.Transaction.Withdraw(r.user.ID, acc.ID, amount, desc, "")
	if err != nil {
		return err
	}

	pterm.Success.Printf("Withdrew %s from %s\n", utils.FormatAmount(txn.Entry.Amount()), acc.Name)
	return r.printBalance(acc.ID)
}

func (r *Runner) history(ctx context.Context) error {
	acc, err := r.selectAccount("Show history for:", "")
	if err != nil {
		return err
	}

	txns, err := r.svc.Transaction.History(r.user.ID, acc.ID)
	if err != nil {
		return err
	}

	return views.NewTransactionListView().Render(acc, txns)
}

// promptMovement collects the account, amount and description shared by
// deposits and withdrawals.
func (r *Runner) promptMovement(title, defaultDesc string) (*model.Account, decimal.Decimal, string, error) {
	acc, err := r.selectAccount(title, "")
	if err != nil {
		return nil, decimal.Zero, "", err
	}

	amount, err := r.promptAmount("Amount:")
	if err != nil {
		return nil, decimal.Zero, "", err
	}

	desc, err := prompts.PromptDescription("Description (optional, default: "+defaultDesc+"):", false)
	if err != nil {
		return nil, decimal.Zero, "", err
	}

	return acc, amount, desc, nil
}

func (r *Runner) selectAccount(title, exclude string) (*model.Account, error) {
	accounts, err := r.svc.Account.ListAccounts(r.user.ID)
	if err != nil {
		return nil, err
	}
	return prompts.PromptAccountSelect(title, accounts, exclude)
}

// promptAmount asks for a deposit or withdrawal amount within the
// configured limits.
func (r *Runner) promptAmount(message string) (decimal.Decimal, error) {
	limits := r.svc.Limits
	help := utils.FormatAmount(limits.Min) + " to " + utils.FormatAmount(limits.Max)

	raw, err := prompts.PromptAmount(message, help, limits.Input())
	if err != nil {
		return decimal.Zero, err
	}
	return utils.ParseAmount(raw)
}

func (r *Runner) promptTransferAmount(message string) (decimal.Decimal, error) {
	raw, err := prompts.PromptAmount(message, "Up to the source balance", validation.ValidatePositiveAmount)
	if err != nil {
		return decimal.Zero, err
	}
	return utils.ParseAmount(raw)
}

func (r *Runner) printBalance(accountID string) error {
	acc, err := r.svc.Account.GetAccount(r.user.ID, accountID)
	if err != nil {
		return err
	}
	pterm.Printf("New balance: %s\n", pterm.Bold.Sprint(utils.FormatAmount(acc.Balance)))
	return nil
}
