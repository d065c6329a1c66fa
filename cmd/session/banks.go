package session

import (
	"context"
	"fmt"

	"github.com/hance08/cybank/internal/ui/prompts"
	"github.com/hance08/cybank/internal/ui/views"
	"github.com/hance08/cybank/internal/utils"
	"github.com/pterm/pterm"
)

func (r *Runner) linkBank(ctx context.Context) error {
	in, err := prompts.PromptLinkBank()
	if err != nil {
		return err
	}

	bank, err := r.svc.LinkedBank.Link(r.user.ID, in.BankName, in.AccountNumber, in.AccountType, in.Initial)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Linked %s account %s\n", bank.BankName, utils.MaskAccountNumber(bank.AccountNumber))
	return nil
}

func (r *Runner) listLinkedBanks(ctx context.Context) error {
	banks, err := r.svc.LinkedBank.List(r.user.ID)
	if err != nil {
		return err
	}
	if len(banks) == 0 {
		pterm.Info.Println("No linked bank accounts.")
		return nil
	}

	if err := views.RenderLinkedBanks(banks); err != nil {
		return err
	}

	total, err := r.svc.LinkedBank.TotalBalance(r.user.ID)
	if err != nil {
		return err
	}
	pterm.Printf("Total linked balance: %s\n", pterm.Bold.Sprint(utils.FormatAmount(total)))
	return nil
}

func (r *Runner) unlinkBank(ctx context.Context) error {
	banks, err := r.svc.LinkedBank.List(r.user.ID)
	if err != nil {
		return err
	}
	if len(banks) == 0 {
		pterm.Info.Println("No linked bank accounts.")
		return nil
	}

	bank, err := prompts.PromptLinkedBankSelect("Unlink which account?", banks)
	if err != nil {
		return err
	}

	ok, err := prompts.PromptConfirm(fmt.Sprintf("Unlink %s %s?",
		bank.BankName, utils.MaskAccountNumber(bank.AccountNumber)), false)
	if err != nil || !ok {
		return err
	}

	if err := r.svc.LinkedBank.Unlink(r.user.ID, bank.ID); err != nil {
		return err
	}

	pterm.Success.Printf("Unlinked %s\n", bank.BankName)
	return nil
}
