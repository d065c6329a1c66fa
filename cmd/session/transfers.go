package session

import (
	"context"
	"fmt"

	"github.com/hance08/cybank/internal/ui/prompts"
	"github.com/hance08/cybank/internal/ui/views"
	"github.com/hance08/cybank/internal/utils"
	"github.com/pterm/pterm"
)

func (r *Runner) transfer(ctx context.Context) error {
	from, err := r.selectAccount("Transfer from:", "")
	if err != nil {
		return err
	}
	to, err := r.selectAccount("Transfer to:", from.ID)
	if err != nil {
		return err
	}

	amount, err := r.promptTransferAmount("Amount:")
	if err != nil {
		return err
	}
	desc, err := prompts.PromptDescription("Description (optional):", false)
	if err != nil {
		return err
	}

	ok, err := prompts.PromptConfirm(fmt.Sprintf("Transfer %s from %s to %s?",
		utils.FormatAmount(amount), from.Name, to.Name), true)
	if err != nil || !ok {
		return err
	}

	transfer, err := r.svc.Transfer.TransferBetweenAccounts(ctx, r.user.ID, from.ID, to.ID, amount, desc)
	if err != nil {
		return err
	}

	pterm.Success.Println("Transfer completed")
	return views.RenderTransferReceipt(transfer)
}

func (r *Runner) transferToBank(ctx context.Context) error {
	banks, err := r.svc.LinkedBank.List(r.user.ID)
	if err != nil {
		return err
	}
	if len(banks) == 0 {
		pterm.Info.Println("No linked bank accounts. Link one from the menu first.")
		return nil
	}

	from, err := r.selectAccount("Transfer from:", "")
	if err != nil {
		return err
	}
	bank, err := prompts.PromptLinkedBankSelect("Transfer to:", banks)
	if err != nil {
		return err
	}

	amount, err := r.promptTransferAmount("Amount:")
	if err != nil {
		return err
	}
	desc, err := prompts.PromptDescription("Description (optional):", false)
	if err != nil {
		return err
	}

	ok, err := prompts.PromptConfirm(fmt.Sprintf("Transfer %s from %s to %s (%s)?",
		utils.FormatAmount(amount), from.Name, bank.BankName, utils.MaskAccountNumber(bank.AccountNumber)), true)
	if err != nil || !ok {
		return err
	}

	transfer, err := r.svc.Transfer.TransferToLinkedBank(ctx, r.user.ID, from.ID, bank.ID, amount, desc)
	if err != nil {
		return err
	}

	pterm.Success.Println("Transfer completed")
	return views.RenderTransferReceipt(transfer)
}

func (r *Runner) transferHistory(ctx context.Context) error {
	transfers, err := r.svc.Transfer.History(r.user.ID)
	if err != nil {
		return err
	}
	if len(transfers) == 0 {
		pterm.Info.Println("No transfers yet.")
		return nil
	}
	return views.RenderTransfers(transfers)
}
