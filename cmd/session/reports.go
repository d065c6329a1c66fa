package session

import (
	"context"

	"github.com/hance08/cybank/internal/ui/prompts"
	"github.com/hance08/cybank/internal/ui/views"
)

const (
	reportSummary      = "summary"
	reportTransactions = "transactions"
	reportPortfolio    = "portfolio"
	reportComplete     = "complete"
	reportBack         = "back"
)

var reportMenu = []prompts.MenuItem{
	{Key: reportSummary, Label: "Account summary"},
	{Key: reportTransactions, Label: "Transaction report"},
	{Key: reportPortfolio, Label: "Linked bank portfolio"},
	{Key: reportComplete, Label: "Complete financial report"},
	{Key: reportBack, Label: "Back"},
}

func (r *Runner) reports(ctx context.Context) error {
	choice, err := prompts.PromptMenu("Reports", reportMenu)
	if err != nil {
		return err
	}

	switch choice {
	case reportSummary:
		s, err := r.svc.Report.AccountSummary(r.user.ID)
		if err != nil {
			return err
		}
		return views.RenderAccountSummary(s)

	case reportTransactions:
		acc, err := r.selectAccount("Report for:", "")
		if err != nil {
			return err
		}
		rep, err := r.svc.Report.TransactionReport(r.user.ID, acc.ID)
		if err != nil {
			return err
		}
		return views.RenderTransactionReport(rep)

	case reportPortfolio:
		p, err := r.svc.Report.LinkedBankPortfolio(r.user.ID)
		if err != nil {
			return err
		}
		return views.RenderLinkedBankPortfolio(p)

	case reportComplete:
		rep, err := r.svc.Report.CompleteReport(r.user.ID)
		if err != nil {
			return err
		}
		return views.RenderCompleteReport(rep)
	}

	return nil
}
