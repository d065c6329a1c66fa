package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/store"
	"github.com/shopspring/decimal"
)

// ReportService builds read-only projections over a user's ledger and
// linked banks. Nothing here mutates state.
type ReportService struct {
	repo store.Repository
	now  func() time.Time
}

func NewReportService(repo store.Repository) *ReportService {
	return &ReportService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

type AccountLine struct {
	Account          *model.Account
	TransactionCount int
}

type AccountSummary struct {
	Accounts     []AccountLine
	TotalBalance decimal.Decimal
	GeneratedAt  time.Time
}

type TransactionLine struct {
	Transaction *model.Transaction
	AccountName string
}

type TransactionReport struct {
	// Transactions are newest first.
	Transactions []TransactionLine
	TotalCredits decimal.Decimal
	TotalDebits  decimal.Decimal
	NetChange    decimal.Decimal
	GeneratedAt  time.Time
}

type BankTypeSummary struct {
	AccountType  string
	Count        int
	TotalBalance decimal.Decimal
	Banks        []string
}

type LinkedBankPortfolio struct {
	Banks          []*model.LinkedBankAccount
	ByType         []BankTypeSummary
	TotalBalance   decimal.Decimal
	AverageBalance decimal.Decimal
	GeneratedAt    time.Time
}

type CombinedAnalysis struct {
	TotalLedgerBalance decimal.Decimal
	TotalLinkedBalance decimal.Decimal
	TotalBalance       decimal.Decimal
	LedgerPercentage   decimal.Decimal
	LinkedPercentage   decimal.Decimal
	TotalTransactions  int
	TotalAccounts      int
	TotalLinkedBanks   int
}

type CompleteReport struct {
	Summary      *AccountSummary
	Transactions *TransactionReport
	Portfolio    *LinkedBankPortfolio
	Combined     CombinedAnalysis
	GeneratedAt  time.Time
}

func (rs *ReportService) AccountSummary(userID string) (*AccountSummary, error) {
	accounts, err := rs.repo.ListAccounts(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summary := &AccountSummary{
		Accounts:     make([]AccountLine, 0, len(accounts)),
		TotalBalance: decimal.Zero,
		GeneratedAt:  rs.now(),
	}
	for _, acc := range accounts {
		txns, err := rs.repo.ListTransactions(acc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions for %s: %w", acc.ID, err)
		}
		summary.Accounts = append(summary.Accounts, AccountLine{Account: acc, TransactionCount: len(txns)})
		summary.TotalBalance = summary.TotalBalance.Add(acc.Balance)
	}
	return summary, nil
}

// TransactionReport covers every account of the user, or only accountID
// when it is not empty.
func (rs *ReportService) TransactionReport(userID, accountID string) (*TransactionReport, error) {
	var accounts []*model.Account
	if accountID != "" {
		acc, err := ownedAccount(rs.repo, userID, accountID)
		if err != nil {
			return nil, err
		}
		accounts = []*model.Account{acc}
	} else {
		var err error
		accounts, err = rs.repo.ListAccounts(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
	}

	report := &TransactionReport{
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
		GeneratedAt:  rs.now(),
	}
	for _, acc := range accounts {
		txns, err := rs.repo.ListTransactions(acc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions for %s: %w", acc.ID, err)
		}
		for _, txn := range txns {
			report.Transactions = append(report.Transactions, TransactionLine{Transaction: txn, AccountName: acc.Name})
			if txn.Entry.IsCredit() {
				report.TotalCredits = report.TotalCredits.Add(txn.Entry.Amount())
			} else {
				report.TotalDebits = report.TotalDebits.Add(txn.Entry.Amount())
			}
		}
	}

	slices.SortStableFunc(report.Transactions, func(a, b TransactionLine) int {
		return b.Transaction.CreatedAt.Compare(a.Transaction.CreatedAt)
	})
	report.NetChange = report.TotalCredits.Sub(report.TotalDebits)
	return report, nil
}

// LinkedBankPortfolio groups linked banks by account type, in order of
// first appearance.
func (rs *ReportService) LinkedBankPortfolio(userID string) (*LinkedBankPortfolio, error) {
	banks, err := rs.repo.ListLinkedBanks(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked banks: %w", err)
	}

	portfolio := &LinkedBankPortfolio{
		Banks:          banks,
		TotalBalance:   decimal.Zero,
		AverageBalance: decimal.Zero,
		GeneratedAt:    rs.now(),
	}

	index := make(map[string]int)
	for _, bank := range banks {
		portfolio.TotalBalance = portfolio.TotalBalance.Add(bank.Balance)

		i, ok := index[bank.AccountType]
		if !ok {
			i = len(portfolio.ByType)
			index[bank.AccountType] = i
			portfolio.ByType = append(portfolio.ByType, BankTypeSummary{
				AccountType:  bank.AccountType,
				TotalBalance: decimal.Zero,
			})
		}
		group := &portfolio.ByType[i]
		group.Count++
		group.TotalBalance = group.TotalBalance.Add(bank.Balance)
		group.Banks = append(group.Banks, bank.BankName)
	}

	if len(banks) > 0 {
		portfolio.AverageBalance = portfolio.TotalBalance.Div(decimal.NewFromInt(int64(len(banks)))).Round(2)
	}
	return portfolio, nil
}

func (rs *ReportService) CompleteReport(userID string) (*CompleteReport, error) {
	summary, err := rs.AccountSummary(userID)
	if err != nil {
		return nil, err
	}
	txns, err := rs.TransactionReport(userID, "")
	if err != nil {
		return nil, err
	}
	portfolio, err := rs.LinkedBankPortfolio(userID)
	if err != nil {
		return nil, err
	}

	total := summary.TotalBalance.Add(portfolio.TotalBalance)
	combined := CombinedAnalysis{
		TotalLedgerBalance: summary.TotalBalance,
		TotalLinkedBalance: portfolio.TotalBalance,
		TotalBalance:       total,
		LedgerPercentage:   decimal.Zero,
		LinkedPercentage:   decimal.Zero,
		TotalTransactions:  len(txns.Transactions),
		TotalAccounts:      len(summary.Accounts),
		TotalLinkedBanks:   len(portfolio.Banks),
	}
	if total.IsPositive() {
		hundred := decimal.NewFromInt(100)
		combined.LedgerPercentage = summary.TotalBalance.Div(total).Mul(hundred).Round(2)
		combined.LinkedPercentage = portfolio.TotalBalance.Div(total).Mul(hundred).Round(2)
	}

	return &CompleteReport{
		Summary:      summary,
		Transactions: txns,
		Portfolio:    portfolio,
		Combined:     combined,
		GeneratedAt:  rs.now(),
	}, nil
}
