package session

import (
	"context"

	"github.com/hance08/cybank/internal/errhandler"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/service"
	"github.com/hance08/cybank/internal/ui"
	"github.com/hance08/cybank/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Runner drives one interactive session. All state lives in the store
// behind svc and disappears when the process exits.
type Runner struct {
	svc  *service.Service
	user *model.User
}

func NewRunner(svc *service.Service) *Runner {
	return &Runner{svc: svc}
}

func NewSessionCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive banking session",
		Long: `Start an interactive banking session.

Register or log in, open accounts, deposit and withdraw, link external
bank accounts and move money between them. Nothing is saved: every
session starts with an empty ledger.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewRunner(svc).Run(cmd.Context())
		},
	}
}

type action func(ctx context.Context) error

// Run loops over the menus until the user exits or aborts a menu.
func (r *Runner) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ui.PrintL1Title("CyBank")
	pterm.Println(pterm.Gray("In-memory session. All data is cleared on exit."))
	pterm.Println()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		var (
			choice string
			err    error
		)
		if r.user == nil {
			choice, err = prompts.PromptMenu("Welcome to CyBank", guestMenu)
		} else {
			choice, err = prompts.PromptMenu("Logged in as "+r.user.FullName, userMenu)
		}
		if err != nil {
			if errhandler.IsCancelled(err) {
				pterm.Info.Println("Goodbye!")
				return nil
			}
			return err
		}

		if choice == menuExit {
			pterm.Info.Println("Goodbye!")
			return nil
		}

		run, ok := r.actions()[choice]
		if !ok {
			continue
		}
		if err := run(ctx); err != nil {
			errhandler.HandleError(err)
		}
		pterm.Println()
	}
}

const (
	menuRegister      = "register"
	menuLogin         = "login"
	menuExit          = "exit"
	menuAccounts      = "accounts"
	menuCreateAccount = "create-account"
	menuDeposit       = "deposit"
	menuWithdraw      = "withdraw"
	menuHistory       = "history"
	menuTransfer      = "transfer"
	menuTransferBank  = "transfer-bank"
	menuLinkBank      = "link-bank"
	menuLinkedBanks   = "linked-banks"
	menuUnlinkBank    = "unlink-bank"
	menuTransferLog   = "transfer-log"
	menuReports       = "reports"
	menuLogout        = "logout"
)

var guestMenu = []prompts.MenuItem{
	{Key: menuRegister, Label: "Register"},
	{Key: menuLogin, Label: "Login"},
	{Key: menuExit, Label: "Exit"},
}

var userMenu = []prompts.MenuItem{
	{Key: menuAccounts, Label: "View accounts"},
	{Key: menuCreateAccount, Label: "Open a new account"},
	{Key: menuDeposit, Label: "Deposit"},
	{Key: menuWithdraw, Label: "Withdraw"},
	{Key: menuHistory, Label: "Transaction history"},
	{Key: menuTransfer, Label: "Transfer between accounts"},
	{Key: menuTransferBank, Label: "Transfer to linked bank"},
	{Key: menuLinkBank, Label: "Link a bank account"},
	{Key: menuLinkedBanks, Label: "View linked banks"},
	{Key: menuUnlinkBank, Label: "Unlink a bank account"},
	{Key: menuTransferLog, Label: "Transfer history"},
	{Key: menuReports, Label: "Reports"},
	{Key: menuLogout, Label: "Logout"},
	{Key: menuExit, Label: "Exit"},
}

func (r *Runner) actions() map[string]action {
	return map[string]action{
		menuRegister:      r.register,
		menuLogin:         r.login,
		menuAccounts:      r.listAccounts,
		menuCreateAccount: r.createAccount,
		menuDeposit:       r.deposit,
		menuWithdraw:      r.withdraw,
		menuHistory:       r.history,
		menuTransfer:      r.transfer,
		menuTransferBank:  r.transferToBank,
		menuLinkBank:      r.linkBank,
		menuLinkedBanks:   r.listLinkedBanks,
		menuUnlinkBank:    r.unlinkBank,
		menuTransferLog:   r.transferHistory,
		menuReports:       r.reports,
		menuLogout:        r.logout,
	}
}

func (r *Runner) register(ctx context.Context) error {
	in, err := prompts.PromptRegistration()
	if err != nil {
		return err
	}

	user, err := r.svc.User.Register(in.Username, in.Password, in.FullName, in.Email)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Welcome, %s! You can now log in as '%s'.\n", user.FullName, user.Username)
	return nil
}

func (r *Runner) login(ctx context.Context) error {
	username, password, err := prompts.PromptLogin()
	if err != nil {
		return err
	}

	user, err := r.svc.User.Authenticate(username, password)
	if err != nil {
		return err
	}

	r.user = user
	pterm.Success.Printf("Logged in as %s\n", user.FullName)
	return nil
}

func (r *Runner) logout(ctx context.Context) error {
	pterm.Info.Printf("Goodbye, %s\n", r.user.FullName)
	r.user = nil
	return nil
}
