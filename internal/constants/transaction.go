package constants

const (
	// Amount limits for deposits, withdrawals and transfers.
	MinAmount = "0.01"
	MaxAmount = "999999.99"

	DescTransferInternal = "Transfer between accounts"
	DescTransferExternal = "Transfer to external bank"
	DescDeposit          = "Deposit"
	DescWithdraw         = "Withdrawal"

	CategoryTransfer = "transfer"

	DateTimeFormat = "2006-01-02 15:04:05"
)
