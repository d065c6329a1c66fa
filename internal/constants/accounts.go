package constants

const (
	MinNameLen          = 2
	MaxNameLen          = 50
	MinAccountNumberLen = 8
	MaxAccountNumberLen = 16
	MinUsernameLen      = 3
	MaxUsernameLen      = 20
	MinPasswordLen      = 6
)

const (
	DefaultAccountName = "Default Account"
	CurrencySymbol     = "₱"
	DefaultCurrency    = "PHP"
)

// Linked bank account types.
const (
	LinkedChecking    = "checking"
	LinkedSavings     = "savings"
	LinkedMoneyMarket = "money_market"
	LinkedSalary      = "salary"
	LinkedTimeDeposit = "time_deposit"
	LinkedPassbook    = "passbook"
	LinkedDigital     = "digital"
)

var LinkedAccountTypes = []string{
	LinkedChecking,
	LinkedSavings,
	LinkedMoneyMarket,
	LinkedSalary,
	LinkedTimeDeposit,
	LinkedPassbook,
	LinkedDigital,
}

var SupportedBanks = []string{
	"BDO",
	"BPI",
	"Metrobank",
	"PNB",
	"Security Bank",
	"Eastwest Bank",
	"UCPB",
	"China Bank",
	"ING Bank",
	"Maybank",
	"Standard Chartered",
	"HSBC",
	"UBP",
	"Equitable PCBank",
	"Landbank",
	"DBP",
	"Asia United Bank",
	"Bank of Commerce",
	"Citi",
	"Other",
}
