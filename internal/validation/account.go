package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hance08/cybank/internal/constants"
	"github.com/shopspring/decimal"
)

// ValidateAccountName validates a ledger account display name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name is required")
	}
	if utf8.RuneCountInString(name) < constants.MinNameLen {
		return fmt.Errorf("account name must be at least %d characters long", constants.MinNameLen)
	}
	if utf8.RuneCountInString(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateAccountNumber checks an external account number: digits only,
// 8 to 16 of them.
func ValidateAccountNumber(number string) error {
	number = strings.TrimSpace(number)

	if number == "" {
		return fmt.Errorf("account number is required")
	}
	for _, c := range number {
		if c < '0' || c > '9' {
			return fmt.Errorf("account number must contain only digits")
		}
	}
	if len(number) < constants.MinAccountNumberLen {
		return fmt.Errorf("account number must be at least %d digits long", constants.MinAccountNumberLen)
	}
	if len(number) > constants.MaxAccountNumberLen {
		return fmt.Errorf("account number must not exceed %d digits", constants.MaxAccountNumberLen)
	}
	return nil
}

// NormalizeAccountType returns the canonical linked account type for a
// case-insensitive input, or an error listing the valid types.
func NormalizeAccountType(accountType string) (string, error) {
	accountType = strings.ToLower(strings.TrimSpace(accountType))
	if accountType == "" {
		return "", fmt.Errorf("account type is required")
	}

	for _, t := range constants.LinkedAccountTypes {
		if t == accountType {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid account type '%s' (valid types: %s)",
		accountType, strings.Join(constants.LinkedAccountTypes, ", "))
}

func ValidateAccountType(accountType string) error {
	_, err := NormalizeAccountType(accountType)
	return err
}

func ValidateBankName(bankName string) error {
	bankName = strings.TrimSpace(bankName)
	if bankName == "" {
		return fmt.Errorf("bank name is required")
	}

	for _, b := range constants.SupportedBanks {
		if b == bankName {
			return nil
		}
	}
	return fmt.Errorf("bank must be a Philippine bank (e.g. %s)",
		strings.Join(constants.SupportedBanks[:5], ", "))
}

// ValidateBalance rejects negative opening balances.
func ValidateBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return fmt.Errorf("balance can't be negative")
	}
	return nil
}
