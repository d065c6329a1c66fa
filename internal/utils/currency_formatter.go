package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/cybank/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount as pesos with thousands separators,
// e.g. 1234.5 -> "₱1,234.50".
func FormatAmount(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + constants.CurrencySymbol + groupThousands(amount.StringFixed(2))
}

// FormatSigned renders an amount with an explicit sign, e.g. "+50.00".
func FormatSigned(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return amount.StringFixed(2)
	}
	return "+" + amount.StringFixed(2)
}

// ParseAmount converts user input to a decimal amount.
// Accepts "150", "150.5", "1,500.50" and an optional leading peso sign.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountStr)
	cleaned = strings.TrimPrefix(cleaned, constants.CurrencySymbol)
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if amount.Exponent() < -2 && !amount.Equal(amount.Round(2)) {
		return decimal.Zero, fmt.Errorf("invalid amount: %s (at most 2 decimal places)", amountStr)
	}

	return amount, nil
}

func groupThousands(fixed string) string {
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return fixed
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
