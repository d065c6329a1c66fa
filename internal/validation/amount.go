package validation

import (
	"fmt"

	"github.com/hance08/cybank/internal/utils"
	"github.com/shopspring/decimal"
)

// AmountLimits bounds deposits and withdrawals (inclusive).
type AmountLimits struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func NewAmountLimits(minAmount, maxAmount string) (AmountLimits, error) {
	lo, err := decimal.NewFromString(minAmount)
	if err != nil {
		return AmountLimits{}, fmt.Errorf("invalid min amount %q: %w", minAmount, err)
	}
	hi, err := decimal.NewFromString(maxAmount)
	if err != nil {
		return AmountLimits{}, fmt.Errorf("invalid max amount %q: %w", maxAmount, err)
	}
	if !lo.IsPositive() || hi.LessThan(lo) {
		return AmountLimits{}, fmt.Errorf("invalid amount limits [%s, %s]", minAmount, maxAmount)
	}
	return AmountLimits{Min: lo, Max: hi}, nil
}

func (l AmountLimits) Validate(amount decimal.Decimal) error {
	if amount.LessThan(l.Min) {
		return fmt.Errorf("amount must be at least %s", utils.FormatAmount(l.Min))
	}
	if amount.GreaterThan(l.Max) {
		return fmt.Errorf("amount cannot exceed %s", utils.FormatAmount(l.Max))
	}
	return nil
}

// Input returns a validator for raw text input, suitable for huh fields.
func (l AmountLimits) Input() func(string) error {
	return func(s string) error {
		amount, err := utils.ParseAmount(s)
		if err != nil {
			return err
		}
		return l.Validate(amount)
	}
}

// ValidatePositiveAmount accepts any parseable amount above zero. Transfers
// use it instead of the deposit limits.
func ValidatePositiveAmount(s string) error {
	amount, err := utils.ParseAmount(s)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
