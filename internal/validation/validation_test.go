package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", "juan", false},
		{"min length", "abc", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 21), true},
		{"contains space", "juan dela", true},
		{"contains digit", "juan1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, in := range []string{"", "short", "has space"} {
		if err := ValidatePassword(in); err == nil {
			t.Errorf("ValidatePassword(%q) expected error", in)
		}
	}
}

func TestValidateFullName(t *testing.T) {
	valid := []string{"Juan Dela Cruz", "Mary-Ann O'Neil", "Jo"}
	for _, in := range valid {
		if err := ValidateFullName(in); err != nil {
			t.Errorf("ValidateFullName(%q) unexpected error: %v", in, err)
		}
	}

	invalid := []string{"", "J", "Juan 3rd", strings.Repeat("a", 51)}
	for _, in := range invalid {
		if err := ValidateFullName(in); err == nil {
			t.Errorf("ValidateFullName(%q) expected error", in)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	for _, in := range []string{"", "juan@example.com", "a.b+c@mail.co"} {
		if err := ValidateEmail(in); err != nil {
			t.Errorf("ValidateEmail(%q) unexpected error: %v", in, err)
		}
	}
	for _, in := range []string{"juan", "juan@", "juan@example", "@example.com"} {
		if err := ValidateEmail(in); err == nil {
			t.Errorf("ValidateEmail(%q) expected error", in)
		}
	}
}

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"12345678", false},
		{"1234567890123456", false},
		{"1234567", true},
		{"12345678901234567", true},
		{"1234abcd", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateAccountNumber(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAccountNumber(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestNormalizeAccountType(t *testing.T) {
	got, err := NormalizeAccountType(" Savings ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "savings" {
		t.Errorf("got %q, want savings", got)
	}

	if err := ValidateAccountType("crypto"); err == nil {
		t.Error("expected error for unknown account type")
	}
}

func TestValidateBankName(t *testing.T) {
	if err := ValidateBankName("BDO"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateBankName("Bank of Nowhere"); err == nil {
		t.Error("expected error for unsupported bank")
	}
}

func TestValidateAccountName(t *testing.T) {
	if err := ValidateAccountName("Savings"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, in := range []string{"", "A", strings.Repeat("x", 51)} {
		if err := ValidateAccountName(in); err == nil {
			t.Errorf("ValidateAccountName(%q) expected error", in)
		}
	}
}

func TestValidateBalance(t *testing.T) {
	if err := ValidateBalance(decimal.Zero); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateBalance(decimal.NewFromInt(-1)); err == nil {
		t.Error("expected error for negative balance")
	}
}

func TestAmountLimits(t *testing.T) {
	limits, err := NewAmountLimits("0.01", "999999.99")
	if err != nil {
		t.Fatalf("NewAmountLimits: %v", err)
	}

	tests := []struct {
		in      string
		wantErr bool
	}{
		{"0.01", false},
		{"999999.99", false},
		{"0", true},
		{"0.001", true},
		{"1000000", true},
		{"-5", true},
		{"abc", true},
	}

	validate := limits.Input()
	for _, tt := range tests {
		err := validate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("amount %q error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestNewAmountLimitsRejectsBadBounds(t *testing.T) {
	bad := [][2]string{{"0", "10"}, {"10", "1"}, {"x", "10"}, {"1", "y"}}
	for _, b := range bad {
		if _, err := NewAmountLimits(b[0], b[1]); err == nil {
			t.Errorf("NewAmountLimits(%q, %q) expected error", b[0], b[1])
		}
	}
}

func TestValidatePositiveAmount(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"0.01", false},
		{"1500000.00", false},
		{"1,500,000", false},
		{"0", true},
		{"-5", true},
		{"abc", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidatePositiveAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePositiveAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
