package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// SeedAccountNumber is the number assigned to the first account when the
	// ledger is otherwise empty. Subsequent accounts are max(existing)+1.
	SeedAccountNumber int64 = 2001

	// PINLength is the exact number of digits a PIN must have.
	PINLength = 4
)

var (
	ErrInvalidBalance    = errors.New("balance cannot be negative")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrPINLengthInvalid  = errors.New("pin must be exactly 4 digits")
	ErrHolderNameEmpty   = errors.New("account holder name is required")
)

// Account represents a demo bank account. PINs are stored in plain form and
// compared byte-for-byte; this is a demo profile, not a credential system.
// The PIN is never serialized.
type Account struct {
	AccountNumber int64           `json:"account_number"`
	HolderName    string          `json:"account_holder_name"`
	Balance       decimal.Decimal `json:"balance"`
	PIN           string          `json:"-"`
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.AccountNumber <= 0 {
		return errors.New("account number must be positive")
	}

	if a.HolderName == "" {
		return ErrHolderNameEmpty
	}

	if !ValidPIN(a.PIN) {
		return ErrPINLengthInvalid
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// CanWithdraw checks if the amount can be withdrawn without the balance
// going negative
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero) && a.Balance.GreaterThanOrEqual(amount)
}

// Debit debits the account. The balance is left untouched when the amount is
// not positive or exceeds the balance.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit credits the account
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// MatchesPIN reports whether the supplied PIN matches the stored one
func (a *Account) MatchesPIN(pin string) bool {
	return a.PIN != "" && a.PIN == pin
}

// ValidPIN checks that a PIN is exactly four ASCII digits
func ValidPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}

	for _, char := range pin {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
