package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypeWithdraw = "withdraw"
	TransactionTypeTransfer = "transfer"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrMissingRecipient       = errors.New("transfer requires a destination account")
	ErrUnexpectedRecipient    = errors.New("only transfers carry a destination account")
)

// Transaction is a single immutable entry in the session transaction log.
// ToAccount is set only for transfers and names the destination account.
type Transaction struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	ToAccount *int64          `json:"to_account,omitempty"`
}

// NewTransaction builds a log entry stamped with the current time
func NewTransaction(txType string, amount decimal.Decimal, toAccount *int64) Transaction {
	return Transaction{
		Type:      txType,
		Amount:    amount,
		Timestamp: time.Now(),
		ToAccount: toAccount,
	}
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Type == TransactionTypeTransfer && t.ToAccount == nil {
		return ErrMissingRecipient
	}

	if t.Type != TransactionTypeTransfer && t.ToAccount != nil {
		return ErrUnexpectedRecipient
	}

	return nil
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(txType string) bool {
	switch txType {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
