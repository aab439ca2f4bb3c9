package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionValidate(t *testing.T) {
	recipient := int64(2002)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name:        "valid deposit",
			transaction: Transaction{Type: TransactionTypeDeposit, Amount: decimal.NewFromInt(100)},
		},
		{
			name:        "valid withdraw",
			transaction: Transaction{Type: TransactionTypeWithdraw, Amount: decimal.NewFromFloat(0.01)},
		},
		{
			name:        "valid transfer",
			transaction: Transaction{Type: TransactionTypeTransfer, Amount: decimal.NewFromInt(50), ToAccount: &recipient},
		},
		{
			name:        "unknown type",
			transaction: Transaction{Type: "refund", Amount: decimal.NewFromInt(10)},
			wantErr:     ErrInvalidTransactionType,
		},
		{
			name:        "zero amount",
			transaction: Transaction{Type: TransactionTypeDeposit, Amount: decimal.Zero},
			wantErr:     ErrInvalidAmount,
		},
		{
			name:        "transfer without recipient",
			transaction: Transaction{Type: TransactionTypeTransfer, Amount: decimal.NewFromInt(10)},
			wantErr:     ErrMissingRecipient,
		},
		{
			name:        "deposit with recipient",
			transaction: Transaction{Type: TransactionTypeDeposit, Amount: decimal.NewFromInt(10), ToAccount: &recipient},
			wantErr:     ErrUnexpectedRecipient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTransaction(t *testing.T) {
	before := time.Now()
	tx := NewTransaction(TransactionTypeDeposit, decimal.NewFromInt(100), nil)
	after := time.Now()

	assert.Equal(t, TransactionTypeDeposit, tx.Type)
	assert.True(t, decimal.NewFromInt(100).Equal(tx.Amount))
	assert.Nil(t, tx.ToAccount)
	assert.False(t, tx.Timestamp.Before(before))
	assert.False(t, tx.Timestamp.After(after))
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeDeposit))
	assert.True(t, IsValidTransactionType(TransactionTypeWithdraw))
	assert.True(t, IsValidTransactionType(TransactionTypeTransfer))
	assert.False(t, IsValidTransactionType("DEPOSIT"))
	assert.False(t, IsValidTransactionType(""))
}
