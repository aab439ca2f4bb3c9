package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction Request DTOs

// AmountRequest carries the amount for a deposit or withdrawal. Amounts are
// decimal strings; floats never cross the wire.
type AmountRequest struct {
	Amount string `json:"amount" validate:"required,positive_amount"`
}

// TransferRequest carries the destination and amount for a transfer
type TransferRequest struct {
	ToAccount int64  `json:"to_account" validate:"required,account_number"`
	Amount    string `json:"amount" validate:"required,positive_amount"`
}

// Transaction Response DTOs

// TransactionResponse is one entry of the session transaction log
type TransactionResponse struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	ToAccount *int64          `json:"to_account,omitempty"`
}

// HistoryResponse is the ordered session transaction log, newest first
type HistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}
