package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Auth Request DTOs

// LoginRequest contains login credentials
type LoginRequest struct {
	AccountNumber int64  `json:"account_number" validate:"required,account_number"`
	PIN           string `json:"pin" validate:"required,pin"`
}

// CreateAccountRequest contains account-opening data. PIN shape and the
// PIN/confirmation match are checked by the ledger so their failures map to
// distinct error codes; only presence is validated here.
type CreateAccountRequest struct {
	HolderName string `json:"account_holder_name" validate:"required,min=1,max=100"`
	PIN        string `json:"pin" validate:"required"`
	ConfirmPIN string `json:"confirm_pin" validate:"required"`
}

// Auth Response DTOs

// SessionResponse is returned on successful login or account creation
type SessionResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Account     AccountResponse `json:"account"`
}

// AccountResponse is the account card payload. The PIN is never included.
type AccountResponse struct {
	AccountNumber int64           `json:"account_number"`
	HolderName    string          `json:"account_holder_name"`
	Balance       decimal.Decimal `json:"balance"`
}

// AccountSummary lists an account for the login screen without exposing its
// balance
type AccountSummary struct {
	AccountNumber int64  `json:"account_number"`
	HolderName    string `json:"account_holder_name"`
}
