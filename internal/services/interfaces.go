package services

import (
	"time"

	"github.com/shopspring/decimal"

	"demobank/internal/models"
)

// LedgerServiceInterface defines the account ledger state machine: the
// in-memory account set, the single authenticated session, and the
// session-scoped transaction log. Every mutating operation either applies
// completely or leaves the ledger untouched.
type LedgerServiceInterface interface {
	// Session lifecycle
	Authenticate(accountNumber int64, pin string) (*models.Account, error)
	CreateAccount(holderName, pin, confirmPIN string) (*models.Account, error)
	Logout()

	// Mutations on the current session's account
	Deposit(amount decimal.Decimal) (*models.Account, error)
	Withdraw(amount decimal.Decimal) (*models.Account, error)
	Transfer(toAccountNumber int64, amount decimal.Decimal) (*models.Account, error)

	// Read-only views
	CurrentAccount() (*models.Account, error)
	Transactions() ([]models.Transaction, error)
	Accounts() []models.Account
	AccountCount() int
}

// TokenServiceInterface handles session token generation and validation
type TokenServiceInterface interface {
	GenerateSessionToken(account *models.Account) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface abstracts metrics recording so services do not
// depend on a concrete metrics backend
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordAmount(name string, amount float64)
	RecordGauge(name string, value float64)
}
