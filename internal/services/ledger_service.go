package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"demobank/internal/models"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidPIN        = errors.New("invalid pin")
	ErrPINLengthInvalid  = errors.New("pin must be exactly 4 digits")
	ErrPINMismatch       = errors.New("pin and confirmation do not match")
	ErrHolderNameEmpty   = errors.New("account holder name is required")
	ErrNoActiveSession   = errors.New("no active session")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrRecipientNotFound = errors.New("recipient account not found")
	ErrSelfTransfer      = errors.New("cannot transfer to the same account")
)

// session binds the ledger to one authenticated account and carries the
// session-scoped transaction log, newest entry first.
type session struct {
	accountNumber int64
	log           []models.Transaction
}

// ledgerService implements LedgerServiceInterface. A single mutex serializes
// every operation, so each mutation is observed all-or-nothing and the
// transfer debit+credit pair is atomic from any caller's perspective.
type ledgerService struct {
	mu       sync.Mutex
	accounts map[int64]*models.Account
	session  *session
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

// NewLedgerService creates a ledger pre-populated with the given seed
// accounts. Seed accounts must be valid and carry unique account numbers.
func NewLedgerService(seed []models.Account, metrics MetricsRecorderInterface, logger *slog.Logger) (LedgerServiceInterface, error) {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &ledgerService{
		accounts: make(map[int64]*models.Account, len(seed)),
		metrics:  metrics,
		logger:   logger,
	}

	for i := range seed {
		account := seed[i]
		if err := account.Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed account %d: %w", account.AccountNumber, err)
		}
		if _, exists := s.accounts[account.AccountNumber]; exists {
			return nil, fmt.Errorf("duplicate seed account number %d", account.AccountNumber)
		}
		s.accounts[account.AccountNumber] = &account
	}

	s.metrics.RecordGauge("accounts_total", float64(len(s.accounts)))
	return s, nil
}

// Authenticate looks up the account and compares the PIN. On success the
// session is bound to the account and the transaction log starts empty.
// No account state is touched on failure.
func (s *ledgerService) Authenticate(accountNumber int64, pin string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		s.metrics.IncrementCounter("auth_events", map[string]string{"event_type": "login_unknown_account"})
		return nil, ErrAccountNotFound
	}

	if !account.MatchesPIN(pin) {
		s.metrics.IncrementCounter("auth_events", map[string]string{"event_type": "login_invalid_pin"})
		return nil, ErrInvalidPIN
	}

	s.establishSession(accountNumber)
	s.metrics.IncrementCounter("auth_events", map[string]string{"event_type": "login_success"})
	s.logger.Info("session established", "account_number", accountNumber)

	return snapshot(account), nil
}

// CreateAccount validates the PIN pair, allocates the next account number,
// appends the account with a zero balance, and authenticates straight into it.
func (s *ledgerService) CreateAccount(holderName, pin, confirmPIN string) (*models.Account, error) {
	if holderName == "" {
		return nil, ErrHolderNameEmpty
	}

	if !models.ValidPIN(pin) {
		return nil, ErrPINLengthInvalid
	}

	if pin != confirmPIN {
		return nil, ErrPINMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := &models.Account{
		AccountNumber: s.nextAccountNumber(),
		HolderName:    holderName,
		Balance:       decimal.Zero,
		PIN:           pin,
	}
	s.accounts[account.AccountNumber] = account

	s.establishSession(account.AccountNumber)
	s.metrics.IncrementCounter("auth_events", map[string]string{"event_type": "account_created"})
	s.metrics.RecordGauge("accounts_total", float64(len(s.accounts)))
	s.logger.Info("account created", "account_number", account.AccountNumber)

	return snapshot(account), nil
}

// Logout clears the session and the transaction log unconditionally
func (s *ledgerService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.logger.Info("session closed", "account_number", s.session.accountNumber)
	}
	s.session = nil
	s.metrics.IncrementCounter("auth_events", map[string]string{"event_type": "logout"})
	s.metrics.RecordGauge("session_active", 0)
}

// Deposit credits the current account and appends a deposit entry to the log
func (s *ledgerService) Deposit(amount decimal.Decimal) (*models.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.sessionAccount()
	if err != nil {
		return nil, err
	}

	if err := account.Credit(amount); err != nil {
		return nil, err
	}
	s.appendLog(models.NewTransaction(models.TransactionTypeDeposit, amount, nil))

	s.recordOperation("deposit", amount)
	return snapshot(account), nil
}

// Withdraw debits the current account when funds suffice; on failure the
// balance and the log are left unchanged.
func (s *ledgerService) Withdraw(amount decimal.Decimal) (*models.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.sessionAccount()
	if err != nil {
		return nil, err
	}

	if !account.CanWithdraw(amount) {
		s.metrics.IncrementCounter("ledger_operations", map[string]string{"operation": "withdraw", "status": "insufficient_funds"})
		return nil, ErrInsufficientFunds
	}

	if err := account.Debit(amount); err != nil {
		return nil, err
	}
	s.appendLog(models.NewTransaction(models.TransactionTypeWithdraw, amount, nil))

	s.recordOperation("withdraw", amount)
	return snapshot(account), nil
}

// Transfer moves amount from the current account to the recipient. Ordered
// checks, first failure wins with no partial effect: recipient exists,
// sufficient funds, not a self transfer. The debit and credit are applied
// together under the ledger lock and a single transfer entry is appended to
// the acting account's log.
func (s *ledgerService) Transfer(toAccountNumber int64, amount decimal.Decimal) (*models.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.sessionAccount()
	if err != nil {
		return nil, err
	}

	to, ok := s.accounts[toAccountNumber]
	if !ok {
		s.metrics.IncrementCounter("ledger_operations", map[string]string{"operation": "transfer", "status": "recipient_not_found"})
		return nil, ErrRecipientNotFound
	}

	if from.Balance.LessThan(amount) {
		s.metrics.IncrementCounter("ledger_operations", map[string]string{"operation": "transfer", "status": "insufficient_funds"})
		return nil, ErrInsufficientFunds
	}

	if toAccountNumber == from.AccountNumber {
		s.metrics.IncrementCounter("ledger_operations", map[string]string{"operation": "transfer", "status": "self_transfer"})
		return nil, ErrSelfTransfer
	}

	if err := from.Debit(amount); err != nil {
		return nil, err
	}
	if err := to.Credit(amount); err != nil {
		// Debit succeeded, so a credit failure must roll it back. Unreachable
		// for a positive amount, but the invariant is conservation.
		from.Balance = from.Balance.Add(amount)
		return nil, err
	}
	s.appendLog(models.NewTransaction(models.TransactionTypeTransfer, amount, &toAccountNumber))

	s.recordOperation("transfer", amount)
	return snapshot(from), nil
}

// CurrentAccount returns a snapshot of the session's account
func (s *ledgerService) CurrentAccount() (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.sessionAccount()
	if err != nil {
		return nil, err
	}
	return snapshot(account), nil
}

// Transactions returns a copy of the session transaction log, newest first
func (s *ledgerService) Transactions() ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoActiveSession
	}

	out := make([]models.Transaction, len(s.session.log))
	copy(out, s.session.log)
	return out, nil
}

// Accounts returns snapshots of every account, ordered by account number
func (s *ledgerService) Accounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		out = append(out, *account)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AccountNumber < out[j].AccountNumber
	})
	return out
}

// AccountCount returns the number of accounts in the ledger
func (s *ledgerService) AccountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// establishSession binds the ledger to the account and resets the log.
// Callers must hold the lock.
func (s *ledgerService) establishSession(accountNumber int64) {
	s.session = &session{accountNumber: accountNumber}
	s.metrics.RecordGauge("session_active", 1)
}

// sessionAccount resolves the current session's account. Callers must hold
// the lock.
func (s *ledgerService) sessionAccount() (*models.Account, error) {
	if s.session == nil {
		return nil, ErrNoActiveSession
	}

	account, ok := s.accounts[s.session.accountNumber]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// appendLog prepends an entry so the log stays newest-first. Callers must
// hold the lock and have a session established.
func (s *ledgerService) appendLog(tx models.Transaction) {
	s.session.log = append([]models.Transaction{tx}, s.session.log...)
}

// nextAccountNumber allocates max(existing)+1, or the seed base when the
// ledger is empty. Callers must hold the lock.
func (s *ledgerService) nextAccountNumber() int64 {
	if len(s.accounts) == 0 {
		return models.SeedAccountNumber
	}

	var max int64
	for number := range s.accounts {
		if number > max {
			max = number
		}
	}
	return max + 1
}

func (s *ledgerService) recordOperation(operation string, amount decimal.Decimal) {
	s.metrics.IncrementCounter("ledger_operations", map[string]string{"operation": operation, "status": "success"})
	value, _ := amount.Float64()
	s.metrics.RecordAmount("transaction_amount", value)
}

// snapshot returns a copy so callers cannot mutate ledger state through the
// returned pointer
func snapshot(account *models.Account) *models.Account {
	cp := *account
	return &cp
}
