package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"demobank/internal/dto"
	"demobank/internal/errors"
	"demobank/internal/services"
)

// AccountHandler serves the account card, the public account list, and the
// session transaction history
type AccountHandler struct {
	ledger services.LedgerServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(ledger services.LedgerServiceInterface) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// GetAccount returns the current session's account card
// @Summary Current account
// @Description Account number, holder name and balance for the active session
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.AccountResponse} "Current account"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_006"
// @Router /account [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.ledger.CurrentAccount()
	if err != nil {
		return SendError(c, errors.AuthNoActiveSession)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: accountResponse(account),
	})
}

// ListAccounts returns account numbers and holder names for the login screen
// @Summary List accounts
// @Description Account numbers and holder names; balances and PINs are not exposed
// @Tags Accounts
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.AccountSummary} "Known accounts"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts := h.ledger.Accounts()

	summaries := make([]dto.AccountSummary, len(accounts))
	for i, account := range accounts {
		summaries[i] = dto.AccountSummary{
			AccountNumber: account.AccountNumber,
			HolderName:    account.HolderName,
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summaries,
	})
}

// GetTransactions returns the session transaction log, newest first
// @Summary Transaction history
// @Description The session-scoped transaction log; empty after every login and cleared on logout
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.HistoryResponse "Ordered transaction log"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_006"
// @Router /account/transactions [get]
func (h *AccountHandler) GetTransactions(c echo.Context) error {
	transactions, err := h.ledger.Transactions()
	if err != nil {
		return SendError(c, errors.AuthNoActiveSession)
	}

	return c.JSON(http.StatusOK, dto.HistoryResponse{
		Transactions: transactionResponses(transactions),
		Count:        len(transactions),
	})
}
