package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"demobank/internal/dto"
	"demobank/internal/errors"
	"demobank/internal/models"
	"demobank/internal/services"
)

// TransactionHandler handles deposit, withdraw and transfer requests against
// the current session's account
type TransactionHandler struct {
	ledger services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledger services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// Deposit credits the current account
// @Summary Deposit
// @Description Credit the current account by a positive amount
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AmountRequest true "Deposit amount"
// @Success 200 {object} SuccessResponse{data=dto.AccountResponse} "Updated account"
// @Failure 400 {object} errors.ErrorResponse "Invalid amount - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_006"
// @Router /account/deposit [post]
func (h *TransactionHandler) Deposit(c echo.Context) error {
	amount, err := h.bindAmount(c)
	if err != nil {
		return err
	}

	account, err := h.ledger.Deposit(amount)
	if err != nil {
		return h.mapLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    accountResponse(account),
		Message: "Deposit successful",
	})
}

// Withdraw debits the current account
// @Summary Withdraw
// @Description Debit the current account; fails without effect when funds are insufficient
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AmountRequest true "Withdrawal amount"
// @Success 200 {object} SuccessResponse{data=dto.AccountResponse} "Updated account"
// @Failure 401 {object} errors.ErrorResponse "No active session - AUTH_006"
// @Failure 422 {object} errors.ErrorResponse "Insufficient funds - TRANSACTION_001"
// @Router /account/withdraw [post]
func (h *TransactionHandler) Withdraw(c echo.Context) error {
	amount, err := h.bindAmount(c)
	if err != nil {
		return err
	}

	account, err := h.ledger.Withdraw(amount)
	if err != nil {
		return h.mapLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    accountResponse(account),
		Message: "Withdrawal successful",
	})
}

// Transfer moves funds from the current account to another account
// @Summary Transfer
// @Description Debit the current account and credit the destination atomically
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Destination and amount"
// @Success 200 {object} SuccessResponse{data=dto.AccountResponse} "Updated source account"
// @Failure 400 {object} errors.ErrorResponse "Self transfer - TRANSFER_003"
// @Failure 404 {object} errors.ErrorResponse "Recipient not found - TRANSFER_001"
// @Failure 422 {object} errors.ErrorResponse "Insufficient funds - TRANSFER_002"
// @Router /account/transfer [post]
func (h *TransactionHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount)
	}

	account, err := h.ledger.Transfer(req.ToAccount, amount)
	if err != nil {
		switch err {
		case services.ErrRecipientNotFound:
			return SendError(c, errors.TransferRecipientNotFound)
		case services.ErrInsufficientFunds:
			return SendError(c, errors.TransferInsufficientFunds)
		case services.ErrSelfTransfer:
			return SendError(c, errors.TransferSameAccount)
		case services.ErrNoActiveSession:
			return SendError(c, errors.AuthNoActiveSession)
		case services.ErrInvalidAmount:
			return SendError(c, errors.ValidationInvalidAmount)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    accountResponse(account),
		Message: "Transfer successful",
	})
}

// bindAmount binds and validates an AmountRequest and parses its amount
func (h *TransactionHandler) bindAmount(c echo.Context) (decimal.Decimal, error) {
	var req dto.AmountRequest

	if err := c.Bind(&req); err != nil {
		return decimal.Zero, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return decimal.Zero, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return decimal.Zero, SendError(c, errors.ValidationInvalidAmount)
	}

	return amount, nil
}

// mapLedgerError maps deposit/withdraw sentinel errors to response codes
func (h *TransactionHandler) mapLedgerError(c echo.Context, err error) error {
	switch err {
	case services.ErrNoActiveSession:
		return SendError(c, errors.AuthNoActiveSession)
	case services.ErrInvalidAmount, models.ErrInvalidAmount:
		return SendError(c, errors.ValidationInvalidAmount)
	case services.ErrInsufficientFunds, models.ErrInsufficientFunds:
		return SendError(c, errors.TransactionInsufficientFunds)
	default:
		return SendSystemError(c, err)
	}
}
