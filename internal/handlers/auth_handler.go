package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"demobank/internal/dto"
	"demobank/internal/errors"
	"demobank/internal/models"
	"demobank/internal/services"
)

// AuthHandler handles session endpoints: login, account creation, logout
type AuthHandler struct {
	ledger       services.LedgerServiceInterface
	tokenService services.TokenServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(ledger services.LedgerServiceInterface, tokenService services.TokenServiceInterface) *AuthHandler {
	return &AuthHandler{
		ledger:       ledger,
		tokenService: tokenService,
	}
}

// Login handles account authentication
// @Summary Login to an account
// @Description Authenticate with account number and PIN, receive a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.SessionResponse "Login successful with session token"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Invalid PIN - AUTH_002"
// @Failure 404 {object} errors.ErrorResponse "Account not found - AUTH_001"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.ledger.Authenticate(req.AccountNumber, req.PIN)
	if err != nil {
		switch err {
		case services.ErrAccountNotFound:
			return SendError(c, errors.AuthAccountNotFound)
		case services.ErrInvalidPIN:
			return SendError(c, errors.AuthInvalidPIN)
		default:
			return SendSystemError(c, err)
		}
	}

	return h.sendSession(c, http.StatusOK, account)
}

// Register handles account opening
// @Summary Open a new account
// @Description Create an account with holder name and a 4-digit PIN; the new account is logged in immediately
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.SessionResponse "Account created and session established"
// @Failure 400 {object} errors.ErrorResponse "PIN length - VALIDATION_002 or PIN mismatch - VALIDATION_003"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.CreateAccountRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.ledger.CreateAccount(req.HolderName, req.PIN, req.ConfirmPIN)
	if err != nil {
		switch err {
		case services.ErrPINLengthInvalid:
			return SendError(c, errors.ValidationPINLength)
		case services.ErrPINMismatch:
			return SendError(c, errors.ValidationPINMismatch)
		case services.ErrHolderNameEmpty:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("account_holder_name: is required"))
		default:
			return SendSystemError(c, err)
		}
	}

	return h.sendSession(c, http.StatusCreated, account)
}

// Logout handles session teardown
// @Summary Logout
// @Description Clear the active session and its transaction log. Always succeeds.
// @Tags Authentication
// @Produce json
// @Success 200 {object} SuccessResponse{message=string} "Logout successful"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.ledger.Logout()

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logout successful",
	})
}

// sendSession issues a token for the account and writes the session payload
func (h *AuthHandler) sendSession(c echo.Context, status int, account *models.Account) error {
	token, expiresAt, err := h.tokenService.GenerateSessionToken(account)
	if err != nil {
		// Token minting failed after the session was established; roll the
		// session back so ledger and token state agree.
		h.ledger.Logout()
		return SendSystemError(c, err)
	}

	return c.JSON(status, dto.SessionResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Account:     accountResponse(account),
	})
}
