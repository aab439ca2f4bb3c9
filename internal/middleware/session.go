package middleware

import (
	"github.com/labstack/echo/v4"

	"demobank/internal/errors"
	"demobank/internal/handlers"
	"demobank/internal/services"
)

const (
	// AccountNumberContextKey is the context key for the authenticated account number
	AccountNumberContextKey = "account_number"
	// HolderNameContextKey is the context key for the authenticated holder name
	HolderNameContextKey = "holder_name"
)

// RequireSession creates a middleware that requires a valid session token
// whose account matches the ledger's current session. A token issued before a
// logout stops working the moment the session is cleared, which keeps the
// single-session state machine intact over HTTP.
func RequireSession(tokenService services.TokenServiceInterface, ledger services.LedgerServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			current, err := ledger.CurrentAccount()
			if err != nil || current.AccountNumber != claims.AccountNumber {
				return handlers.SendError(c, errors.AuthNoActiveSession)
			}

			c.Set(AccountNumberContextKey, claims.AccountNumber)
			c.Set(HolderNameContextKey, claims.HolderName)

			return next(c)
		}
	}
}
