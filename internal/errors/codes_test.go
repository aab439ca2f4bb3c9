package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want string
	}{
		{name: "account not found", code: AuthAccountNotFound, want: "Account not found"},
		{name: "invalid pin", code: AuthInvalidPIN, want: "Invalid PIN"},
		{name: "no active session", code: AuthNoActiveSession, want: "No active session for this account"},
		{name: "pin length", code: ValidationPINLength, want: "PIN must be exactly 4 digits"},
		{name: "insufficient funds", code: TransactionInsufficientFunds, want: "Insufficient funds"},
		{name: "same account transfer", code: TransferSameAccount, want: "Cannot transfer to the same account"},
		{name: "unknown code", code: ErrorCode("NOPE_999"), want: "An error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorMessage(tt.code))
		})
	}
}

func TestIsValidErrorCode(t *testing.T) {
	valid := []ErrorCode{
		AuthAccountNotFound, AuthInvalidPIN, AuthMissingToken, AuthExpiredToken,
		AuthInvalidTokenFormat, AuthNoActiveSession,
		ValidationGeneral, ValidationPINLength, ValidationPINMismatch,
		ValidationInvalidAmount, ValidationInvalidFormat,
		TransactionInsufficientFunds, TransactionInvalidAmount,
		TransferRecipientNotFound, TransferInsufficientFunds, TransferSameAccount,
		SystemInternalError, SystemRateLimitExceeded, SystemUnexpectedError,
	}
	for _, code := range valid {
		assert.True(t, IsValidErrorCode(code), "code %s", code)
	}

	assert.False(t, IsValidErrorCode(ErrorCode("AUTH_999")))
	assert.False(t, IsValidErrorCode(ErrorCode("")))
}
