package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthAccountNotFound    ErrorCode = "AUTH_001"
	AuthInvalidPIN         ErrorCode = "AUTH_002"
	AuthMissingToken       ErrorCode = "AUTH_003"
	AuthExpiredToken       ErrorCode = "AUTH_004"
	AuthInvalidTokenFormat ErrorCode = "AUTH_005"
	AuthNoActiveSession    ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationPINLength     ErrorCode = "VALIDATION_002"
	ValidationPINMismatch   ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
	ValidationInvalidFormat ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInsufficientFunds ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_002"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferRecipientNotFound ErrorCode = "TRANSFER_001"
	TransferInsufficientFunds ErrorCode = "TRANSFER_002"
	TransferSameAccount       ErrorCode = "TRANSFER_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_002"
	SystemUnexpectedError   ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthAccountNotFound:    "Account not found",
	AuthInvalidPIN:         "Invalid PIN",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthNoActiveSession:    "No active session for this account",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationPINLength:     "PIN must be exactly 4 digits",
	ValidationPINMismatch:   "PIN and confirmation do not match",
	ValidationInvalidAmount: "Amount must be a positive number",
	ValidationInvalidFormat: "Invalid field format",

	// Transaction errors
	TransactionInsufficientFunds: "Insufficient funds",
	TransactionInvalidAmount:     "Invalid transaction amount",

	// Transfer errors
	TransferRecipientNotFound: "Recipient account not found",
	TransferInsufficientFunds: "Insufficient funds for this transfer",
	TransferSameAccount:       "Cannot transfer to the same account",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:   "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
