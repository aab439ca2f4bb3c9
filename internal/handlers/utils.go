package handlers

import (
	"demobank/internal/dto"
	"demobank/internal/models"
)

// accountResponse converts an account snapshot to its response payload.
// The PIN never leaves the ledger.
func accountResponse(account *models.Account) dto.AccountResponse {
	return dto.AccountResponse{
		AccountNumber: account.AccountNumber,
		HolderName:    account.HolderName,
		Balance:       account.Balance,
	}
}

// transactionResponses converts log entries newest-first as stored
func transactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		out[i] = dto.TransactionResponse{
			Type:      tx.Type,
			Amount:    tx.Amount,
			Timestamp: tx.Timestamp,
			ToAccount: tx.ToAccount,
		}
	}
	return out
}
