package services

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"demobank/internal/models"
)

// DefaultSeedAccounts returns the fixed demo accounts the ledger starts with
func DefaultSeedAccounts() []models.Account {
	return []models.Account{
		{AccountNumber: 2001, HolderName: "Shanmukh", Balance: decimal.NewFromInt(100000), PIN: "1234"},
		{AccountNumber: 2002, HolderName: "Hari", Balance: decimal.NewFromInt(250000), PIN: "2345"},
		{AccountNumber: 2003, HolderName: "Mukesh", Balance: decimal.NewFromInt(300000), PIN: "3456"},
		{AccountNumber: 2004, HolderName: "Abhiram", Balance: decimal.NewFromInt(150000), PIN: "4567"},
	}
}

// SeedAccounts returns the default accounts plus count randomly generated
// ones, numbered sequentially after the defaults.
func SeedAccounts(extra int) []models.Account {
	accounts := DefaultSeedAccounts()

	next := accounts[len(accounts)-1].AccountNumber + 1
	for i := 0; i < extra; i++ {
		accounts = append(accounts, models.Account{
			AccountNumber: next,
			HolderName:    gofakeit.Name(),
			Balance:       decimal.NewFromFloat(gofakeit.Price(1000, 500000)).Round(2),
			PIN:           fmt.Sprintf("%04d", gofakeit.Number(0, 9999)),
		})
		next++
	}

	return accounts
}
