package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demobank/internal/models"
)

func TestDefaultSeedAccounts(t *testing.T) {
	accounts := DefaultSeedAccounts()
	require.Len(t, accounts, 4)

	assert.Equal(t, models.SeedAccountNumber, accounts[0].AccountNumber)
	for i, account := range accounts {
		assert.NoError(t, account.Validate(), "seed account %d", i)
		assert.Equal(t, models.SeedAccountNumber+int64(i), account.AccountNumber)
	}
}

func TestSeedAccounts_Extra(t *testing.T) {
	accounts := SeedAccounts(3)
	require.Len(t, accounts, 7)

	for i, account := range accounts {
		assert.NoError(t, account.Validate(), "seed account %d", i)
		assert.Equal(t, models.SeedAccountNumber+int64(i), account.AccountNumber)
	}
}

func TestSeedAccounts_Zero(t *testing.T) {
	assert.Equal(t, DefaultSeedAccounts(), SeedAccounts(0))
}
