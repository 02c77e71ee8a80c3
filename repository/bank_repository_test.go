package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankRepository_All_ReturnsIndependentCopy(t *testing.T) {
	repo := NewBankRepository()

	first := repo.All()
	require.NotEmpty(t, first)
	first[0].BIN = "000000"

	second := repo.All()
	assert.Equal(t, "970436", second[0].BIN, "mutating a snapshot must not touch the table")
	assert.Equal(t, repo.Count(), len(second))
}

func TestBankDirectory_WellFormed(t *testing.T) {
	repo := NewBankRepository()

	codes := make(map[string]bool)
	bins := make(map[string]bool)
	for _, bank := range repo.All() {
		assert.NotEmpty(t, bank.Code)
		assert.NotEmpty(t, bank.ShortName)
		assert.NotEmpty(t, bank.Name)

		assert.False(t, codes[bank.Code], "duplicate code %s", bank.Code)
		codes[bank.Code] = true
		assert.False(t, bins[bank.BIN], "duplicate BIN %s", bank.BIN)
		bins[bank.BIN] = true

		require.Len(t, bank.BIN, 6, "BIN for %s", bank.Code)
		for _, r := range bank.BIN {
			assert.True(t, r >= '0' && r <= '9', "BIN for %s contains %q", bank.Code, r)
		}
	}
}

func TestBankDirectory_AnchorRowsStayPut(t *testing.T) {
	// Substring fallback resolves to the first matching row, so the head
	// of the table is part of the resolver's observable behavior
	banks := NewBankRepository().All()
	require.GreaterOrEqual(t, len(banks), 60)

	assert.Equal(t, "VCB", banks[0].Code)
	assert.Equal(t, "ICB", banks[1].Code)
	assert.Equal(t, "BIDV", banks[2].Code)
	assert.Equal(t, "VBA", banks[3].Code)
}
