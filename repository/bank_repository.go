// repository/bank_repository.go
package repository

import "github.com/hanoitek/splitqr/models"

// BankRepository serves the static NAPAS member directory
type BankRepository struct{}

// NewBankRepository creates a new BankRepository
func NewBankRepository() *BankRepository {
	return &BankRepository{}
}

// All returns a copy of the directory in canonical table order. Callers
// get their own slice, so the underlying table stays immutable.
func (r *BankRepository) All() []models.Bank {
	banks := make([]models.Bank, len(bankDirectory))
	copy(banks, bankDirectory)
	return banks
}

// Count returns the number of directory entries
func (r *BankRepository) Count() int {
	return len(bankDirectory)
}
