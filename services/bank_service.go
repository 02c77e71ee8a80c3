package services

import (
	"strings"

	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/repository"
	"github.com/hanoitek/splitqr/utils"
)

// BankService resolves free-form bank queries against the NAPAS directory
type BankService struct {
	repo *repository.BankRepository
}

// NewBankService creates a new bank service
func NewBankService() *BankService {
	return &BankService{
		repo: repository.NewBankRepository(),
	}
}

// Banks returns a snapshot of the directory for presentation
func (s *BankService) Banks() []models.Bank {
	return s.repo.All()
}

// Resolve finds the directory entry for a free-form query. Matching is
// case- and diacritic-insensitive with a fixed priority: exact code, exact
// short name, exact legal name, then substring of legal or short name with
// the first table row winning. No fuzzy matching.
func (s *BankService) Resolve(query string) (*models.Bank, error) {
	needle := utils.Normalize(query)
	if needle == "" {
		return nil, utils.NewUnknownBankError(query)
	}

	banks := s.repo.All()

	// Exact code match
	for i := range banks {
		if utils.Normalize(banks[i].Code) == needle {
			return &banks[i], nil
		}
	}

	// Exact short-name match
	for i := range banks {
		if utils.Normalize(banks[i].ShortName) == needle {
			return &banks[i], nil
		}
	}

	// Exact legal-name match
	for i := range banks {
		if utils.Normalize(banks[i].Name) == needle {
			return &banks[i], nil
		}
	}

	// Substring fallback, first row in table order wins
	for i := range banks {
		if strings.Contains(utils.Normalize(banks[i].Name), needle) ||
			strings.Contains(utils.Normalize(banks[i].ShortName), needle) {
			return &banks[i], nil
		}
	}

	return nil, utils.NewUnknownBankError(query)
}

// Search returns every directory entry whose code, short name or legal
// name contains the query, in table order. An empty query returns the
// whole directory.
func (s *BankService) Search(query string) []models.Bank {
	banks := s.repo.All()
	needle := utils.Normalize(query)
	if needle == "" {
		return banks
	}

	var matches []models.Bank
	for _, bank := range banks {
		if strings.Contains(utils.Normalize(bank.Code), needle) ||
			strings.Contains(utils.Normalize(bank.ShortName), needle) ||
			strings.Contains(utils.Normalize(bank.Name), needle) {
			matches = append(matches, bank)
		}
	}
	return matches
}
