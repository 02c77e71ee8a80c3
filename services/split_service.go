package services

import (
	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/utils"
)

// SplitService computes who owes what for a shared bill. All methods are
// pure functions over the bill and configuration; amounts are integer
// VND throughout, so every sum is exact.
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ItemsSubtotal sums quantity times unit price over every bill line
func (s *SplitService) ItemsSubtotal(bill *models.Bill) int64 {
	var subtotal int64
	for _, item := range bill.Items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// ExtrasNet returns tax plus tip minus discount with missing charges
// counted as zero. Goes negative when the discount outweighs the
// charges; callers carry that through rather than clamping.
func (s *SplitService) ExtrasNet(bill *models.Bill) int64 {
	if bill.Extras == nil {
		return 0
	}
	var net int64
	if bill.Extras.Tax != nil {
		net += *bill.Extras.Tax
	}
	if bill.Extras.Tip != nil {
		net += *bill.Extras.Tip
	}
	if bill.Extras.Discount != nil {
		net -= *bill.Extras.Discount
	}
	return net
}

// SplitEvenly divides a total across payers with floor division and hands
// the remainder out one unit at a time starting from the first payer.
// Every remainder and rounding rule in this package resolves ties the
// same way: earliest listed payer first.
func (s *SplitService) SplitEvenly(total int64, payers []string) map[string]int64 {
	shares := make(map[string]int64, len(payers))
	if len(payers) == 0 {
		return shares
	}

	base, remainder := utils.FloorDiv(total, int64(len(payers)))
	for i, payer := range payers {
		share := base
		if int64(i) < remainder {
			share++
		}
		shares[payer] = share
	}
	return shares
}

// PayerSubtotals computes each payer's share of the items alone, before
// extras. Individual mode splits every line among its assigned payers;
// even mode splits the whole items subtotal across everyone.
func (s *SplitService) PayerSubtotals(bill *models.Bill, config *models.SplitConfig) map[string]int64 {
	if config == nil || len(config.Payers) == 0 {
		return map[string]int64{}
	}

	if config.Mode == utils.SplitModeEven {
		return s.SplitEvenly(s.ItemsSubtotal(bill), config.Payers)
	}

	subtotals := make(map[string]int64, len(config.Payers))
	for _, payer := range config.Payers {
		subtotals[payer] = 0
	}

	for _, item := range bill.Items {
		assignees := s.resolveAssignees(item, config)
		for payer, share := range s.SplitEvenly(item.LineTotal(), assignees) {
			subtotals[payer] += share
		}
	}
	return subtotals
}

// resolveAssignees returns the payers an item's line total is split
// among: the assignment entries still present in the payer list, each
// name counted once in first-mention order, or the first payer when the
// assignment is empty or entirely stale
func (s *SplitService) resolveAssignees(item models.BillItem, config *models.SplitConfig) []string {
	current := make(map[string]bool, len(config.Payers))
	for _, payer := range config.Payers {
		current[payer] = true
	}

	var kept []string
	for _, name := range config.Assignments[item.ID] {
		if current[name] {
			kept = append(kept, name)
			// A repeated mention is the same payer, not a second share
			current[name] = false
		}
	}
	if len(kept) > 0 {
		return kept
	}
	return config.Payers[:1]
}

// PayerTotals computes the final amount each payer owes: their item
// subtotal plus a proportional share of the extras. The per-payer shares
// are rounded, so their sum can drift off the exact grand total; the
// whole signed difference lands on the first payer to make the totals
// add up precisely.
func (s *SplitService) PayerTotals(bill *models.Bill, config *models.SplitConfig) map[string]int64 {
	if config == nil || len(config.Payers) == 0 {
		return map[string]int64{}
	}

	itemsSubtotal := s.ItemsSubtotal(bill)
	extrasNet := s.ExtrasNet(bill)

	// Extras-only bill: nothing to prorate against, split extras evenly
	if itemsSubtotal == 0 {
		return s.SplitEvenly(extrasNet, config.Payers)
	}

	subtotals := s.PayerSubtotals(bill, config)

	totals := make(map[string]int64, len(config.Payers))
	var sum int64
	for _, payer := range config.Payers {
		share := utils.RoundHalfUp(float64(subtotals[payer]) / float64(itemsSubtotal) * float64(extrasNet))
		total := subtotals[payer] + share
		if total < 0 {
			total = 0
		}
		totals[payer] = total
		sum += total
	}

	if diff := itemsSubtotal + extrasNet - sum; diff != 0 {
		totals[config.Payers[0]] += diff
	}
	return totals
}
