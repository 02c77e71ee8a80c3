// models/models.go
package models

import "github.com/hanoitek/splitqr/utils"

// Bank is one row of the NAPAS member directory
type Bank struct {
	Code      string `json:"code"`
	ShortName string `json:"shortName"`
	Name      string `json:"name"`
	BIN       string `json:"bin"`
}

// PaymentRequest carries everything needed to build one payment payload.
// Amount is kept as the caller supplied it and written into the payload
// verbatim, so "50000", "50000.5" and "" all pass through untouched.
type PaymentRequest struct {
	BankQuery string `json:"bank"`
	Account   string `json:"account"`
	Amount    string `json:"amount"`
	Note      string `json:"note,omitempty"`
	Country   string `json:"country,omitempty"`
}

// PaymentResult pairs the generated payload with the bank the query
// resolved to, so callers can show which bank the money is headed for
type PaymentResult struct {
	Payload string `json:"payload"`
	Bank    Bank   `json:"bank"`
}

// Bill is the shared-bill document exchanged through URL tokens
type Bill struct {
	Name     string      `json:"name"`
	Country  string      `json:"country"`
	Currency string      `json:"currency"`
	Owner    BillOwner   `json:"owner"`
	Items    []BillItem  `json:"items"`
	Extras   *BillExtras `json:"extras,omitempty"`
}

// BillOwner identifies where the money should be transferred
type BillOwner struct {
	BankQuery string `json:"bank"`
	Account   string `json:"account"`
}

// BillItem is a single line on the bill. Prices are integer VND.
type BillItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// LineTotal returns quantity times unit price for this item
func (i BillItem) LineTotal() int64 {
	return int64(i.Quantity) * i.UnitPrice
}

// BillExtras holds the bill-level surcharges. Pointer fields keep an
// absent charge distinguishable from an explicit zero across a
// token round trip.
type BillExtras struct {
	Tax      *int64 `json:"tax,omitempty"`
	Tip      *int64 `json:"tip,omitempty"`
	Discount *int64 `json:"discount,omitempty"`
}

// Empty reports whether no charge is set at all
func (e *BillExtras) Empty() bool {
	return e == nil || (e.Tax == nil && e.Tip == nil && e.Discount == nil)
}

// SplitConfig describes how viewers of a shared bill divide it.
// Payer order matters: remainders and rounding corrections always go to
// the earliest listed payer.
type SplitConfig struct {
	Mode        string              `json:"mode"`
	Payers      []string            `json:"payers"`
	Assignments map[string][]string `json:"assignments,omitempty"`
}

// NewBill creates a bill with the fixed country and currency for
// Vietnamese domestic transfers
func NewBill(name string, owner BillOwner, items []BillItem, extras *BillExtras) *Bill {
	return &Bill{
		Name:     name,
		Country:  utils.CountryCodeVN,
		Currency: utils.CurrencyNumericVND,
		Owner:    owner,
		Items:    items,
		Extras:   extras,
	}
}

// NewBillItem creates a bill line with a fresh unique id
func NewBillItem(name string, quantity int, unitPrice int64) BillItem {
	return BillItem{
		ID:        utils.NewItemID(),
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
}

// NewSplitConfig creates an individual-mode configuration for the given
// payers with no assignments yet
func NewSplitConfig(payers []string) *SplitConfig {
	return &SplitConfig{
		Mode:        utils.SplitModeIndividual,
		Payers:      payers,
		Assignments: make(map[string][]string),
	}
}
