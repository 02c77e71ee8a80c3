package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"

	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/utils"
)

// BillService turns shared bills and split configurations into URL tokens
// and back. Bill tokens are CBOR tuples, deflated and base64url-encoded;
// split tokens are JSON under the same compression. Bill decoding is
// strict, split decoding deliberately is not.
type BillService struct{}

// NewBillService creates a new bill service
func NewBillService() *BillService {
	return &BillService{}
}

// packedBill is the positional tuple written into a bill token. Field
// order is the wire format; never reorder or remove fields, only bump
// the schema version.
type packedBill struct {
	_        struct{} `cbor:",toarray"`
	Version  int
	Name     string
	Country  string
	Currency int
	Owner    packedOwner
	Items    []packedItem
	Extras   *packedExtras
}

type packedOwner struct {
	_       struct{} `cbor:",toarray"`
	Bank    string
	Account string
}

type packedItem struct {
	_         struct{} `cbor:",toarray"`
	ID        string
	Name      string
	Quantity  int
	UnitPrice int64
}

type packedExtras struct {
	_        struct{} `cbor:",toarray"`
	Tax      *int64
	Tip      *int64
	Discount *int64
}

// EncodeBill serializes a bill into its URL token
func (s *BillService) EncodeBill(bill *models.Bill) (string, error) {
	packed, err := s.pack(bill)
	if err != nil {
		return "", err
	}

	raw, err := cbor.Marshal(packed)
	if err != nil {
		return "", err
	}
	deflated, err := utils.Deflate(raw)
	if err != nil {
		return "", err
	}
	return utils.EncodeBase64URL(deflated), nil
}

// DecodeBill parses a URL token back into a bill. Tokens from a build
// with a different schema version fail with ErrUnsupportedVersion; any
// structural damage fails with ErrCorruptToken.
func (s *BillService) DecodeBill(token string) (*models.Bill, error) {
	deflated, err := utils.DecodeBase64URL(token)
	if err != nil {
		return nil, utils.NewCorruptTokenError("base64url decode", err)
	}
	raw, err := utils.Inflate(deflated)
	if err != nil {
		return nil, utils.NewCorruptTokenError("decompress", err)
	}

	// Read just the version tag before committing to the full tuple
	// shape, so a future-version token reports the right error instead
	// of a structural one
	var fields []cbor.RawMessage
	if err := cbor.Unmarshal(raw, &fields); err != nil {
		return nil, utils.NewCorruptTokenError("tuple decode", err)
	}
	if len(fields) == 0 {
		return nil, utils.NewCorruptTokenError("empty tuple", nil)
	}
	var version int
	if err := cbor.Unmarshal(fields[0], &version); err != nil {
		return nil, utils.NewCorruptTokenError("version tag", err)
	}
	if version != utils.BillSchemaVersion {
		return nil, utils.NewUnsupportedVersionError(version)
	}

	var packed packedBill
	if err := cbor.Unmarshal(raw, &packed); err != nil {
		return nil, utils.NewCorruptTokenError("bill tuple", err)
	}
	return s.unpack(&packed), nil
}

// pack reshapes a bill into its tuple form
func (s *BillService) pack(bill *models.Bill) (*packedBill, error) {
	currency, err := strconv.Atoi(bill.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency code %q is not numeric", bill.Currency)
	}

	items := make([]packedItem, len(bill.Items))
	for i, item := range bill.Items {
		items[i] = packedItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	var extras *packedExtras
	if !bill.Extras.Empty() {
		extras = &packedExtras{
			Tax:      bill.Extras.Tax,
			Tip:      bill.Extras.Tip,
			Discount: bill.Extras.Discount,
		}
	}

	return &packedBill{
		Version:  utils.BillSchemaVersion,
		Name:     bill.Name,
		Country:  bill.Country,
		Currency: currency,
		Owner: packedOwner{
			Bank:    bill.Owner.BankQuery,
			Account: bill.Owner.Account,
		},
		Items:  items,
		Extras: extras,
	}, nil
}

// unpack rebuilds the logical bill, dropping an extras tuple that carried
// nothing
func (s *BillService) unpack(packed *packedBill) *models.Bill {
	items := make([]models.BillItem, len(packed.Items))
	for i, item := range packed.Items {
		items[i] = models.BillItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	var extras *models.BillExtras
	if packed.Extras != nil {
		candidate := &models.BillExtras{
			Tax:      packed.Extras.Tax,
			Tip:      packed.Extras.Tip,
			Discount: packed.Extras.Discount,
		}
		if !candidate.Empty() {
			extras = candidate
		}
	}

	return &models.Bill{
		Name:     packed.Name,
		Country:  packed.Country,
		Currency: strconv.Itoa(packed.Currency),
		Owner: models.BillOwner{
			BankQuery: packed.Owner.Bank,
			Account:   packed.Owner.Account,
		},
		Items:  items,
		Extras: extras,
	}
}

// rawSplitConfig is the tolerant decode target for split tokens. Fields
// are loosely typed so one off-shape entry sanitizes away instead of
// failing the whole document.
type rawSplitConfig struct {
	Mode        any            `json:"mode"`
	Payers      []any          `json:"payers"`
	Assignments map[string]any `json:"assignments"`
}

// EncodeSplitConfig serializes a split configuration into its URL token.
// A nil configuration yields an empty token.
func (s *BillService) EncodeSplitConfig(config *models.SplitConfig) (string, error) {
	if config == nil {
		return "", nil
	}
	raw, err := json.Marshal(config)
	if err != nil {
		return "", err
	}
	deflated, err := utils.Deflate(raw)
	if err != nil {
		return "", err
	}
	return utils.EncodeBase64URL(deflated), nil
}

// DecodeSplitConfig parses a split token, or returns nil when it can't.
// The configuration is an optional layer over a bill that stays valid
// without it, so a missing or corrupt token degrades to "no
// configuration" instead of erroring.
func (s *BillService) DecodeSplitConfig(token string) *models.SplitConfig {
	if token == "" {
		return nil
	}
	deflated, err := utils.DecodeBase64URL(token)
	if err != nil {
		return nil
	}
	raw, err := utils.Inflate(deflated)
	if err != nil {
		return nil
	}
	var decoded rawSplitConfig
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	return s.sanitizeSplitConfig(&decoded)
}

// sanitizeSplitConfig maps the loosely typed decode result onto the
// strict model: unknown modes fall back to individual, payers keep only
// non-blank strings, assignments keep only string arrays with non-array
// values downgraded to an empty list
func (s *BillService) sanitizeSplitConfig(decoded *rawSplitConfig) *models.SplitConfig {
	mode := utils.SplitModeIndividual
	if m, ok := decoded.Mode.(string); ok && m == utils.SplitModeEven {
		mode = utils.SplitModeEven
	}

	payers := make([]string, 0, len(decoded.Payers))
	for _, entry := range decoded.Payers {
		name, ok := entry.(string)
		if !ok {
			continue
		}
		if trimmed := utils.NormalizeName(name); trimmed != "" {
			payers = append(payers, trimmed)
		}
	}

	var assignments map[string][]string
	if decoded.Assignments != nil {
		assignments = make(map[string][]string, len(decoded.Assignments))
		for itemID, value := range decoded.Assignments {
			names := []string{}
			if list, ok := value.([]any); ok {
				for _, entry := range list {
					name, isString := entry.(string)
					if !isString {
						continue
					}
					if trimmed := utils.NormalizeName(name); trimmed != "" {
						names = append(names, trimmed)
					}
				}
			}
			assignments[itemID] = names
		}
	}

	return &models.SplitConfig{
		Mode:        mode,
		Payers:      payers,
		Assignments: assignments,
	}
}
