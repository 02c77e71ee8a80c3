package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/utils"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func sampleBill() *models.Bill {
	return &models.Bill{
		Name:     "Lẩu nướng cuối tuần",
		Country:  "VN",
		Currency: "704",
		Owner:    models.BillOwner{BankQuery: "vcb", Account: "0011002643148"},
		Items: []models.BillItem{
			{ID: "i1", Name: "Lẩu thái", Quantity: 1, UnitPrice: 350000},
			{ID: "i2", Name: "Bia Hà Nội", Quantity: 6, UnitPrice: 25000},
			{ID: "i3", Name: "Trà đá", Quantity: 3, UnitPrice: 5000},
		},
		Extras: &models.BillExtras{
			Tax: int64Ptr(40000),
			Tip: int64Ptr(30000),
		},
	}
}

func TestBillService_EncodeBill_TokenIsURLSafe(t *testing.T) {
	service := NewBillService()

	token, err := service.EncodeBill(sampleBill())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), token)
}

func TestBillService_BillRoundTrip(t *testing.T) {
	service := NewBillService()

	original := sampleBill()
	token, err := service.EncodeBill(original)
	require.NoError(t, err)

	decoded, err := service.DecodeBill(token)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestBillService_BillRoundTrip_ExtrasShapes(t *testing.T) {
	service := NewBillService()

	// No extras at all
	noExtras := sampleBill()
	noExtras.Extras = nil
	token, err := service.EncodeBill(noExtras)
	require.NoError(t, err)
	decoded, err := service.DecodeBill(token)
	require.NoError(t, err)
	assert.Nil(t, decoded.Extras)

	// Only tip set: the other charges must come back absent, not zero
	partial := sampleBill()
	partial.Extras = &models.BillExtras{Tip: int64Ptr(15000)}
	token, err = service.EncodeBill(partial)
	require.NoError(t, err)
	decoded, err = service.DecodeBill(token)
	require.NoError(t, err)
	require.NotNil(t, decoded.Extras)
	assert.Nil(t, decoded.Extras.Tax)
	assert.Nil(t, decoded.Extras.Discount)
	require.NotNil(t, decoded.Extras.Tip)
	assert.Equal(t, int64(15000), *decoded.Extras.Tip)

	// An extras object with every charge unset packs as null and decodes
	// as no extras
	hollow := sampleBill()
	hollow.Extras = &models.BillExtras{}
	token, err = service.EncodeBill(hollow)
	require.NoError(t, err)
	decoded, err = service.DecodeBill(token)
	require.NoError(t, err)
	assert.Nil(t, decoded.Extras)
}

func TestBillService_DecodeBill_UnsupportedVersion(t *testing.T) {
	service := NewBillService()

	packed := &packedBill{
		Version:  utils.BillSchemaVersion + 1,
		Name:     "future",
		Country:  "VN",
		Currency: 704,
		Owner:    packedOwner{Bank: "vcb", Account: "1"},
		Items:    []packedItem{},
	}
	raw, err := cbor.Marshal(packed)
	require.NoError(t, err)
	deflated, err := utils.Deflate(raw)
	require.NoError(t, err)

	_, err = service.DecodeBill(utils.EncodeBase64URL(deflated))
	assert.ErrorIs(t, err, utils.ErrUnsupportedVersion)
}

func TestBillService_DecodeBill_VersionCheckedBeforeShape(t *testing.T) {
	service := NewBillService()

	// A bare [2] tuple is structurally wrong for this schema, but the
	// version tag must be reported, not the shape problem
	raw, err := cbor.Marshal([]any{2})
	require.NoError(t, err)
	deflated, err := utils.Deflate(raw)
	require.NoError(t, err)

	_, err = service.DecodeBill(utils.EncodeBase64URL(deflated))
	assert.ErrorIs(t, err, utils.ErrUnsupportedVersion)
}

func TestBillService_DecodeBill_CorruptTokens(t *testing.T) {
	service := NewBillService()

	// Characters outside the base64url alphabet
	_, err := service.DecodeBill("not a token!!!")
	assert.ErrorIs(t, err, utils.ErrCorruptToken)

	// Valid base64url of bytes that are not a deflate stream
	_, err = service.DecodeBill(utils.EncodeBase64URL([]byte("garbage bytes")))
	assert.ErrorIs(t, err, utils.ErrCorruptToken)

	// Valid compression of something that is not a tuple
	raw, err := cbor.Marshal(42)
	require.NoError(t, err)
	deflated, err := utils.Deflate(raw)
	require.NoError(t, err)
	_, err = service.DecodeBill(utils.EncodeBase64URL(deflated))
	assert.ErrorIs(t, err, utils.ErrCorruptToken)

	// Right version, wrong arity
	raw, err = cbor.Marshal([]any{utils.BillSchemaVersion, "half a bill"})
	require.NoError(t, err)
	deflated, err = utils.Deflate(raw)
	require.NoError(t, err)
	_, err = service.DecodeBill(utils.EncodeBase64URL(deflated))
	assert.ErrorIs(t, err, utils.ErrCorruptToken)
}

func TestBillService_DecodeBill_TrailingCorruptionNeverSilent(t *testing.T) {
	service := NewBillService()

	// A second, shorter bill varies the token length and with it how many
	// unused bits the final character carries; the deterministic
	// discarded-bit vector is in the base64 tests
	single := sampleBill()
	single.Items = single.Items[:1]

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	for _, original := range []*models.Bill{sampleBill(), single} {
		token, err := service.EncodeBill(original)
		require.NoError(t, err)

		index := strings.IndexByte(alphabet, token[len(token)-1])
		require.GreaterOrEqual(t, index, 0)

		// Whichever bit of the final character flips, including the low
		// bits a lenient base64 decoder would discard, the damaged token
		// must fail or decode to something else
		for mask := 1; mask < 64; mask <<= 1 {
			corrupted := token[:len(token)-1] + string(alphabet[index^mask])
			decoded, err := service.DecodeBill(corrupted)
			if err == nil {
				assert.NotEqual(t, original, decoded,
					"flipping bit %#x of the last character decoded back to the original", mask)
			}
		}
	}
}

func deflateJSON(t *testing.T, doc string) string {
	t.Helper()
	deflated, err := utils.Deflate([]byte(doc))
	require.NoError(t, err)
	return utils.EncodeBase64URL(deflated)
}

func TestBillService_SplitConfigRoundTrip(t *testing.T) {
	service := NewBillService()

	config := &models.SplitConfig{
		Mode:   utils.SplitModeIndividual,
		Payers: []string{"Hòa", "Lan", "Minh"},
		Assignments: map[string][]string{
			"i1": {"Hòa", "Lan"},
			"i2": {"Minh"},
		},
	}

	token, err := service.EncodeSplitConfig(config)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), token)

	decoded := service.DecodeSplitConfig(token)
	require.NotNil(t, decoded)
	assert.Equal(t, config, decoded)
}

func TestBillService_EncodeSplitConfig_NilYieldsEmptyToken(t *testing.T) {
	service := NewBillService()

	token, err := service.EncodeSplitConfig(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestBillService_DecodeSplitConfig_LenientOnDamage(t *testing.T) {
	service := NewBillService()

	assert.Nil(t, service.DecodeSplitConfig(""))
	assert.Nil(t, service.DecodeSplitConfig("not base64!!!"))
	assert.Nil(t, service.DecodeSplitConfig(utils.EncodeBase64URL([]byte("not deflate"))))

	// Decompresses fine but is not JSON
	assert.Nil(t, service.DecodeSplitConfig(deflateJSON(t, "][")))
}

func TestBillService_DecodeSplitConfig_SanitizesEntries(t *testing.T) {
	service := NewBillService()

	doc := `{
		"mode": "even",
		"payers": ["Hòa", "   ", 42, "Lan", null],
		"assignments": {
			"i1": ["Hòa", "", 7],
			"i2": "oops",
			"i3": ["Lan"]
		}
	}`
	decoded := service.DecodeSplitConfig(deflateJSON(t, doc))
	require.NotNil(t, decoded)

	assert.Equal(t, utils.SplitModeEven, decoded.Mode)
	assert.Equal(t, []string{"Hòa", "Lan"}, decoded.Payers)
	assert.Equal(t, map[string][]string{
		"i1": {"Hòa"},
		"i2": {},
		"i3": {"Lan"},
	}, decoded.Assignments)
}

func TestBillService_DecodeSplitConfig_UnknownModeFallsBack(t *testing.T) {
	service := NewBillService()

	decoded := service.DecodeSplitConfig(deflateJSON(t, `{"mode":"weird","payers":["A"]}`))
	require.NotNil(t, decoded)
	assert.Equal(t, utils.SplitModeIndividual, decoded.Mode)

	decoded = service.DecodeSplitConfig(deflateJSON(t, `{"mode":5,"payers":["A"]}`))
	require.NotNil(t, decoded)
	assert.Equal(t, utils.SplitModeIndividual, decoded.Mode)
	assert.Equal(t, []string{"A"}, decoded.Payers)
}
