package utils

const (
	// Split modes
	SplitModeIndividual = "individual"
	SplitModeEven       = "even"

	// Shared-bill token schema version
	BillSchemaVersion = 1

	// Fixed bill fields (VietQR transfers are VND only)
	CountryCodeVN      = "VN"
	CurrencyNumericVND = "704"

	// EMV Merchant Presented Mode top-level tags
	TagPayloadFormat    = "00"
	TagInitiationMethod = "01"
	TagMerchantAccount  = "38"
	TagCurrency         = "53"
	TagAmount           = "54"
	TagCountry          = "58"
	TagAdditionalData   = "62"
	TagChecksum         = "63"

	// Merchant account and additional data sub-tags
	TagNapasGUID      = "00"
	TagBeneficiary    = "01"
	TagBankBIN        = "00"
	TagAccountNumber  = "01"
	TagServiceCode    = "02"
	TagPurposeMessage = "08"

	// Fixed EMV field values
	PayloadFormatValue     = "01"
	InitiationDynamic      = "12"
	NapasGUID              = "A000000727"
	ServiceAccountTransfer = "QRIBFTTA"

	// Required length of a NAPAS bank identification number
	BankBINLength = 6
)
