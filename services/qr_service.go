package services

import (
	"fmt"
	"strings"

	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/utils"
)

// QRService builds EMV Merchant Presented Mode payloads for NAPAS
// account-to-account transfers
type QRService struct {
	banks *BankService
}

// NewQRService creates a new QR service
func NewQRService(banks *BankService) *QRService {
	return &QRService{
		banks: banks,
	}
}

// BuildPayload resolves the requested bank and assembles the complete
// payment payload, checksum included. The returned bank record tells the
// caller which directory entry the query landed on.
func (s *QRService) BuildPayload(request *models.PaymentRequest) (*models.PaymentResult, error) {
	bank, err := s.banks.Resolve(request.BankQuery)
	if err != nil {
		return nil, err
	}

	merchantBlock, err := s.buildMerchantBlock(bank.BIN, request.Account)
	if err != nil {
		return nil, err
	}

	country := request.Country
	if country == "" {
		country = utils.CountryCodeVN
	}

	payload, err := s.assemble(merchantBlock, request.Amount, country, request.Note)
	if err != nil {
		return nil, err
	}

	return &models.PaymentResult{
		Payload: payload,
		Bank:    *bank,
	}, nil
}

// buildMerchantBlock constructs the nested tag-38 value: the NAPAS GUID
// plus the beneficiary triple of bank BIN, account number and the
// account-transfer service code
func (s *QRService) buildMerchantBlock(bin, account string) (string, error) {
	if len(bin) != utils.BankBINLength || !utils.IsDigits(bin) {
		return "", utils.NewInvalidAccountError(fmt.Sprintf("bank identifier %q must be %d digits", bin, utils.BankBINLength))
	}
	if !utils.IsDigits(account) {
		return "", utils.NewInvalidAccountError(fmt.Sprintf("account number %q must be a non-empty digit string", account))
	}

	binField, err := utils.EncodeTLV(utils.TagBankBIN, bin)
	if err != nil {
		return "", err
	}
	accountField, err := utils.EncodeTLV(utils.TagAccountNumber, account)
	if err != nil {
		return "", err
	}
	serviceField, err := utils.EncodeTLV(utils.TagServiceCode, utils.ServiceAccountTransfer)
	if err != nil {
		return "", err
	}

	beneficiary, err := utils.EncodeTLV(utils.TagBeneficiary, binField+accountField+serviceField)
	if err != nil {
		return "", err
	}
	guid, err := utils.EncodeTLV(utils.TagNapasGUID, utils.NapasGUID)
	if err != nil {
		return "", err
	}

	return guid + beneficiary, nil
}

// assemble lays the top-level tags out in the order scanners expect and
// seals the payload with its checksum
func (s *QRService) assemble(merchantBlock, amount, country, note string) (string, error) {
	fields := []struct {
		tag   string
		value string
	}{
		{utils.TagPayloadFormat, utils.PayloadFormatValue},
		{utils.TagInitiationMethod, utils.InitiationDynamic},
		{utils.TagMerchantAccount, merchantBlock},
		{utils.TagCurrency, utils.CurrencyNumericVND},
		{utils.TagAmount, amount},
		{utils.TagCountry, country},
	}

	var builder strings.Builder
	for _, field := range fields {
		encoded, err := utils.EncodeTLV(field.tag, field.value)
		if err != nil {
			return "", err
		}
		builder.WriteString(encoded)
	}

	// Tag 62 always carries exactly one inner tag 08, even for an empty
	// note: scanners treat its presence as part of the payload shape
	message, err := utils.EncodeTLV(utils.TagPurposeMessage, note)
	if err != nil {
		return "", err
	}
	additional, err := utils.EncodeTLV(utils.TagAdditionalData, message)
	if err != nil {
		return "", err
	}
	builder.WriteString(additional)

	// The checksum covers everything up to and including its own tag
	// header "6304"
	builder.WriteString(utils.TagChecksum)
	builder.WriteString("04")
	payload := builder.String()
	return payload + utils.ChecksumHex(payload), nil
}
