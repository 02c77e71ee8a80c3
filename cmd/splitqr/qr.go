package main

import (
	"fmt"
	"log/slog"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/services"
)

var (
	qrBank    string
	qrAccount string
	qrAmount  string
	qrNote    string
	qrCountry string
	qrPNG     string
	qrSize    int
)

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Build a payment QR payload",
	Long: `Resolve a bank by code, short name or legal name, and build the
scan-ready payment payload for an account transfer. The payload is
printed to stdout; --png additionally renders it as a QR image.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bank := envDefault(qrBank, "SPLITQR_BANK")
		account := envDefault(qrAccount, "SPLITQR_ACCOUNT")
		if bank == "" {
			return fmt.Errorf("--bank is required (or set SPLITQR_BANK)")
		}
		if account == "" {
			return fmt.Errorf("--account is required (or set SPLITQR_ACCOUNT)")
		}

		qrService := services.NewQRService(services.NewBankService())
		result, err := qrService.BuildPayload(&models.PaymentRequest{
			BankQuery: bank,
			Account:   account,
			Amount:    qrAmount,
			Note:      qrNote,
			Country:   qrCountry,
		})
		if err != nil {
			return err
		}

		slog.Debug("payload built",
			"bank", result.Bank.Code,
			"bin", result.Bank.BIN,
			"length", len(result.Payload))
		fmt.Println(result.Payload)

		if qrPNG != "" {
			if err := qrcode.WriteFile(result.Payload, qrcode.Medium, qrSize, qrPNG); err != nil {
				return fmt.Errorf("failed to write QR image: %v", err)
			}
			slog.Info("QR image written", "path", qrPNG)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(qrCmd)

	qrCmd.Flags().StringVar(&qrBank, "bank", "", "bank code, short name or legal name (env SPLITQR_BANK)")
	qrCmd.Flags().StringVar(&qrAccount, "account", "", "beneficiary account number (env SPLITQR_ACCOUNT)")
	qrCmd.Flags().StringVar(&qrAmount, "amount", "", "transfer amount, written into the payload verbatim")
	qrCmd.Flags().StringVar(&qrNote, "note", "", "transfer note")
	qrCmd.Flags().StringVar(&qrCountry, "country", "", "country code (default VN)")
	qrCmd.Flags().StringVar(&qrPNG, "png", "", "write a QR image to this path")
	qrCmd.Flags().IntVar(&qrSize, "size", 512, "QR image size in pixels")
}
