package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/services"
)

var decodeSplit string

var decodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Decode a bill token and show who owes what",
	Long: `Unpack a shared-bill token and print its lines and totals. With
--split, the split configuration is applied and each payer gets their
amount plus a scan-ready payment payload toward the bill owner.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		billService := services.NewBillService()
		bill, err := billService.DecodeBill(args[0])
		if err != nil {
			return err
		}

		config := billService.DecodeSplitConfig(decodeSplit)
		if decodeSplit != "" && config == nil {
			slog.Warn("split token unreadable, showing the bill without a split")
		}

		splitService := services.NewSplitService()
		printBill(bill, splitService)

		if config == nil || len(config.Payers) == 0 {
			return nil
		}

		subtotals := splitService.PayerSubtotals(bill, config)
		totals := splitService.PayerTotals(bill, config)

		fmt.Printf("\nSplit (%s):\n", config.Mode)
		for _, payer := range config.Payers {
			fmt.Printf("  %-20s items %10d   due %10d\n", payer, subtotals[payer], totals[payer])
		}

		// One scan-ready payload per payer, amount set to their share
		qrService := services.NewQRService(services.NewBankService())
		fmt.Println("\nPayment payloads:")
		for _, payer := range config.Payers {
			note := payer
			if bill.Name != "" {
				note = bill.Name + " - " + payer
			}
			result, err := qrService.BuildPayload(&models.PaymentRequest{
				BankQuery: bill.Owner.BankQuery,
				Account:   bill.Owner.Account,
				Amount:    strconv.FormatInt(totals[payer], 10),
				Note:      note,
			})
			if err != nil {
				return err
			}
			fmt.Printf("  %s:\n    %s\n", payer, result.Payload)
		}
		return nil
	},
}

// printBill prints the bill lines, charges and grand total
func printBill(bill *models.Bill, splitService *services.SplitService) {
	if bill.Name != "" {
		fmt.Println(bill.Name)
	}
	fmt.Printf("Pay to: %s / %s\n\n", bill.Owner.BankQuery, bill.Owner.Account)

	for _, item := range bill.Items {
		fmt.Printf("  %-24s %3d x %8d = %10d\n", item.Name, item.Quantity, item.UnitPrice, item.LineTotal())
	}
	fmt.Printf("  %-24s %27d\n", "Items subtotal", splitService.ItemsSubtotal(bill))

	if bill.Extras != nil {
		if bill.Extras.Tax != nil {
			fmt.Printf("  %-24s %27d\n", "Tax", *bill.Extras.Tax)
		}
		if bill.Extras.Tip != nil {
			fmt.Printf("  %-24s %27d\n", "Tip", *bill.Extras.Tip)
		}
		if bill.Extras.Discount != nil {
			fmt.Printf("  %-24s %27d\n", "Discount", -*bill.Extras.Discount)
		}
	}
	fmt.Printf("  %-24s %27d\n", "Total", splitService.ItemsSubtotal(bill)+splitService.ExtrasNet(bill))
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVar(&decodeSplit, "split", "", "split configuration token")
}
