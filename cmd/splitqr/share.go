package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/services"
	"github.com/hanoitek/splitqr/utils"
)

var (
	shareName         string
	shareOwnerBank    string
	shareOwnerAccount string
	shareItems        []string
	shareTax          int64
	shareTip          int64
	shareDiscount     int64
	sharePayers       []string
	shareEven         bool
	shareBase         string
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Pack a bill into a shareable URL token",
	Long: `Build a shared bill from its lines and pack it into a compact URL
token. With --payer flags an initial split configuration is packed into a
second token. With --base the tokens are joined into a complete URL.

Items are written as "Name:quantity:unitPrice", for example
--item "Trà sữa:2:35000".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerBank := envDefault(shareOwnerBank, "SPLITQR_BANK")
		ownerAccount := envDefault(shareOwnerAccount, "SPLITQR_ACCOUNT")
		if ownerBank == "" || ownerAccount == "" {
			return fmt.Errorf("--owner-bank and --owner-account are required (or set SPLITQR_BANK / SPLITQR_ACCOUNT)")
		}
		if len(shareItems) == 0 {
			return fmt.Errorf("at least one --item is required")
		}

		// Catch bank typos now rather than when someone scans the QR
		bankService := services.NewBankService()
		bank, err := bankService.Resolve(ownerBank)
		if err != nil {
			return err
		}
		slog.Debug("owner bank resolved", "bank", bank.Code, "bin", bank.BIN)

		items := make([]models.BillItem, 0, len(shareItems))
		for _, spec := range shareItems {
			item, err := parseItemSpec(spec)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		var extras *models.BillExtras
		if cmd.Flags().Changed("tax") || cmd.Flags().Changed("tip") || cmd.Flags().Changed("discount") {
			extras = &models.BillExtras{}
			if cmd.Flags().Changed("tax") {
				extras.Tax = &shareTax
			}
			if cmd.Flags().Changed("tip") {
				extras.Tip = &shareTip
			}
			if cmd.Flags().Changed("discount") {
				extras.Discount = &shareDiscount
			}
		}

		bill := models.NewBill(shareName, models.BillOwner{
			BankQuery: ownerBank,
			Account:   ownerAccount,
		}, items, extras)

		billService := services.NewBillService()
		token, err := billService.EncodeBill(bill)
		if err != nil {
			return err
		}

		var splitToken string
		if len(sharePayers) > 0 {
			config := models.NewSplitConfig(sharePayers)
			if shareEven {
				config.Mode = utils.SplitModeEven
			}
			splitToken, err = billService.EncodeSplitConfig(config)
			if err != nil {
				return err
			}
		}

		slog.Info("bill packed", "items", len(items), "token_length", len(token))

		if shareBase != "" {
			separator := "?"
			if strings.Contains(shareBase, "?") {
				separator = "&"
			}
			url := shareBase + separator + "b=" + token
			if splitToken != "" {
				url += "&s=" + splitToken
			}
			fmt.Println(url)
			return nil
		}

		fmt.Println(token)
		if splitToken != "" {
			fmt.Println(splitToken)
		}
		return nil
	},
}

// parseItemSpec parses "Name:quantity:unitPrice". The split runs from the
// right so item names may contain colons.
func parseItemSpec(spec string) (models.BillItem, error) {
	last := strings.LastIndex(spec, ":")
	if last <= 0 {
		return models.BillItem{}, fmt.Errorf("item %q must be Name:quantity:unitPrice", spec)
	}
	mid := strings.LastIndex(spec[:last], ":")
	if mid <= 0 {
		return models.BillItem{}, fmt.Errorf("item %q must be Name:quantity:unitPrice", spec)
	}

	quantity, err := strconv.Atoi(spec[mid+1 : last])
	if err != nil || quantity < 1 {
		return models.BillItem{}, fmt.Errorf("item %q needs a positive integer quantity", spec)
	}
	unitPrice, err := strconv.ParseInt(spec[last+1:], 10, 64)
	if err != nil || unitPrice < 0 {
		return models.BillItem{}, fmt.Errorf("item %q needs a non-negative integer unit price", spec)
	}

	return models.NewBillItem(spec[:mid], quantity, unitPrice), nil
}

func init() {
	rootCmd.AddCommand(shareCmd)

	shareCmd.Flags().StringVar(&shareName, "name", "", "bill name shown to viewers")
	shareCmd.Flags().StringVar(&shareOwnerBank, "owner-bank", "", "bill owner's bank (env SPLITQR_BANK)")
	shareCmd.Flags().StringVar(&shareOwnerAccount, "owner-account", "", "bill owner's account number (env SPLITQR_ACCOUNT)")
	shareCmd.Flags().StringArrayVar(&shareItems, "item", nil, `bill line as "Name:quantity:unitPrice" (repeatable)`)
	shareCmd.Flags().Int64Var(&shareTax, "tax", 0, "tax in VND")
	shareCmd.Flags().Int64Var(&shareTip, "tip", 0, "tip or service charge in VND")
	shareCmd.Flags().Int64Var(&shareDiscount, "discount", 0, "discount in VND")
	shareCmd.Flags().StringArrayVar(&sharePayers, "payer", nil, "payer name for the initial split configuration (repeatable)")
	shareCmd.Flags().BoolVar(&shareEven, "even", false, "split evenly instead of per assigned item")
	shareCmd.Flags().StringVar(&shareBase, "base", "", "base URL to append the tokens to")
}
