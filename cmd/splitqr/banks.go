package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanoitek/splitqr/services"
)

var banksSearch string

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the supported banks",
	Long: `Print the NAPAS member directory this tool resolves bank queries
against. --search filters with the same normalization the resolver uses,
so anything listed here is accepted by the other commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bankService := services.NewBankService()
		banks := bankService.Search(banksSearch)
		if len(banks) == 0 {
			return fmt.Errorf("no bank matches %q", banksSearch)
		}

		fmt.Printf("%-12s %-8s %-20s %s\n", "CODE", "BIN", "SHORT NAME", "LEGAL NAME")
		for _, bank := range banks {
			fmt.Printf("%-12s %-8s %-20s %s\n", bank.Code, bank.BIN, bank.ShortName, bank.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(banksCmd)

	banksCmd.Flags().StringVar(&banksSearch, "search", "", "filter by code, short name or legal name")
}
