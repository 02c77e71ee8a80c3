package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hanoitek/splitqr/services"
)

var (
	exportSplit string
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export <token>",
	Short: "Export a bill token to an Excel workbook",
	Long: `Unpack a shared-bill token and write it out as a spreadsheet: one
sheet with the bill lines and, when a split token is given, one with the
per-payer amounts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		billService := services.NewBillService()
		bill, err := billService.DecodeBill(args[0])
		if err != nil {
			return err
		}

		config := billService.DecodeSplitConfig(exportSplit)
		if exportSplit != "" && config == nil {
			slog.Warn("split token unreadable, exporting the bill without a split")
		}

		excelService := services.NewExcelService(services.NewSplitService())
		f, suggested, err := excelService.ExportBill(bill, config)
		if err != nil {
			return err
		}
		defer f.Close()

		path := exportOut
		if path == "" {
			path = suggested
		}
		if err := f.SaveAs(path); err != nil {
			return err
		}

		slog.Info("workbook written", "path", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportSplit, "split", "", "split configuration token")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: derived from the bill name)")
}
