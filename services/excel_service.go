package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hanoitek/splitqr/models"
	"github.com/hanoitek/splitqr/utils"
)

// ExcelService renders a shared bill into a spreadsheet for people who
// want the numbers outside the QR page
type ExcelService struct {
	splitService *SplitService
}

// NewExcelService creates a new Excel service
func NewExcelService(splitService *SplitService) *ExcelService {
	return &ExcelService{
		splitService: splitService,
	}
}

// ExportBill generates an Excel workbook for a bill: one sheet with the
// bill lines and one with the per-payer split when a configuration is
// present. Returns the workbook and a suggested filename.
func (s *ExcelService) ExportBill(bill *models.Bill, config *models.SplitConfig) (*excelize.File, string, error) {
	f := excelize.NewFile()

	if err := s.createBillSheet(f, bill); err != nil {
		return nil, "", fmt.Errorf("failed to create bill sheet: %v", err)
	}

	if config != nil && len(config.Payers) > 0 {
		if err := s.createSplitSheet(f, bill, config); err != nil {
			return nil, "", fmt.Errorf("failed to create split sheet: %v", err)
		}
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	name := bill.Name
	if name == "" {
		name = "Bill"
	}
	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		utils.CleanFileName(name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createBillSheet creates Sheet 1: the bill lines and charges
func (s *ExcelService) createBillSheet(f *excelize.File, bill *models.Bill) error {
	sheetName := "Bill"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	// Set headers
	headers := []string{"Item", "Quantity", "Unit Price", "Line Total"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	// Style headers
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "D1", headerStyle)

	// Add bill lines
	for i, item := range bill.Items {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Quantity)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.UnitPrice)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.LineTotal())
	}

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	// Subtotal and extras section
	row := len(bill.Items) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Items Subtotal")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), s.splitService.ItemsSubtotal(bill))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), boldStyle)

	if bill.Extras != nil {
		if bill.Extras.Tax != nil {
			row++
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Tax")
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), *bill.Extras.Tax)
		}
		if bill.Extras.Tip != nil {
			row++
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Tip")
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), *bill.Extras.Tip)
		}
		if bill.Extras.Discount != nil {
			row++
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Discount")
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), -*bill.Extras.Discount)
		}
	}

	row++
	grandTotal := s.splitService.ItemsSubtotal(bill) + s.splitService.ExtrasNet(bill)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Grand Total")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), grandTotal)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), boldStyle)

	// Transfer destination
	row += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Pay To")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), bill.Owner.BankQuery)
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), bill.Owner.Account)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), boldStyle)

	// Auto-fit columns
	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "D", 14)

	return nil
}

// createSplitSheet creates Sheet 2: who owes what
func (s *ExcelService) createSplitSheet(f *excelize.File, bill *models.Bill, config *models.SplitConfig) error {
	sheetName := "Split"
	f.NewSheet(sheetName)

	// Set headers
	headers := []string{"Payer", "Items Share", "Total Due"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	// Style headers
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "C1", headerStyle)

	subtotals := s.splitService.PayerSubtotals(bill, config)
	totals := s.splitService.PayerTotals(bill, config)

	// Payers in configured order, the same order remainders favor
	for i, payer := range config.Payers {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), payer)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), subtotals[payer])
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), totals[payer])
	}

	// Sum row at the bottom ties out to the grand total
	sumRow := len(config.Payers) + 2
	var sum int64
	for _, payer := range config.Payers {
		sum += totals[payer]
	}
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", sumRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", sumRow), sum)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", sumRow), fmt.Sprintf("C%d", sumRow), boldStyle)

	// Auto-fit columns
	f.SetColWidth(sheetName, "A", "C", 15)

	return nil
}
