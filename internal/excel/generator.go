package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/dispatch-admin/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateLedger writes the ledger rows to a single-sheet workbook.
// Credential columns are intentionally left out of the export.
func (g *Generator) GenerateLedger(rows []model.TotalRecord) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Ledger"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"ID", "Date", "Plate", "Region", "Company", "Field Staff",
		"Internal Staff", "Platform", "Business", "Expected Expenditure",
		"Actual Expenditure", "Income", "Destination", "Remark",
		"Docking Time", "Handover Time", "Completed",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	var expectedSum, incomeSum int64
	for i, rec := range rows {
		row := i + 2
		set(fmt.Sprintf("A%d", row), rec.ID)
		set(fmt.Sprintf("B%d", row), formatDateTime(rec.Date))
		set(fmt.Sprintf("C%d", row), rec.Plate)
		set(fmt.Sprintf("D%d", row), rec.Region)
		set(fmt.Sprintf("E%d", row), rec.Company)
		set(fmt.Sprintf("F%d", row), rec.FieldStaff)
		set(fmt.Sprintf("G%d", row), rec.InternalStaff)
		set(fmt.Sprintf("H%d", row), rec.Platform)
		set(fmt.Sprintf("I%d", row), rec.Business)
		set(fmt.Sprintf("J%d", row), rec.ExpectedExpenditure)
		set(fmt.Sprintf("K%d", row), formatInt(rec.ActualExpenditure))
		set(fmt.Sprintf("L%d", row), rec.Income)
		set(fmt.Sprintf("M%d", row), rec.Destination)
		set(fmt.Sprintf("N%d", row), formatString(rec.Remark))
		set(fmt.Sprintf("O%d", row), formatTime(rec.DockingTime))
		set(fmt.Sprintf("P%d", row), formatTime(rec.HandoverTime))
		set(fmt.Sprintf("Q%d", row), formatBool(rec.IsCompleted))

		expectedSum += rec.ExpectedExpenditure
		incomeSum += rec.Income
	}

	totalsRow := len(rows) + 3
	set(fmt.Sprintf("A%d", totalsRow), "Totals")
	set(fmt.Sprintf("J%d", totalsRow), expectedSum)
	set(fmt.Sprintf("L%d", totalsRow), incomeSum)

	_ = file.SetColWidth(sheet, "B", "B", 20)
	_ = file.SetColWidth(sheet, "D", "I", 18)
	_ = file.SetColWidth(sheet, "M", "P", 20)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDateTime(*t)
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatInt(value *int64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%d", *value)
}

func formatBool(value *bool) string {
	if value == nil {
		return ""
	}
	if *value {
		return "yes"
	}
	return "no"
}
