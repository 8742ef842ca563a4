package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/dispatch-admin/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Arial"}, nil
}

// GenerateBusinessReport renders the business roll-up as a one-page table
// with grand totals.
func (g *Generator) GenerateBusinessReport(report model.BusinessReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Business Roll-up Report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Business", "Trips", "Expected Expenditure", "Income"}
	colWidths := []float64{70, 25, 45, 40}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for _, row := range report.Rows {
		drawTableRow(pdf, g.fontName, []string{
			row.Business,
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%d", row.ExpectedExpenditure),
			fmt.Sprintf("%d", row.Income),
		}, colWidths, false)
	}

	drawTableRow(pdf, g.fontName, []string{
		"Totals",
		fmt.Sprintf("%d", report.Totals.CountSum),
		fmt.Sprintf("%d", report.Totals.ExpectedExpenditureSum),
		fmt.Sprintf("%d", report.Totals.IncomeSum),
	}, colWidths, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
