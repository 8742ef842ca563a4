package pdf_test

import (
	"bytes"
	"testing"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/pdf"
)

func TestGenerateBusinessReport(t *testing.T) {
	gen, err := pdf.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	content, err := gen.GenerateBusinessReport(model.BusinessReport{
		Rows: []model.BusinessRollupRow{
			{Business: "relocation", Count: 2, ExpectedExpenditure: 150, Income: 180},
			{Business: "towing", Count: 1, ExpectedExpenditure: 30, Income: 40},
		},
		Totals: model.BusinessRollupTotals{CountSum: 3, ExpectedExpenditureSum: 180, IncomeSum: 220},
	})
	if err != nil {
		t.Fatalf("GenerateBusinessReport: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header: %q", content[:min(len(content), 8)])
	}
	if len(content) < 500 {
		t.Errorf("document suspiciously small: %d bytes", len(content))
	}
}

func TestGenerateBusinessReportEmpty(t *testing.T) {
	gen, err := pdf.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	content, err := gen.GenerateBusinessReport(model.BusinessReport{})
	if err != nil {
		t.Fatalf("GenerateBusinessReport: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Error("empty report is not a valid pdf")
	}
}
