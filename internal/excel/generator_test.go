package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/dispatch-admin/internal/excel"
	"github.com/nurpe/dispatch-admin/internal/model"
)

func TestGenerateLedger(t *testing.T) {
	actual := int64(95)
	remark := "night shift"
	rows := []model.TotalRecord{
		{
			ID:                  1,
			Date:                time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			Plate:               "AB123",
			Region:              "north",
			Company:             "acme",
			FieldStaff:          "Alice",
			InternalStaff:       "anna",
			Platform:            "dispatchly",
			Account:             "acct-1",
			Password:            "hunter2",
			Business:            "relocation",
			ExpectedExpenditure: 100,
			ActualExpenditure:   &actual,
			Income:              120,
			Destination:         "depot",
			Remark:              &remark,
		},
		{
			ID:                  2,
			Date:                time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
			Plate:               "CD456",
			FieldStaff:          "Bob",
			Business:            "towing",
			ExpectedExpenditure: 30,
			Income:              40,
		},
	}

	content, err := excel.NewGenerator().GenerateLedger(rows)
	if err != nil {
		t.Fatalf("GenerateLedger: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	cell := func(ref string) string {
		value, err := file.GetCellValue("Ledger", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return value
	}

	if got := cell("A1"); got != "ID" {
		t.Errorf("A1 = %q, want ID", got)
	}
	if got := cell("C2"); got != "AB123" {
		t.Errorf("C2 = %q, want AB123", got)
	}
	if got := cell("B2"); got != "2024-03-01 10:30:00" {
		t.Errorf("B2 = %q", got)
	}
	if got := cell("K2"); got != "95" {
		t.Errorf("K2 = %q, want 95", got)
	}
	if got := cell("K3"); got != "" {
		t.Errorf("K3 = %q, want empty for unset actual expenditure", got)
	}

	// totals row sits one blank line below the data
	if got := cell("A5"); got != "Totals" {
		t.Errorf("A5 = %q, want Totals", got)
	}
	if got := cell("J5"); got != "130" {
		t.Errorf("expected expenditure total = %q, want 130", got)
	}
	if got := cell("L5"); got != "160" {
		t.Errorf("income total = %q, want 160", got)
	}

	// platform credentials never reach the export
	sheetRows, err := file.GetRows("Ledger")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	for _, row := range sheetRows {
		for _, value := range row {
			if value == "acct-1" || value == "hunter2" {
				t.Fatalf("credential value %q leaked into workbook", value)
			}
		}
	}
}

func TestGenerateLedgerEmpty(t *testing.T) {
	content, err := excel.NewGenerator().GenerateLedger(nil)
	if err != nil {
		t.Fatalf("GenerateLedger: %v", err)
	}
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	if got, _ := file.GetCellValue("Ledger", "A3"); got != "Totals" {
		t.Errorf("A3 = %q, want Totals", got)
	}
}
