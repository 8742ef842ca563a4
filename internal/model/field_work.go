package model

import "time"

// FieldWorkRecord is a standalone field-work log entry. It is not joined
// against the ledger or duty staff anywhere.
type FieldWorkRecord struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Number              int64     `json:"number"`
	ExpectedExpenditure int64     `json:"expected_expenditure"`
	ActualExpenditure   int64     `json:"actual_expenditure"`
	Difference          int64     `json:"difference"`
	Date                time.Time `json:"date"`
	Remark              *string   `json:"remark"`
	CreatedAt           time.Time `json:"created_at"`
}

type FieldWorkRecordPatch struct {
	Name                *string    `json:"name"`
	Number              *int64     `json:"number"`
	ExpectedExpenditure *int64     `json:"expected_expenditure"`
	ActualExpenditure   *int64     `json:"actual_expenditure"`
	Difference          *int64     `json:"difference"`
	Date                *time.Time `json:"date"`
	Remark              *string    `json:"remark"`
}
