package model

import "time"

// TotalRecord is one row of the dispatch ledger: a single vehicle
// trip/transaction. field_staff and business are by-value references
// (free-text labels); deleting or renaming the referenced staff/business
// does not touch ledger rows.
type TotalRecord struct {
	ID                  int64      `json:"id"`
	Date                time.Time  `json:"date"`
	Plate               string     `json:"plate"`
	Region              string     `json:"region"`
	Company             string     `json:"company"`
	FieldStaff          string     `json:"field_staff"`
	InternalStaff       string     `json:"internal_staff"`
	Platform            string     `json:"platform"`
	Account             string     `json:"account"`
	Password            string     `json:"password"`
	Business            string     `json:"business"`
	ExpectedExpenditure int64      `json:"expected_expenditure"`
	ActualExpenditure   *int64     `json:"actual_expenditure"`
	Income              int64      `json:"income"`
	Destination         string     `json:"destination"`
	Remark              *string    `json:"remark"`
	DockingTime         *time.Time `json:"docking_time"`
	HandoverTime        *time.Time `json:"handover_time"`
	IsCompleted         *bool      `json:"is_completed"`
	CreatedAt           time.Time  `json:"created_at"`
}

// TotalRecordPatch carries a sparse update: nil fields are left unchanged.
type TotalRecordPatch struct {
	Date                *time.Time `json:"date"`
	Plate               *string    `json:"plate"`
	Region              *string    `json:"region"`
	Company             *string    `json:"company"`
	FieldStaff          *string    `json:"field_staff"`
	InternalStaff       *string    `json:"internal_staff"`
	Platform            *string    `json:"platform"`
	Account             *string    `json:"account"`
	Password            *string    `json:"password"`
	Business            *string    `json:"business"`
	ExpectedExpenditure *int64     `json:"expected_expenditure"`
	ActualExpenditure   *int64     `json:"actual_expenditure"`
	Income              *int64     `json:"income"`
	Destination         *string    `json:"destination"`
	Remark              *string    `json:"remark"`
	DockingTime         *time.Time `json:"docking_time"`
	HandoverTime        *time.Time `json:"handover_time"`
	IsCompleted         *bool      `json:"is_completed"`
}

// TotalRecordFinanceView is the restricted column set exposed on the
// finance reconciliation listing.
type TotalRecordFinanceView struct {
	ID                  int64  `json:"id"`
	FieldStaff          string `json:"field_staff"`
	Plate               string `json:"plate"`
	Business            string `json:"business"`
	ExpectedExpenditure int64  `json:"expected_expenditure"`
	ActualExpenditure   *int64 `json:"actual_expenditure"`
}

// TotalRecordOperatorView is the "my data" column set: everything except
// the external platform credentials.
type TotalRecordOperatorView struct {
	ID                  int64      `json:"id"`
	Date                time.Time  `json:"date"`
	Plate               string     `json:"plate"`
	Region              string     `json:"region"`
	Company             string     `json:"company"`
	FieldStaff          string     `json:"field_staff"`
	InternalStaff       string     `json:"internal_staff"`
	Platform            string     `json:"platform"`
	Business            string     `json:"business"`
	ExpectedExpenditure int64      `json:"expected_expenditure"`
	ActualExpenditure   *int64     `json:"actual_expenditure"`
	Income              int64      `json:"income"`
	Destination         string     `json:"destination"`
	Remark              *string    `json:"remark"`
	DockingTime         *time.Time `json:"docking_time"`
	HandoverTime        *time.Time `json:"handover_time"`
	IsCompleted         *bool      `json:"is_completed"`
}

// OperatorView projects a ledger row onto the credential-free column set.
func (r TotalRecord) OperatorView() TotalRecordOperatorView {
	return TotalRecordOperatorView{
		ID:                  r.ID,
		Date:                r.Date,
		Plate:               r.Plate,
		Region:              r.Region,
		Company:             r.Company,
		FieldStaff:          r.FieldStaff,
		InternalStaff:       r.InternalStaff,
		Platform:            r.Platform,
		Business:            r.Business,
		ExpectedExpenditure: r.ExpectedExpenditure,
		ActualExpenditure:   r.ActualExpenditure,
		Income:              r.Income,
		Destination:         r.Destination,
		Remark:              r.Remark,
		DockingTime:         r.DockingTime,
		HandoverTime:        r.HandoverTime,
		IsCompleted:         r.IsCompleted,
	}
}

// FinanceView projects a ledger row onto the finance column set.
func (r TotalRecord) FinanceView() TotalRecordFinanceView {
	return TotalRecordFinanceView{
		ID:                  r.ID,
		FieldStaff:          r.FieldStaff,
		Plate:               r.Plate,
		Business:            r.Business,
		ExpectedExpenditure: r.ExpectedExpenditure,
		ActualExpenditure:   r.ActualExpenditure,
	}
}
