package model

// StaffRollupRow is a duty-staff row annotated with the ledger cohort
// matching that staff member's name exactly.
type StaffRollupRow struct {
	DutyStaff
	Count                  int64 `json:"count"`
	ExpectedExpenditureSum int64 `json:"expected_expenditure_sum"`
}

// StaffRollupTotals are grand totals over the entire matching staff cohort,
// independent of the pagination window.
type StaffRollupTotals struct {
	TotalCount                  int64 `json:"total_count"`
	TotalExpectedExpenditureSum int64 `json:"total_expected_expenditure_sum"`
	TotalActualExpenditure      int64 `json:"total_actual_expenditure"`
}

// BusinessRollupRow is one synthetic summary row per business line.
type BusinessRollupRow struct {
	Business            string `json:"business"`
	Count               int64  `json:"count"`
	ExpectedExpenditure int64  `json:"expected_expenditure"`
	Income              int64  `json:"income"`
}

type BusinessRollupTotals struct {
	CountSum               int64 `json:"count_sum"`
	ExpectedExpenditureSum int64 `json:"expected_expenditure_sum"`
	IncomeSum              int64 `json:"income_sum"`
}

// BusinessReport bundles the business roll-up for document export.
type BusinessReport struct {
	Rows   []BusinessRollupRow
	Totals BusinessRollupTotals
}

// DirectoryUser is the external user directory projection used to derive
// the candidate business list.
type DirectoryUser struct {
	Username string `json:"username"`
	DeptID   int64  `json:"dept_id"`
}
