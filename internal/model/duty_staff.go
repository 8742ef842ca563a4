package model

import "time"

// StaffTypeField marks staff who run trips in the field; only these rows
// get ledger roll-up annotations.
const StaffTypeField = "field_staff"

type DutyStaff struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	ActualExpenditure int64     `json:"actual_expenditure"`
	CreatedAt         time.Time `json:"created_at"`
}

type DutyStaffPatch struct {
	Name              *string `json:"name"`
	Type              *string `json:"type"`
	ActualExpenditure *int64  `json:"actual_expenditure"`
}
