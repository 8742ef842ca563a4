package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/config"
	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/repository"
)

type StaffService struct {
	staff       StaffStore
	ledger      LedgerStore
	fanoutLimit int
}

func NewStaffService(staff StaffStore, ledger LedgerStore, cfg *config.Config) *StaffService {
	return &StaffService{
		staff:       staff,
		ledger:      ledger,
		fanoutLimit: cfg.Report.FanoutLimit,
	}
}

type ListStaffInput struct {
	Page model.PageRequest
	Name string // substring
	Type string // substring
}

type StaffPage struct {
	Total int64
	Rows  []model.StaffRollupRow
}

// List returns a staff page with field-staff rows annotated by their exact
// ledger cohort (count and expected-expenditure sum).
func (s *StaffService) List(ctx context.Context, in ListStaffInput) (*StaffPage, error) {
	page := in.Page.Clamp()
	total, staff, err := s.staff.List(ctx, repository.StaffFilter{
		NameContains: in.Name,
		TypeContains: in.Type,
	}, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.annotate(ctx, staff)
	if err != nil {
		return nil, err
	}
	return &StaffPage{Total: total, Rows: rows}, nil
}

type ListFieldStaffFinanceInput struct {
	Page model.PageRequest
	Name string // exact
}

type StaffFinancePage struct {
	Total  int64
	Rows   []model.StaffRollupRow
	Totals model.StaffRollupTotals
}

// ListFieldStaffFinance is the finance variant: the page is forced to the
// field-staff type with an optional exact name filter, while grand totals
// cover the ENTIRE field-staff cohort regardless of name filter and page.
func (s *StaffService) ListFieldStaffFinance(ctx context.Context, in ListFieldStaffFinanceInput) (*StaffFinancePage, error) {
	page := in.Page.Clamp()
	total, staff, err := s.staff.List(ctx, repository.StaffFilter{
		TypeEq: model.StaffTypeField,
		NameEq: in.Name,
	}, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.annotate(ctx, staff)
	if err != nil {
		return nil, err
	}

	_, cohortStaff, err := s.staff.List(ctx, repository.StaffFilter{
		TypeEq: model.StaffTypeField,
	}, model.CohortPage())
	if err != nil {
		return nil, err
	}
	cohortRows, err := s.annotate(ctx, cohortStaff)
	if err != nil {
		return nil, err
	}

	var totals model.StaffRollupTotals
	for _, row := range cohortRows {
		if row.Name == "" {
			continue
		}
		totals.TotalCount += row.Count
		totals.TotalExpectedExpenditureSum += row.ExpectedExpenditureSum
		totals.TotalActualExpenditure += row.ActualExpenditure
	}

	return &StaffFinancePage{Total: total, Rows: rows, Totals: totals}, nil
}

// annotate attaches the per-staff ledger cohort to field-staff rows. Rows
// with an empty name or another type pass through with zero aggregates.
func (s *StaffService) annotate(ctx context.Context, staff []model.DutyStaff) ([]model.StaffRollupRow, error) {
	rows := make([]model.StaffRollupRow, len(staff))
	var filters []repository.LedgerFilter
	var positions []int
	for i, member := range staff {
		rows[i] = model.StaffRollupRow{DutyStaff: member}
		if member.Type != model.StaffTypeField || member.Name == "" {
			continue
		}
		filters = append(filters, repository.LedgerFilter{FieldStaffEq: member.Name})
		positions = append(positions, i)
	}

	cohorts, err := fanOutCohorts(ctx, s.ledger, s.fanoutLimit, filters)
	if err != nil {
		return nil, err
	}
	for j, cohort := range cohorts {
		rows[positions[j]].Count = cohort.Count
		rows[positions[j]].ExpectedExpenditureSum = cohort.ExpectedSum
	}
	return rows, nil
}

func (s *StaffService) Get(ctx context.Context, id int64) (*model.DutyStaff, error) {
	staff, err := s.staff.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) Create(ctx context.Context, staff model.DutyStaff) (*model.DutyStaff, error) {
	if staff.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if staff.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	return s.staff.Create(ctx, staff)
}

func (s *StaffService) Update(ctx context.Context, id int64, patch model.DutyStaffPatch) (*model.DutyStaff, error) {
	staff, err := s.staff.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return staff, nil
}

// Delete removes the staff row. Ledger rows keep the old field_staff value;
// the dangling by-value reference is documented behavior, not a bug to fix
// here.
func (s *StaffService) Delete(ctx context.Context, id int64) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
