package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/config"
	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/repository"
)

type ExcelGenerator interface {
	GenerateLedger(rows []model.TotalRecord) ([]byte, error)
}

type PDFGenerator interface {
	GenerateBusinessReport(report model.BusinessReport) ([]byte, error)
}

type LedgerService struct {
	ledger      LedgerStore
	directory   DirectoryStore
	excel       ExcelGenerator
	pdf         PDFGenerator
	deptID      int64
	fanoutLimit int
}

func NewLedgerService(ledger LedgerStore, directory DirectoryStore, excel ExcelGenerator, pdf PDFGenerator, cfg *config.Config) *LedgerService {
	return &LedgerService{
		ledger:      ledger,
		directory:   directory,
		excel:       excel,
		pdf:         pdf,
		deptID:      cfg.Report.BusinessDeptID,
		fanoutLimit: cfg.Report.FanoutLimit,
	}
}

type ListLedgerInput struct {
	Page       model.PageRequest
	Date       string // substring
	Plate      string // substring
	Business   string // substring
	FieldStaff string // substring
}

type LedgerPage struct {
	Total int64
	Rows  []model.TotalRecord
}

func (s *LedgerService) List(ctx context.Context, in ListLedgerInput) (*LedgerPage, error) {
	page := in.Page.Clamp()
	total, rows, err := s.ledger.List(ctx, repository.LedgerFilter{
		DateContains:       in.Date,
		PlateContains:      in.Plate,
		BusinessContains:   in.Business,
		FieldStaffContains: in.FieldStaff,
	}, page)
	if err != nil {
		return nil, err
	}
	return &LedgerPage{Total: total, Rows: rows}, nil
}

type ListFinanceInput struct {
	Page       model.PageRequest
	FieldStaff string // exact
	Plate      string // substring
	Business   string // substring
}

type FinancePage struct {
	Total int64
	Rows  []model.TotalRecordFinanceView
	// Cohort aggregates over the full matching set, not the page.
	Count                  int64
	ExpectedExpenditureSum int64
}

// ListFinance returns the reconciliation view: a display page of the
// restricted finance columns plus cohort-wide count and expected sum.
func (s *LedgerService) ListFinance(ctx context.Context, in ListFinanceInput) (*FinancePage, error) {
	page := in.Page.Clamp()
	filter := repository.LedgerFilter{
		FieldStaffEq:     in.FieldStaff,
		PlateContains:    in.Plate,
		BusinessContains: in.Business,
	}

	total, rows, err := s.ledger.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	cohort, err := fetchCohort(ctx, s.ledger, filter)
	if err != nil {
		return nil, err
	}

	views := make([]model.TotalRecordFinanceView, len(rows))
	for i, row := range rows {
		views[i] = row.FinanceView()
	}
	return &FinancePage{
		Total:                  total,
		Rows:                   views,
		Count:                  cohort.Count,
		ExpectedExpenditureSum: cohort.ExpectedSum,
	}, nil
}

type ListOperatorInput struct {
	Page       model.PageRequest
	Date       string
	Plate      string
	Business   string
	FieldStaff string
	Principal  model.Principal
}

type OperatorPage struct {
	Total int64
	Rows  []model.TotalRecordOperatorView
}

// ListOperator is the "my data" view: credential columns never leave the
// service, and non-superusers only see rows they handled.
func (s *LedgerService) ListOperator(ctx context.Context, in ListOperatorInput) (*OperatorPage, error) {
	page := in.Page.Clamp()
	filter := repository.LedgerFilter{
		DateContains:       in.Date,
		PlateContains:      in.Plate,
		BusinessContains:   in.Business,
		FieldStaffContains: in.FieldStaff,
	}
	if !in.Principal.IsSuperuser {
		filter.InternalStaffEq = in.Principal.Username
	}

	total, rows, err := s.ledger.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	views := make([]model.TotalRecordOperatorView, len(rows))
	for i, row := range rows {
		views[i] = row.OperatorView()
	}
	return &OperatorPage{Total: total, Rows: views}, nil
}

type BusinessRollupResult struct {
	Rows   []model.BusinessRollupRow
	Totals model.BusinessRollupTotals
}

// BusinessRollup produces one summary row per business line. With a
// business filter it summarizes just that cohort; without one it derives
// the candidate list from the business department of the user directory.
// The caller-facing "total" is the number of summary rows, not the number
// of underlying ledger rows.
func (s *LedgerService) BusinessRollup(ctx context.Context, business string) (*BusinessRollupResult, error) {
	var names []string
	if business != "" {
		names = []string{business}
	} else {
		_, users, err := s.directory.ListByDept(ctx, s.deptID, model.CohortPage())
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			if user.Username == "" {
				continue
			}
			names = append(names, user.Username)
		}
	}

	filters := make([]repository.LedgerFilter, len(names))
	for i, name := range names {
		filters[i] = repository.LedgerFilter{BusinessEq: name}
	}
	cohorts, err := fanOutCohorts(ctx, s.ledger, s.fanoutLimit, filters)
	if err != nil {
		return nil, err
	}

	result := &BusinessRollupResult{Rows: make([]model.BusinessRollupRow, len(names))}
	for i, name := range names {
		result.Rows[i] = model.BusinessRollupRow{
			Business:            name,
			Count:               cohorts[i].Count,
			ExpectedExpenditure: cohorts[i].ExpectedSum,
			Income:              cohorts[i].IncomeSum,
		}
		result.Totals.CountSum += cohorts[i].Count
		result.Totals.ExpectedExpenditureSum += cohorts[i].ExpectedSum
		result.Totals.IncomeSum += cohorts[i].IncomeSum
	}
	return result, nil
}

func (s *LedgerService) Get(ctx context.Context, id int64) (*model.TotalRecord, error) {
	rec, err := s.ledger.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *LedgerService) Create(ctx context.Context, rec model.TotalRecord) (*model.TotalRecord, error) {
	if rec.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if rec.Plate == "" {
		return nil, fmt.Errorf("%w: plate is required", ErrInvalidInput)
	}
	if rec.FieldStaff == "" {
		return nil, fmt.Errorf("%w: field_staff is required", ErrInvalidInput)
	}
	return s.ledger.Create(ctx, rec)
}

func (s *LedgerService) Update(ctx context.Context, id int64, patch model.TotalRecordPatch) (*model.TotalRecord, error) {
	rec, err := s.ledger.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// UpdateActualExpenditure reconciles realized cost on one row and nothing
// else; it exists separately from the full update because a different actor
// fills this field in later.
func (s *LedgerService) UpdateActualExpenditure(ctx context.Context, id int64, value int64) error {
	if err := s.ledger.UpdateActualExpenditure(ctx, id, value); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *LedgerService) Delete(ctx context.Context, id int64) error {
	if err := s.ledger.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportLedger writes the full filtered ledger cohort to a workbook.
func (s *LedgerService) ExportLedger(ctx context.Context, in ListLedgerInput) (*ExportResult, error) {
	_, rows, err := s.ledger.List(ctx, repository.LedgerFilter{
		DateContains:       in.Date,
		PlateContains:      in.Plate,
		BusinessContains:   in.Business,
		FieldStaffContains: in.FieldStaff,
	}, model.CohortPage())
	if err != nil {
		return nil, err
	}

	content, err := s.excel.GenerateLedger(rows)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("ledger-%s.xlsx", time.Now().Format("20060102")),
		Content:  content,
	}, nil
}

// ExportBusinessReport renders the business roll-up as a pdf document.
func (s *LedgerService) ExportBusinessReport(ctx context.Context, business string) (*ExportResult, error) {
	rollup, err := s.BusinessRollup(ctx, business)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.GenerateBusinessReport(model.BusinessReport{
		Rows:   rollup.Rows,
		Totals: rollup.Totals,
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("business-rollup-%s.pdf", time.Now().Format("20060102")),
		Content:  content,
	}, nil
}
