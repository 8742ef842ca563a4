package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/model"
)

const totalRecordColumns = `
	id, date, plate, region, company, field_staff, internal_staff, platform,
	account, password, business, expected_expenditure, actual_expenditure,
	income, destination, remark, docking_time, handover_time, is_completed,
	created_at
`

// LedgerFilter combines substring and exact-match clauses with AND.
// Exact fields exist because the roll-ups must not double-count a name
// that is a substring of another.
type LedgerFilter struct {
	DateContains       string
	PlateContains      string
	BusinessContains   string
	FieldStaffContains string
	FieldStaffEq       string
	BusinessEq         string
	InternalStaffEq    string
}

func (f LedgerFilter) clauses() ([]string, []interface{}) {
	var where []string
	var args []interface{}
	where, args = appendContains(where, args, "CAST(date AS TEXT)", f.DateContains)
	where, args = appendContains(where, args, "plate", f.PlateContains)
	where, args = appendContains(where, args, "business", f.BusinessContains)
	where, args = appendContains(where, args, "field_staff", f.FieldStaffContains)
	where, args = appendEquals(where, args, "field_staff", f.FieldStaffEq)
	where, args = appendEquals(where, args, "business", f.BusinessEq)
	where, args = appendEquals(where, args, "internal_staff", f.InternalStaffEq)
	return where, args
}

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) List(ctx context.Context, filter LedgerFilter, page model.PageRequest) (int64, []model.TotalRecord, error) {
	where, args := filter.clauses()

	countQuery := "SELECT COUNT(*) FROM total_records" + whereSQL(where)
	var total int64
	if err := r.db.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return 0, nil, err
	}

	listQuery := "SELECT " + totalRecordColumns + " FROM total_records" + whereSQL(where) +
		" ORDER BY id ASC LIMIT ? OFFSET ?"
	listArgs := append(append([]interface{}{}, args...), page.PageSize, page.Offset())

	var rows []model.TotalRecord
	if err := r.db.WithContext(ctx).Raw(listQuery, listArgs...).Scan(&rows).Error; err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

func (r *LedgerRepository) Get(ctx context.Context, id int64) (*model.TotalRecord, error) {
	var row model.TotalRecord
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+totalRecordColumns+" FROM total_records WHERE id = ? LIMIT 1", id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *LedgerRepository) Create(ctx context.Context, rec model.TotalRecord) (*model.TotalRecord, error) {
	var saved model.TotalRecord
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO total_records (
			date, plate, region, company, field_staff, internal_staff,
			platform, account, password, business, expected_expenditure,
			actual_expenditure, income, destination, remark, docking_time,
			handover_time, is_completed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+totalRecordColumns,
		rec.Date, rec.Plate, rec.Region, rec.Company, rec.FieldStaff,
		rec.InternalStaff, rec.Platform, rec.Account, rec.Password,
		rec.Business, rec.ExpectedExpenditure, rec.ActualExpenditure,
		rec.Income, rec.Destination, rec.Remark, rec.DockingTime,
		rec.HandoverTime, rec.IsCompleted,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *LedgerRepository) Update(ctx context.Context, id int64, patch model.TotalRecordPatch) (*model.TotalRecord, error) {
	var set []string
	var args []interface{}
	set, args = appendSet(set, args, "date", patch.Date)
	set, args = appendSet(set, args, "plate", patch.Plate)
	set, args = appendSet(set, args, "region", patch.Region)
	set, args = appendSet(set, args, "company", patch.Company)
	set, args = appendSet(set, args, "field_staff", patch.FieldStaff)
	set, args = appendSet(set, args, "internal_staff", patch.InternalStaff)
	set, args = appendSet(set, args, "platform", patch.Platform)
	set, args = appendSet(set, args, "account", patch.Account)
	set, args = appendSet(set, args, "password", patch.Password)
	set, args = appendSet(set, args, "business", patch.Business)
	set, args = appendSet(set, args, "expected_expenditure", patch.ExpectedExpenditure)
	set, args = appendSet(set, args, "actual_expenditure", patch.ActualExpenditure)
	set, args = appendSet(set, args, "income", patch.Income)
	set, args = appendSet(set, args, "destination", patch.Destination)
	set, args = appendSet(set, args, "remark", patch.Remark)
	set, args = appendSet(set, args, "docking_time", patch.DockingTime)
	set, args = appendSet(set, args, "handover_time", patch.HandoverTime)
	set, args = appendSet(set, args, "is_completed", patch.IsCompleted)

	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE total_records SET " + joinSet(set) + " WHERE id = ? RETURNING " + totalRecordColumns
	args = append(args, id)

	var saved model.TotalRecord
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&saved).Error; err != nil {
		return nil, err
	}
	if saved.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

// UpdateActualExpenditure is the dedicated finance reconciliation path:
// it touches exactly one column of one row.
func (r *LedgerRepository) UpdateActualExpenditure(ctx context.Context, id int64, value int64) error {
	res := r.db.WithContext(ctx).Exec(
		"UPDATE total_records SET actual_expenditure = ? WHERE id = ?", value, id,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LedgerRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM total_records WHERE id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
