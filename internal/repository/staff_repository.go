package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/model"
)

const dutyStaffColumns = "id, name, type, actual_expenditure, created_at"

type StaffFilter struct {
	NameContains string
	TypeContains string
	NameEq       string
	TypeEq       string
}

func (f StaffFilter) clauses() ([]string, []interface{}) {
	var where []string
	var args []interface{}
	where, args = appendContains(where, args, "name", f.NameContains)
	where, args = appendContains(where, args, "type", f.TypeContains)
	where, args = appendEquals(where, args, "name", f.NameEq)
	where, args = appendEquals(where, args, "type", f.TypeEq)
	return where, args
}

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) List(ctx context.Context, filter StaffFilter, page model.PageRequest) (int64, []model.DutyStaff, error) {
	where, args := filter.clauses()

	var total int64
	if err := r.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM duty_staff"+whereSQL(where), args...,
	).Scan(&total).Error; err != nil {
		return 0, nil, err
	}

	listQuery := "SELECT " + dutyStaffColumns + " FROM duty_staff" + whereSQL(where) +
		" ORDER BY id ASC LIMIT ? OFFSET ?"
	listArgs := append(append([]interface{}{}, args...), page.PageSize, page.Offset())

	var rows []model.DutyStaff
	if err := r.db.WithContext(ctx).Raw(listQuery, listArgs...).Scan(&rows).Error; err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

func (r *StaffRepository) Get(ctx context.Context, id int64) (*model.DutyStaff, error) {
	var row model.DutyStaff
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+dutyStaffColumns+" FROM duty_staff WHERE id = ? LIMIT 1", id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *StaffRepository) Create(ctx context.Context, staff model.DutyStaff) (*model.DutyStaff, error) {
	var saved model.DutyStaff
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO duty_staff (name, type, actual_expenditure)
		VALUES (?, ?, ?)
		RETURNING `+dutyStaffColumns,
		staff.Name, staff.Type, staff.ActualExpenditure,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *StaffRepository) Update(ctx context.Context, id int64, patch model.DutyStaffPatch) (*model.DutyStaff, error) {
	var set []string
	var args []interface{}
	set, args = appendSet(set, args, "name", patch.Name)
	set, args = appendSet(set, args, "type", patch.Type)
	set, args = appendSet(set, args, "actual_expenditure", patch.ActualExpenditure)

	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE duty_staff SET " + joinSet(set) + " WHERE id = ? RETURNING " + dutyStaffColumns
	args = append(args, id)

	var saved model.DutyStaff
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&saved).Error; err != nil {
		return nil, err
	}
	if saved.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

// Delete removes the staff row only. Ledger rows referencing the name keep
// their field_staff value; the dangling reference is documented behavior.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM duty_staff WHERE id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
