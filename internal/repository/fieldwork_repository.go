package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/model"
)

const fieldWorkColumns = `
	id, name, number, expected_expenditure, actual_expenditure, difference,
	date, remark, created_at
`

type FieldWorkFilter struct {
	DateContains string
	NameContains string
}

func (f FieldWorkFilter) clauses() ([]string, []interface{}) {
	var where []string
	var args []interface{}
	where, args = appendContains(where, args, "CAST(date AS TEXT)", f.DateContains)
	where, args = appendContains(where, args, "name", f.NameContains)
	return where, args
}

type FieldWorkRepository struct {
	db *gorm.DB
}

func NewFieldWorkRepository(db *gorm.DB) *FieldWorkRepository {
	return &FieldWorkRepository{db: db}
}

func (r *FieldWorkRepository) List(ctx context.Context, filter FieldWorkFilter, page model.PageRequest) (int64, []model.FieldWorkRecord, error) {
	where, args := filter.clauses()

	var total int64
	if err := r.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM field_work_records"+whereSQL(where), args...,
	).Scan(&total).Error; err != nil {
		return 0, nil, err
	}

	listQuery := "SELECT " + fieldWorkColumns + " FROM field_work_records" + whereSQL(where) +
		" ORDER BY id ASC LIMIT ? OFFSET ?"
	listArgs := append(append([]interface{}{}, args...), page.PageSize, page.Offset())

	var rows []model.FieldWorkRecord
	if err := r.db.WithContext(ctx).Raw(listQuery, listArgs...).Scan(&rows).Error; err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

func (r *FieldWorkRepository) Get(ctx context.Context, id int64) (*model.FieldWorkRecord, error) {
	var row model.FieldWorkRecord
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+fieldWorkColumns+" FROM field_work_records WHERE id = ? LIMIT 1", id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *FieldWorkRepository) Create(ctx context.Context, rec model.FieldWorkRecord) (*model.FieldWorkRecord, error) {
	var saved model.FieldWorkRecord
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO field_work_records (
			name, number, expected_expenditure, actual_expenditure,
			difference, date, remark
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+fieldWorkColumns,
		rec.Name, rec.Number, rec.ExpectedExpenditure, rec.ActualExpenditure,
		rec.Difference, rec.Date, rec.Remark,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *FieldWorkRepository) Update(ctx context.Context, id int64, patch model.FieldWorkRecordPatch) (*model.FieldWorkRecord, error) {
	var set []string
	var args []interface{}
	set, args = appendSet(set, args, "name", patch.Name)
	set, args = appendSet(set, args, "number", patch.Number)
	set, args = appendSet(set, args, "expected_expenditure", patch.ExpectedExpenditure)
	set, args = appendSet(set, args, "actual_expenditure", patch.ActualExpenditure)
	set, args = appendSet(set, args, "difference", patch.Difference)
	set, args = appendSet(set, args, "date", patch.Date)
	set, args = appendSet(set, args, "remark", patch.Remark)

	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE field_work_records SET " + joinSet(set) + " WHERE id = ? RETURNING " + fieldWorkColumns
	args = append(args, id)

	var saved model.FieldWorkRecord
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&saved).Error; err != nil {
		return nil, err
	}
	if saved.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *FieldWorkRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM field_work_records WHERE id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
