package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/model"
)

const transactionColumns = "id, payment_time, payment_amount, recipient, created_at"

type TransactionFilter struct {
	PaymentTimeContains string
	RecipientContains   string
}

func (f TransactionFilter) clauses() ([]string, []interface{}) {
	var where []string
	var args []interface{}
	where, args = appendContains(where, args, "CAST(payment_time AS TEXT)", f.PaymentTimeContains)
	where, args = appendContains(where, args, "recipient", f.RecipientContains)
	return where, args
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) List(ctx context.Context, filter TransactionFilter, page model.PageRequest) (int64, []model.TransactionRecord, error) {
	where, args := filter.clauses()

	var total int64
	if err := r.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM transaction_records"+whereSQL(where), args...,
	).Scan(&total).Error; err != nil {
		return 0, nil, err
	}

	listQuery := "SELECT " + transactionColumns + " FROM transaction_records" + whereSQL(where) +
		" ORDER BY payment_time ASC, id ASC LIMIT ? OFFSET ?"
	listArgs := append(append([]interface{}{}, args...), page.PageSize, page.Offset())

	var rows []model.TransactionRecord
	if err := r.db.WithContext(ctx).Raw(listQuery, listArgs...).Scan(&rows).Error; err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

func (r *TransactionRepository) Get(ctx context.Context, id int64) (*model.TransactionRecord, error) {
	var row model.TransactionRecord
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+transactionColumns+" FROM transaction_records WHERE id = ? LIMIT 1", id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *TransactionRepository) Create(ctx context.Context, rec model.TransactionRecord) (*model.TransactionRecord, error) {
	var saved model.TransactionRecord
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO transaction_records (payment_time, payment_amount, recipient)
		VALUES (?, ?, ?)
		RETURNING `+transactionColumns,
		rec.PaymentTime, rec.PaymentAmount, rec.Recipient,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TransactionRepository) Update(ctx context.Context, id int64, patch model.TransactionRecordPatch) (*model.TransactionRecord, error) {
	var set []string
	var args []interface{}
	set, args = appendSet(set, args, "payment_time", patch.PaymentTime)
	set, args = appendSet(set, args, "payment_amount", patch.PaymentAmount)
	set, args = appendSet(set, args, "recipient", patch.Recipient)

	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE transaction_records SET " + joinSet(set) + " WHERE id = ? RETURNING " + transactionColumns
	args = append(args, id)

	var saved model.TransactionRecord
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&saved).Error; err != nil {
		return nil, err
	}
	if saved.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM transaction_records WHERE id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
