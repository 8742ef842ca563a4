package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/model"
)

// DirectoryRepository reads the user directory. The business roll-up uses
// it to derive the candidate business-name list for one department.
type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) ListByDept(ctx context.Context, deptID int64, page model.PageRequest) (int64, []model.DirectoryUser, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM users WHERE dept_id = ?", deptID,
	).Scan(&total).Error; err != nil {
		return 0, nil, err
	}

	var rows []model.DirectoryUser
	if err := r.db.WithContext(ctx).Raw(`
		SELECT username, dept_id
		FROM users
		WHERE dept_id = ?
		ORDER BY id ASC
		LIMIT ? OFFSET ?
	`, deptID, page.PageSize, page.Offset()).Scan(&rows).Error; err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}
