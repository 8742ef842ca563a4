package service

import (
	"context"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/repository"
)

// Store interfaces mirror the generic record-access contract:
// list(page, page_size, filter) -> (total, rows), get, create, update,
// remove. The gorm repositories satisfy them.

type LedgerStore interface {
	List(ctx context.Context, filter repository.LedgerFilter, page model.PageRequest) (int64, []model.TotalRecord, error)
	Get(ctx context.Context, id int64) (*model.TotalRecord, error)
	Create(ctx context.Context, rec model.TotalRecord) (*model.TotalRecord, error)
	Update(ctx context.Context, id int64, patch model.TotalRecordPatch) (*model.TotalRecord, error)
	UpdateActualExpenditure(ctx context.Context, id int64, value int64) error
	Delete(ctx context.Context, id int64) error
}

type StaffStore interface {
	List(ctx context.Context, filter repository.StaffFilter, page model.PageRequest) (int64, []model.DutyStaff, error)
	Get(ctx context.Context, id int64) (*model.DutyStaff, error)
	Create(ctx context.Context, staff model.DutyStaff) (*model.DutyStaff, error)
	Update(ctx context.Context, id int64, patch model.DutyStaffPatch) (*model.DutyStaff, error)
	Delete(ctx context.Context, id int64) error
}

type FieldWorkStore interface {
	List(ctx context.Context, filter repository.FieldWorkFilter, page model.PageRequest) (int64, []model.FieldWorkRecord, error)
	Get(ctx context.Context, id int64) (*model.FieldWorkRecord, error)
	Create(ctx context.Context, rec model.FieldWorkRecord) (*model.FieldWorkRecord, error)
	Update(ctx context.Context, id int64, patch model.FieldWorkRecordPatch) (*model.FieldWorkRecord, error)
	Delete(ctx context.Context, id int64) error
}

type TransactionStore interface {
	List(ctx context.Context, filter repository.TransactionFilter, page model.PageRequest) (int64, []model.TransactionRecord, error)
	Get(ctx context.Context, id int64) (*model.TransactionRecord, error)
	Create(ctx context.Context, rec model.TransactionRecord) (*model.TransactionRecord, error)
	Update(ctx context.Context, id int64, patch model.TransactionRecordPatch) (*model.TransactionRecord, error)
	Delete(ctx context.Context, id int64) error
}

// DirectoryStore is the external user directory; only used to derive the
// candidate business list for the unfiltered business roll-up.
type DirectoryStore interface {
	ListByDept(ctx context.Context, deptID int64, page model.PageRequest) (int64, []model.DirectoryUser, error)
}
