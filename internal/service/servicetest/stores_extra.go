package servicetest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/repository"
)

type FakeFieldWorkStore struct {
	mu     sync.Mutex
	rows   map[int64]model.FieldWorkRecord
	nextID int64
}

func NewFakeFieldWorkStore(rows ...model.FieldWorkRecord) *FakeFieldWorkStore {
	s := &FakeFieldWorkStore{rows: make(map[int64]model.FieldWorkRecord)}
	for _, row := range rows {
		s.nextID++
		row.ID = s.nextID
		s.rows[row.ID] = row
	}
	return s
}

func (s *FakeFieldWorkStore) List(_ context.Context, filter repository.FieldWorkFilter, page model.PageRequest) (int64, []model.FieldWorkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []model.FieldWorkRecord
	for _, row := range s.rows {
		if filter.DateContains != "" && !strings.Contains(row.Date.Format("2006-01-02 15:04:05"), filter.DateContains) {
			continue
		}
		if filter.NameContains != "" && !strings.Contains(row.Name, filter.NameContains) {
			continue
		}
		matched = append(matched, row)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return int64(len(matched)), window(matched, page), nil
}

func (s *FakeFieldWorkStore) Get(_ context.Context, id int64) (*model.FieldWorkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (s *FakeFieldWorkStore) Create(_ context.Context, rec model.FieldWorkRecord) (*model.FieldWorkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	rec.ID = s.nextID
	s.rows[rec.ID] = rec
	return &rec, nil
}

func (s *FakeFieldWorkStore) Update(_ context.Context, id int64, patch model.FieldWorkRecordPatch) (*model.FieldWorkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Number != nil {
		row.Number = *patch.Number
	}
	if patch.ExpectedExpenditure != nil {
		row.ExpectedExpenditure = *patch.ExpectedExpenditure
	}
	if patch.ActualExpenditure != nil {
		row.ActualExpenditure = *patch.ActualExpenditure
	}
	if patch.Difference != nil {
		row.Difference = *patch.Difference
	}
	if patch.Date != nil {
		row.Date = *patch.Date
	}
	if patch.Remark != nil {
		row.Remark = patch.Remark
	}
	s.rows[id] = row
	return &row, nil
}

func (s *FakeFieldWorkStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.rows, id)
	return nil
}

type FakeTransactionStore struct {
	mu     sync.Mutex
	rows   map[int64]model.TransactionRecord
	nextID int64
}

func NewFakeTransactionStore(rows ...model.TransactionRecord) *FakeTransactionStore {
	s := &FakeTransactionStore{rows: make(map[int64]model.TransactionRecord)}
	for _, row := range rows {
		s.nextID++
		row.ID = s.nextID
		s.rows[row.ID] = row
	}
	return s
}

func (s *FakeTransactionStore) List(_ context.Context, filter repository.TransactionFilter, page model.PageRequest) (int64, []model.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []model.TransactionRecord
	for _, row := range s.rows {
		if filter.PaymentTimeContains != "" && !strings.Contains(row.PaymentTime.Format("2006-01-02 15:04:05"), filter.PaymentTimeContains) {
			continue
		}
		if filter.RecipientContains != "" && !strings.Contains(row.Recipient, filter.RecipientContains) {
			continue
		}
		matched = append(matched, row)
	}
	// (payment_time, id) ordering, same as the SQL store
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].PaymentTime.Equal(matched[j].PaymentTime) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].PaymentTime.Before(matched[j].PaymentTime)
	})
	return int64(len(matched)), window(matched, page), nil
}

func (s *FakeTransactionStore) Get(_ context.Context, id int64) (*model.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (s *FakeTransactionStore) Create(_ context.Context, rec model.TransactionRecord) (*model.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	rec.ID = s.nextID
	s.rows[rec.ID] = rec
	return &rec, nil
}

func (s *FakeTransactionStore) Update(_ context.Context, id int64, patch model.TransactionRecordPatch) (*model.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if patch.PaymentTime != nil {
		row.PaymentTime = *patch.PaymentTime
	}
	if patch.PaymentAmount != nil {
		row.PaymentAmount = *patch.PaymentAmount
	}
	if patch.Recipient != nil {
		row.Recipient = *patch.Recipient
	}
	s.rows[id] = row
	return &row, nil
}

func (s *FakeTransactionStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.rows, id)
	return nil
}
