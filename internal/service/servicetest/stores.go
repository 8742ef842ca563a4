// Package servicetest provides in-memory store fakes for service and
// handler tests. They honor the same filter and pagination semantics as
// the SQL repositories.
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

// ListCall records one list query, so tests can assert the two-tier
// pagination (display page vs cohort page) is not collapsed.
type ListCall struct {
	Filter repository.LedgerFilter
	Page   model.PageRequest
}

type FakeLedgerStore struct {
	mu        sync.Mutex
	rows      map[int64]model.TotalRecord
	nextID    int64
	ListCalls []ListCall
}

func NewFakeLedgerStore(rows ...model.TotalRecord) *FakeLedgerStore {
	s := &FakeLedgerStore{rows: make(map[int64]model.TotalRecord)}
	for _, row := range rows {
		s.nextID++
		row.ID = s.nextID
		s.rows[row.ID] = row
	}
	return s
}

func ledgerMatches(f repository.LedgerFilter, row model.TotalRecord) bool {
	if f.DateContains != "" && !strings.Contains(row.Date.Format("2006-01-02 15:04:05"), f.DateContains) {
		return false
	}
	if f.PlateContains != "" && !strings.Contains(row.Plate, f.PlateContains) {
		return false
	}
	if f.BusinessContains != "" && !strings.Contains(row.Business, f.BusinessContains) {
		return false
	}
	if f.FieldStaffContains != "" && !strings.Contains(row.FieldStaff, f.FieldStaffContains) {
		return false
	}
	if f.FieldStaffEq != "" && row.FieldStaff != f.FieldStaffEq {
		return false
	}
	if f.BusinessEq != "" && row.Business != f.BusinessEq {
		return false
	}
	if f.InternalStaffEq != "" && row.InternalStaff != f.InternalStaffEq {
		return false
	}
	return true
}

func (s *FakeLedgerStore) List(_ context.Context, filter repository.LedgerFilter, page model.PageRequest) (int64, []model.TotalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls = append(s.ListCalls, ListCall{Filter: filter, Page: page})

	var matched []model.TotalRecord
	for _, row := range s.rows {
		if ledgerMatches(filter, row) {
			matched = append(matched, row)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return int64(len(matched)), window(matched, page), nil
}

func (s *FakeLedgerStore) Get(_ context.Context, id int64) (*model.TotalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (s *FakeLedgerStore) Create(_ context.Context, rec model.TotalRecord) (*model.TotalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	rec.ID = s.nextID
	s.rows[rec.ID] = rec
	return &rec, nil
}

func (s *FakeLedgerStore) Update(_ context.Context, id int64, patch model.TotalRecordPatch) (*model.TotalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	applyLedgerPatch(&row, patch)
	s.rows[id] = row
	return &row, nil
}

func (s *FakeLedgerStore) UpdateActualExpenditure(_ context.Context, id int64, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.ActualExpenditure = &value
	s.rows[id] = row
	return nil
}

func (s *FakeLedgerStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.rows, id)
	return nil
}

func applyLedgerPatch(row *model.TotalRecord, patch model.TotalRecordPatch) {
	if patch.Date != nil {
		row.Date = *patch.Date
	}
	if patch.Plate != nil {
		row.Plate = *patch.Plate
	}
	if patch.Region != nil {
		row.Region = *patch.Region
	}
	if patch.Company != nil {
		row.Company = *patch.Company
	}
	if patch.FieldStaff != nil {
		row.FieldStaff = *patch.FieldStaff
	}
	if patch.InternalStaff != nil {
		row.InternalStaff = *patch.InternalStaff
	}
	if patch.Platform != nil {
		row.Platform = *patch.Platform
	}
	if patch.Account != nil {
		row.Account = *patch.Account
	}
	if patch.Password != nil {
		row.Password = *patch.Password
	}
	if patch.Business != nil {
		row.Business = *patch.Business
	}
	if patch.ExpectedExpenditure != nil {
		row.ExpectedExpenditure = *patch.ExpectedExpenditure
	}
	if patch.ActualExpenditure != nil {
		row.ActualExpenditure = patch.ActualExpenditure
	}
	if patch.Income != nil {
		row.Income = *patch.Income
	}
	if patch.Destination != nil {
		row.Destination = *patch.Destination
	}
	if patch.Remark != nil {
		row.Remark = patch.Remark
	}
	if patch.DockingTime != nil {
		row.DockingTime = patch.DockingTime
	}
	if patch.HandoverTime != nil {
		row.HandoverTime = patch.HandoverTime
	}
	if patch.IsCompleted != nil {
		row.IsCompleted = patch.IsCompleted
	}
}

type FakeStaffStore struct {
	mu     sync.Mutex
	rows   map[int64]model.DutyStaff
	nextID int64
}

func NewFakeStaffStore(rows ...model.DutyStaff) *FakeStaffStore {
	s := &FakeStaffStore{rows: make(map[int64]model.DutyStaff)}
	for _, row := range rows {
		s.nextID++
		row.ID = s.nextID
		s.rows[row.ID] = row
	}
	return s
}

func staffMatches(f repository.StaffFilter, row model.DutyStaff) bool {
	if f.NameContains != "" && !strings.Contains(row.Name, f.NameContains) {
		return false
	}
	if f.TypeContains != "" && !strings.Contains(row.Type, f.TypeContains) {
		return false
	}
	if f.NameEq != "" && row.Name != f.NameEq {
		return false
	}
	if f.TypeEq != "" && row.Type != f.TypeEq {
		return false
	}
	return true
}

func (s *FakeStaffStore) List(_ context.Context, filter repository.StaffFilter, page model.PageRequest) (int64, []model.DutyStaff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []model.DutyStaff
	for _, row := range s.rows {
		if staffMatches(filter, row) {
			matched = append(matched, row)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return int64(len(matched)), window(matched, page), nil
}

func (s *FakeStaffStore) Get(_ context.Context, id int64) (*model.DutyStaff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (s *FakeStaffStore) Create(_ context.Context, staff model.DutyStaff) (*model.DutyStaff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	staff.ID = s.nextID
	s.rows[staff.ID] = staff
	return &staff, nil
}

func (s *FakeStaffStore) Update(_ context.Context, id int64, patch model.DutyStaffPatch) (*model.DutyStaff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Type != nil {
		row.Type = *patch.Type
	}
	if patch.ActualExpenditure != nil {
		row.ActualExpenditure = *patch.ActualExpenditure
	}
	s.rows[id] = row
	return &row, nil
}

func (s *FakeStaffStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.rows, id)
	return nil
}

type FakeDirectoryStore struct {
	Users []model.DirectoryUser
}

func (s *FakeDirectoryStore) ListByDept(_ context.Context, deptID int64, page model.PageRequest) (int64, []model.DirectoryUser, error) {
	var matched []model.DirectoryUser
	for _, user := range s.Users {
		if user.DeptID == deptID {
			matched = append(matched, user)
		}
	}
	return int64(len(matched)), window(matched, page), nil
}

func window[T any](rows []T, page model.PageRequest) []T {
	start := page.Offset()
	if start >= len(rows) {
		return nil
	}
	end := start + page.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
