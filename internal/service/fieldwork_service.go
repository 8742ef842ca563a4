package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/repository"
)

type FieldWorkService struct {
	store FieldWorkStore
}

func NewFieldWorkService(store FieldWorkStore) *FieldWorkService {
	return &FieldWorkService{store: store}
}

type ListFieldWorkInput struct {
	Page model.PageRequest
	Date string // substring
	Name string // substring
}

type FieldWorkPage struct {
	Total int64
	Rows  []model.FieldWorkRecord
}

func (s *FieldWorkService) List(ctx context.Context, in ListFieldWorkInput) (*FieldWorkPage, error) {
	page := in.Page.Clamp()
	total, rows, err := s.store.List(ctx, repository.FieldWorkFilter{
		DateContains: in.Date,
		NameContains: in.Name,
	}, page)
	if err != nil {
		return nil, err
	}
	return &FieldWorkPage{Total: total, Rows: rows}, nil
}

func (s *FieldWorkService) Get(ctx context.Context, id int64) (*model.FieldWorkRecord, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *FieldWorkService) Create(ctx context.Context, rec model.FieldWorkRecord) (*model.FieldWorkRecord, error) {
	if rec.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if rec.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return s.store.Create(ctx, rec)
}

func (s *FieldWorkService) Update(ctx context.Context, id int64, patch model.FieldWorkRecordPatch) (*model.FieldWorkRecord, error) {
	rec, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *FieldWorkService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
