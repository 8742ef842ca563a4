package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/repository"
)

type TransactionService struct {
	store TransactionStore
}

func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

type ListTransactionsInput struct {
	Page        model.PageRequest
	PaymentTime string // substring
	Recipient   string // substring
}

type TransactionPage struct {
	Total int64
	Rows  []model.TransactionRecord
}

func (s *TransactionService) List(ctx context.Context, in ListTransactionsInput) (*TransactionPage, error) {
	page := in.Page.Clamp()
	total, rows, err := s.store.List(ctx, repository.TransactionFilter{
		PaymentTimeContains: in.PaymentTime,
		RecipientContains:   in.Recipient,
	}, page)
	if err != nil {
		return nil, err
	}
	return &TransactionPage{Total: total, Rows: rows}, nil
}

func (s *TransactionService) Get(ctx context.Context, id int64) (*model.TransactionRecord, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *TransactionService) Create(ctx context.Context, rec model.TransactionRecord) (*model.TransactionRecord, error) {
	if rec.PaymentTime.IsZero() {
		return nil, fmt.Errorf("%w: payment_time is required", ErrInvalidInput)
	}
	if rec.Recipient == "" {
		return nil, fmt.Errorf("%w: recipient is required", ErrInvalidInput)
	}
	return s.store.Create(ctx, rec)
}

func (s *TransactionService) Update(ctx context.Context, id int64, patch model.TransactionRecordPatch) (*model.TransactionRecord, error) {
	rec, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
