package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/service"
	"github.com/nurpe/dispatch-admin/internal/service/servicetest"
)

func txRow(paymentTime time.Time, recipient string, amount string) model.TransactionRecord {
	return model.TransactionRecord{
		PaymentTime:   paymentTime,
		PaymentAmount: decimal.RequireFromString(amount),
		Recipient:     recipient,
	}
}

func TestTransactionListOrderedByPaymentTime(t *testing.T) {
	early := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	store := servicetest.NewFakeTransactionStore(
		txRow(late, "carrier-b", "20.50"),
		txRow(early, "carrier-a", "10.00"),
		txRow(early, "carrier-c", "5.25"),
	)
	svc := service.NewTransactionService(store)

	result, err := svc.List(context.Background(), service.ListTransactionsInput{
		Page: model.PageRequest{Page: 1, PageSize: 10},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(result.Rows))
	}
	// payment_time ascending, id breaks ties
	if result.Rows[0].Recipient != "carrier-a" || result.Rows[1].Recipient != "carrier-c" || result.Rows[2].Recipient != "carrier-b" {
		t.Errorf("order = %s, %s, %s", result.Rows[0].Recipient, result.Rows[1].Recipient, result.Rows[2].Recipient)
	}
	if !result.Rows[0].PaymentAmount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("amount = %s, want 10.00", result.Rows[0].PaymentAmount)
	}
}

func TestTransactionCreateValidation(t *testing.T) {
	svc := service.NewTransactionService(servicetest.NewFakeTransactionStore())

	_, err := svc.Create(context.Background(), model.TransactionRecord{Recipient: "carrier-a"})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("missing payment_time: err = %v, want ErrInvalidInput", err)
	}
	_, err = svc.Create(context.Background(), txRow(time.Now(), "", "10"))
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("missing recipient: err = %v, want ErrInvalidInput", err)
	}
}

func TestTransactionUpdateSparse(t *testing.T) {
	when := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := servicetest.NewFakeTransactionStore(txRow(when, "carrier-a", "10.00"))
	svc := service.NewTransactionService(store)

	amount := decimal.RequireFromString("12.75")
	saved, err := svc.Update(context.Background(), 1, model.TransactionRecordPatch{PaymentAmount: &amount})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !saved.PaymentAmount.Equal(amount) {
		t.Errorf("amount = %s, want 12.75", saved.PaymentAmount)
	}
	if saved.Recipient != "carrier-a" || !saved.PaymentTime.Equal(when) {
		t.Errorf("untouched fields changed: %+v", saved)
	}
}

func TestFieldWorkCRUD(t *testing.T) {
	svc := service.NewFieldWorkService(servicetest.NewFakeFieldWorkStore())

	created, err := svc.Create(context.Background(), model.FieldWorkRecord{
		Name:                "Alice",
		Number:              3,
		ExpectedExpenditure: 120,
		ActualExpenditure:   110,
		Difference:          10,
		Date:                time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	number := int64(4)
	saved, err := svc.Update(context.Background(), created.ID, model.FieldWorkRecordPatch{Number: &number})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved.Number != 4 || saved.Name != "Alice" {
		t.Errorf("sparse update wrong: %+v", saved)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Get after delete: err = %v, want ErrNotFound", err)
	}
}
