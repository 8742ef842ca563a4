package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is one payment to a recipient. Listings are ordered by
// (payment_time, id).
type TransactionRecord struct {
	ID            int64           `json:"id"`
	PaymentTime   time.Time       `json:"payment_time"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	Recipient     string          `json:"recipient"`
	CreatedAt     time.Time       `json:"created_at"`
}

type TransactionRecordPatch struct {
	PaymentTime   *time.Time       `json:"payment_time"`
	PaymentAmount *decimal.Decimal `json:"payment_amount"`
	Recipient     *string          `json:"recipient"`
}
