package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS total_records (
		id BIGSERIAL PRIMARY KEY,
		date TIMESTAMPTZ NOT NULL,
		plate VARCHAR(32) NOT NULL,
		region VARCHAR(64) NOT NULL,
		company VARCHAR(128) NOT NULL,
		field_staff VARCHAR(64) NOT NULL,
		internal_staff VARCHAR(64) NOT NULL,
		platform VARCHAR(64) NOT NULL,
		account VARCHAR(128) NOT NULL,
		password VARCHAR(128) NOT NULL,
		business VARCHAR(64) NOT NULL,
		expected_expenditure BIGINT NOT NULL,
		actual_expenditure BIGINT,
		income BIGINT NOT NULL DEFAULT 0,
		destination VARCHAR(128) NOT NULL,
		remark TEXT,
		docking_time TIMESTAMPTZ,
		handover_time TIMESTAMPTZ,
		is_completed BOOLEAN,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_total_records_field_staff ON total_records (field_staff);`,
	`CREATE INDEX IF NOT EXISTS idx_total_records_business ON total_records (business);`,
	`CREATE INDEX IF NOT EXISTS idx_total_records_plate ON total_records (plate);`,
	`CREATE TABLE IF NOT EXISTS duty_staff (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(64) NOT NULL,
		type VARCHAR(32) NOT NULL,
		actual_expenditure BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_duty_staff_name ON duty_staff (name);`,
	`CREATE TABLE IF NOT EXISTS field_work_records (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(64) NOT NULL,
		number BIGINT NOT NULL,
		expected_expenditure BIGINT NOT NULL,
		actual_expenditure BIGINT NOT NULL,
		difference BIGINT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		remark TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS transaction_records (
		id BIGSERIAL PRIMARY KEY,
		payment_time TIMESTAMPTZ NOT NULL,
		payment_amount NUMERIC(18,2) NOT NULL,
		recipient VARCHAR(128) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_transaction_records_payment_time ON transaction_records (payment_time, id);`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(64) NOT NULL,
		dept_id BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_users_dept_id ON users (dept_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
