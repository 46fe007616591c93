// repository/splitbill_repository.go
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fadhlanhapp/splitbill-backend/models"
)

// SplitBillRepository handles database operations for split-bill records.
// Each record is one row; the embedded lists live in JSONB columns so a
// create is a single atomic insert.
type SplitBillRepository struct {
	DB *sql.DB
}

// NewSplitBillRepository creates a new SplitBillRepository
func NewSplitBillRepository(db *sql.DB) *SplitBillRepository {
	return &SplitBillRepository{DB: db}
}

const recordColumns = `id, user_id, activity_name, occurred_at, participants,
	expenses, additional_expenses, payment_method_ids, payment_method_snapshots,
	summary, status, created_at, updated_at`

// Create persists a record as a single row. The record's ID, timestamps and
// status must already be assigned by the caller.
func (r *SplitBillRepository) Create(record *models.SplitBillRecord) error {
	participants, err := json.Marshal(record.Participants)
	if err != nil {
		return fmt.Errorf("failed to marshal participants: %v", err)
	}
	expenses, err := json.Marshal(record.Expenses)
	if err != nil {
		return fmt.Errorf("failed to marshal expenses: %v", err)
	}
	additional, err := json.Marshal(record.AdditionalExpenses)
	if err != nil {
		return fmt.Errorf("failed to marshal additional expenses: %v", err)
	}
	methodIDs, err := json.Marshal(record.PaymentMethodIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal payment method ids: %v", err)
	}
	snapshots, err := json.Marshal(record.PaymentMethodSnapshots)
	if err != nil {
		return fmt.Errorf("failed to marshal payment method snapshots: %v", err)
	}
	summary, err := json.Marshal(record.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %v", err)
	}

	_, err = r.DB.Exec(
		`INSERT INTO split_bill_records (`+recordColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		record.ID, record.OwnerID, record.ActivityName, record.OccurredAt,
		participants, expenses, additional, methodIDs, snapshots,
		summary, record.Status, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert split bill record: %v", err)
	}
	return nil
}

// ListByOwner returns all records owned by userID, newest first.
func (r *SplitBillRepository) ListByOwner(userID string) ([]*models.SplitBillRecord, error) {
	rows, err := r.DB.Query(
		`SELECT `+recordColumns+` FROM split_bill_records
		 WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list split bill records: %v", err)
	}
	defer rows.Close()

	records := []*models.SplitBillRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetByID returns the record with the given id owned by userID. The owner is
// part of the query predicate, so a record owned by someone else is
// indistinguishable from a missing one.
func (r *SplitBillRepository) GetByID(userID, recordID string) (*models.SplitBillRecord, error) {
	row := r.DB.QueryRow(
		`SELECT `+recordColumns+` FROM split_bill_records
		 WHERE id = $1 AND user_id = $2`,
		recordID, userID,
	)
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return record, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*models.SplitBillRecord, error) {
	var record models.SplitBillRecord
	var participants, expenses, additional, methodIDs, snapshots, summary []byte

	err := row.Scan(
		&record.ID, &record.OwnerID, &record.ActivityName, &record.OccurredAt,
		&participants, &expenses, &additional, &methodIDs, &snapshots,
		&summary, &record.Status, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan split bill record: %v", err)
	}

	if err := json.Unmarshal(participants, &record.Participants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participants: %v", err)
	}
	if err := json.Unmarshal(expenses, &record.Expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal expenses: %v", err)
	}
	if err := json.Unmarshal(additional, &record.AdditionalExpenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal additional expenses: %v", err)
	}
	if err := json.Unmarshal(methodIDs, &record.PaymentMethodIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment method ids: %v", err)
	}
	if err := json.Unmarshal(snapshots, &record.PaymentMethodSnapshots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment method snapshots: %v", err)
	}
	if err := json.Unmarshal(summary, &record.Summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %v", err)
	}

	return &record, nil
}
