// services/splitbill_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/repository"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// SplitBillStore is the persistence surface the ledger service needs.
type SplitBillStore interface {
	Create(record *models.SplitBillRecord) error
	ListByOwner(userID string) ([]*models.SplitBillRecord, error)
	GetByID(userID, recordID string) (*models.SplitBillRecord, error)
}

// SplitBillService handles split-bill ledger business logic.
type SplitBillService struct {
	store SplitBillStore
}

// NewSplitBillService creates a new split-bill service
func NewSplitBillService(store SplitBillStore) *SplitBillService {
	return &SplitBillService{store: store}
}

// Create sanitizes the raw payload, enforces settlement consistency, and
// persists a new locked record owned by userID. Any owner field in the input
// is ignored.
func (s *SplitBillService) Create(userID string, raw map[string]interface{}) (*models.SplitBillRecord, error) {
	payload, err := SanitizeRecordPayload(raw)
	if err != nil {
		return nil, err
	}

	if err := ValidateRecordConsistency(payload); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &models.SplitBillRecord{
		ID:                     uuid.NewString(),
		OwnerID:                userID,
		ActivityName:           payload.ActivityName,
		OccurredAt:             payload.OccurredAt,
		Participants:           payload.Participants,
		Expenses:               payload.Expenses,
		AdditionalExpenses:     payload.AdditionalExpenses,
		PaymentMethodIDs:       payload.PaymentMethodIDs,
		PaymentMethodSnapshots: payload.PaymentMethodSnapshots,
		Summary:                payload.Summary,
		Status:                 models.StatusLocked,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.store.Create(record); err != nil {
		return nil, utils.NewInternalError("Failed to store split bill record")
	}

	return record, nil
}

// ListByOwner returns the caller's records, newest first.
func (s *SplitBillService) ListByOwner(userID string) ([]*models.SplitBillRecord, error) {
	records, err := s.store.ListByOwner(userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve split bill records")
	}
	return records, nil
}

// GetByID returns one of the caller's records. Malformed and not-owned ids
// are both a 404 so record existence never leaks across owners.
func (s *SplitBillService) GetByID(userID, recordID string) (*models.SplitBillRecord, error) {
	if _, err := uuid.Parse(recordID); err != nil {
		return nil, utils.NewNotFoundError(utils.ErrRecordNotFound)
	}

	record, err := s.store.GetByID(userID, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewNotFoundError(utils.ErrRecordNotFound)
		}
		return nil, utils.NewInternalError("Failed to retrieve split bill record")
	}
	return record, nil
}

// ValidateRecordConsistency enforces the cross-reference and total rules on a
// sanitized payload: every participant reference must resolve to the record's
// own participant list, and the summary total must match the recomputed
// expense sum within the money tolerance.
func ValidateRecordConsistency(payload *models.RecordPayload) error {
	known := make(map[string]bool, len(payload.Participants))
	for _, participant := range payload.Participants {
		known[participant.ID] = true
	}

	for _, expense := range payload.Expenses {
		if err := checkExpenseRefs(expense, known); err != nil {
			return err
		}
	}
	for _, expense := range payload.AdditionalExpenses {
		if err := checkExpenseRefs(expense, known); err != nil {
			return err
		}
	}

	var sum float64
	for _, expense := range payload.Expenses {
		sum += expense.Amount
	}
	for _, expense := range payload.AdditionalExpenses {
		sum += expense.Amount
	}
	if !utils.NearlyEqual(utils.Round(sum), utils.Round(payload.Summary.Total)) {
		return utils.NewBadRequestError(utils.ErrSummaryTotalMismatch)
	}

	for _, entry := range payload.Summary.PerParticipant {
		if !known[entry.ParticipantID] {
			return utils.NewBadRequestError(utils.ErrUnknownParticipantRef)
		}
	}
	for _, settlement := range payload.Summary.Settlements {
		if !known[settlement.From] || !known[settlement.To] {
			return utils.NewBadRequestError(utils.ErrUnknownParticipantRef)
		}
	}

	return nil
}

func checkExpenseRefs(expense models.RecordExpense, known map[string]bool) error {
	if !known[expense.PaidBy] {
		return utils.NewBadRequestError(utils.ErrUnknownParticipantRef)
	}
	for _, participantID := range expense.Participants {
		if !known[participantID] {
			return utils.NewBadRequestError(utils.ErrUnknownParticipantRef)
		}
	}
	return nil
}
