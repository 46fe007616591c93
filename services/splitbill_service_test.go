package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/repository"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

type fakeSplitBillStore struct {
	created   []*models.SplitBillRecord
	getCalls  int
	getResult *models.SplitBillRecord
	getErr    error
}

func (s *fakeSplitBillStore) Create(record *models.SplitBillRecord) error {
	s.created = append(s.created, record)
	return nil
}

func (s *fakeSplitBillStore) ListByOwner(userID string) ([]*models.SplitBillRecord, error) {
	return nil, nil
}

func (s *fakeSplitBillStore) GetByID(userID, recordID string) (*models.SplitBillRecord, error) {
	s.getCalls++
	return s.getResult, s.getErr
}

func consistentPayload() *models.RecordPayload {
	return &models.RecordPayload{
		Participants: []models.RecordParticipant{
			{ID: "p1", Name: "Dina"},
			{ID: "p2", Name: "Raka"},
		},
		Expenses: []models.RecordExpense{
			{ID: "e1", Description: "Dinner", Amount: 300000, PaidBy: "p1", Participants: []string{"p1", "p2"}},
		},
		AdditionalExpenses: []models.RecordExpense{
			{ID: "a1", Description: "Tax", Amount: 30000, PaidBy: "p1", Participants: []string{"p1", "p2"}},
		},
		Summary: models.Summary{
			Total: 330000,
			PerParticipant: []models.ParticipantSummary{
				{ParticipantID: "p1", Paid: 330000, Owed: 165000, Balance: 165000},
				{ParticipantID: "p2", Owed: 165000, Balance: -165000},
			},
			Settlements: []models.Settlement{
				{From: "p2", To: "p1", Amount: 165000},
			},
		},
	}
}

func TestValidateRecordConsistency_Valid(t *testing.T) {
	assert.NoError(t, ValidateRecordConsistency(consistentPayload()))
}

func TestValidateRecordConsistency_UnknownRefs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *models.RecordPayload)
	}{
		{"unknown paidBy", func(p *models.RecordPayload) { p.Expenses[0].PaidBy = "ghost" }},
		{"unknown expense participant", func(p *models.RecordPayload) { p.Expenses[0].Participants = []string{"p1", "ghost"} }},
		{"unknown additional paidBy", func(p *models.RecordPayload) { p.AdditionalExpenses[0].PaidBy = "ghost" }},
		{"unknown summary participant", func(p *models.RecordPayload) { p.Summary.PerParticipant[0].ParticipantID = "ghost" }},
		{"unknown settlement from", func(p *models.RecordPayload) { p.Summary.Settlements[0].From = "ghost" }},
		{"unknown settlement to", func(p *models.RecordPayload) { p.Summary.Settlements[0].To = "ghost" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := consistentPayload()
			tt.mutate(payload)

			err := ValidateRecordConsistency(payload)

			require.Error(t, err)
			assert.Equal(t, utils.ErrUnknownParticipantRef, err.Error())
		})
	}
}

func TestValidateRecordConsistency_TotalMismatch(t *testing.T) {
	payload := consistentPayload()
	payload.Summary.Total = 330001

	err := ValidateRecordConsistency(payload)

	require.Error(t, err)
	assert.Equal(t, utils.ErrSummaryTotalMismatch, err.Error())
}

func TestValidateRecordConsistency_TotalWithinTolerance(t *testing.T) {
	payload := consistentPayload()
	payload.Summary.Total = 330000.005

	assert.NoError(t, ValidateRecordConsistency(payload))
}

func TestSplitBillService_Create(t *testing.T) {
	store := &fakeSplitBillStore{}
	service := NewSplitBillService(store)

	raw := decodePayload(t, validRecordBody())
	record, err := service.Create("owner-1", raw)

	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, "owner-1", record.OwnerID)
	assert.Equal(t, models.StatusLocked, record.Status)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, record.CreatedAt, record.UpdatedAt)
}

func TestSplitBillService_Create_OwnerFieldIgnored(t *testing.T) {
	store := &fakeSplitBillStore{}
	service := NewSplitBillService(store)

	raw := decodePayload(t, validRecordBody())
	raw["ownerId"] = "attacker"
	record, err := service.Create("owner-1", raw)

	require.NoError(t, err)
	assert.Equal(t, "owner-1", record.OwnerID)
}

func TestSplitBillService_Create_RejectsInconsistentSummary(t *testing.T) {
	store := &fakeSplitBillStore{}
	service := NewSplitBillService(store)

	raw := decodePayload(t, validRecordBody())
	raw["summary"].(map[string]interface{})["total"] = 999999.0

	_, err := service.Create("owner-1", raw)

	require.Error(t, err)
	assert.Equal(t, utils.ErrSummaryTotalMismatch, err.Error())
	assert.Empty(t, store.created, "nothing persisted on validation failure")
}

func TestSplitBillService_GetByID_MalformedID(t *testing.T) {
	store := &fakeSplitBillStore{}
	service := NewSplitBillService(store)

	_, err := service.GetByID("owner-1", "not-a-uuid")

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, utils.ErrRecordNotFound, appErr.Message)
	assert.Zero(t, store.getCalls, "malformed ids never reach the store")
}

func TestSplitBillService_GetByID_NotOwned(t *testing.T) {
	store := &fakeSplitBillStore{getErr: repository.ErrNotFound}
	service := NewSplitBillService(store)

	_, err := service.GetByID("owner-1", "7a6e1c9e-3f3d-4a86-9a51-df5b8f6a1c2e")

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, utils.ErrRecordNotFound, appErr.Message)
}
