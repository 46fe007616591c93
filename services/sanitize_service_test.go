package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// decodePayload mirrors how handlers decode bodies so tests exercise the same
// float64/map shapes the sanitizer sees in production.
func decodePayload(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func validRecordBody() string {
	return `{
		"activityName": "  Trip to Bali  ",
		"occurredAt": "2026-03-14",
		"participants": [
			{"id": "p1", "name": "Dina"},
			{"id": "p2", "name": " Raka "}
		],
		"expenses": [
			{"id": "e1", "description": "Dinner", "amount": 300000, "paidBy": "p1", "participants": ["p1", "p2"], "createdAt": 1757836800000},
			{"id": "e2", "description": "Taxi", "amount": "50000", "paidBy": "p2", "participants": ["p1", "p2"], "createdAt": 1757840400000}
		],
		"additionalExpenses": [
			{"id": "a1", "description": "Service charge", "amount": 35000, "paidBy": "p1", "participants": ["p1", "p2"], "createdAt": 1757844000000}
		],
		"paymentMethodIds": ["pm1"],
		"paymentMethodSnapshots": [
			{"id": "pm1", "category": "bank_transfer", "provider": "BCA", "ownerName": "Dina", "accountNumber": "1234567890"}
		],
		"summary": {
			"total": 385000,
			"perParticipant": [
				{"participantId": "p1", "paid": 335000, "owed": 192500, "balance": 142500, "owedItems": [
					{"id": "e1", "description": "Dinner", "amount": 150000, "type": "base"},
					{"id": "a1", "description": "Service charge", "amount": 17500, "type": "additional"}
				]},
				{"participantId": "p2", "paid": 50000, "owed": 192500, "balance": -142500, "owedItems": []}
			],
			"settlements": [
				{"from": "p2", "to": "p1", "amount": 142500}
			]
		}
	}`
}

func TestSanitizeRecordPayload_FullScenario(t *testing.T) {
	payload, err := SanitizeRecordPayload(decodePayload(t, validRecordBody()))

	require.NoError(t, err)
	assert.Equal(t, "Trip to Bali", payload.ActivityName)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), payload.OccurredAt)

	require.Len(t, payload.Participants, 2)
	assert.Equal(t, "Raka", payload.Participants[1].Name)

	require.Len(t, payload.Expenses, 2)
	assert.Equal(t, float64(50000), payload.Expenses[1].Amount, "numeric strings are coerced")
	assert.Equal(t, int64(1757836800000), payload.Expenses[0].CreatedAt)

	require.Len(t, payload.AdditionalExpenses, 1)
	assert.Equal(t, []string{"pm1"}, payload.PaymentMethodIDs)

	require.Len(t, payload.PaymentMethodSnapshots, 1)
	assert.Equal(t, models.CategoryBankTransfer, payload.PaymentMethodSnapshots[0].Category)

	assert.Equal(t, float64(385000), payload.Summary.Total)
	require.Len(t, payload.Summary.PerParticipant, 2)
	assert.Equal(t, models.OwedItemAdditional, payload.Summary.PerParticipant[0].OwedItems[1].Type)
	require.Len(t, payload.Summary.Settlements, 1)
	assert.Equal(t, "p2", payload.Summary.Settlements[0].From)
}

func TestSanitizeRecordPayload_SnapshotsDefaultEmpty(t *testing.T) {
	raw := decodePayload(t, validRecordBody())
	delete(raw, "paymentMethodSnapshots")

	payload, err := SanitizeRecordPayload(raw)

	require.NoError(t, err)
	assert.NotNil(t, payload.PaymentMethodSnapshots)
	assert.Empty(t, payload.PaymentMethodSnapshots)
}

func TestSanitizeRecordPayload_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(raw map[string]interface{})
		message string
	}{
		{
			name:    "missing activity name",
			mutate:  func(raw map[string]interface{}) { raw["activityName"] = "   " },
			message: utils.ErrActivityNameRequired,
		},
		{
			name: "activity name too long",
			mutate: func(raw map[string]interface{}) {
				long := make([]byte, utils.MaxActivityNameLength+1)
				for i := range long {
					long[i] = 'a'
				}
				raw["activityName"] = string(long)
			},
			message: utils.ErrActivityNameTooLong,
		},
		{
			name:    "bad date",
			mutate:  func(raw map[string]interface{}) { raw["occurredAt"] = "14-03-2026" },
			message: utils.ErrOccurredAtInvalid,
		},
		{
			name:    "participants not an array",
			mutate:  func(raw map[string]interface{}) { raw["participants"] = "p1" },
			message: utils.ErrParticipantsInvalid,
		},
		{
			name: "participant missing name",
			mutate: func(raw map[string]interface{}) {
				raw["participants"] = []interface{}{map[string]interface{}{"id": "p1", "name": ""}}
			},
			message: utils.ErrParticipantDataRequired,
		},
		{
			name: "expense with negative amount",
			mutate: func(raw map[string]interface{}) {
				expenses := raw["expenses"].([]interface{})
				expenses[0].(map[string]interface{})["amount"] = -1.0
			},
			message: utils.ErrExpenseInvalid,
		},
		{
			name: "expense participant id blank",
			mutate: func(raw map[string]interface{}) {
				expenses := raw["expenses"].([]interface{})
				expenses[0].(map[string]interface{})["participants"] = []interface{}{" "}
			},
			message: utils.ErrExpenseParticipantID,
		},
		{
			name: "additional expense list invalid",
			mutate: func(raw map[string]interface{}) {
				raw["additionalExpenses"] = map[string]interface{}{}
			},
			message: utils.ErrAdditionalListInvalid,
		},
		{
			name: "payment method id blank",
			mutate: func(raw map[string]interface{}) {
				raw["paymentMethodIds"] = []interface{}{""}
			},
			message: utils.ErrPaymentMethodIDInvalid,
		},
		{
			name: "bank transfer snapshot without account number",
			mutate: func(raw map[string]interface{}) {
				snapshots := raw["paymentMethodSnapshots"].([]interface{})
				delete(snapshots[0].(map[string]interface{}), "accountNumber")
			},
			message: utils.ErrSnapshotAccountNumber,
		},
		{
			name: "ewallet snapshot without phone number",
			mutate: func(raw map[string]interface{}) {
				raw["paymentMethodSnapshots"] = []interface{}{map[string]interface{}{
					"id": "pm2", "category": "ewallet", "provider": "GoPay", "ownerName": "Dina",
				}}
			},
			message: utils.ErrSnapshotPhoneNumber,
		},
		{
			name: "snapshot with unknown category",
			mutate: func(raw map[string]interface{}) {
				snapshots := raw["paymentMethodSnapshots"].([]interface{})
				snapshots[0].(map[string]interface{})["category"] = "cash"
			},
			message: utils.ErrSnapshotDataInvalid,
		},
		{
			name:    "summary missing",
			mutate:  func(raw map[string]interface{}) { delete(raw, "summary") },
			message: utils.ErrSummaryInvalid,
		},
		{
			name: "summary total not a number",
			mutate: func(raw map[string]interface{}) {
				raw["summary"].(map[string]interface{})["total"] = "abc"
			},
			message: utils.ErrSummaryTotalInvalid,
		},
		{
			name: "summary entry negative paid",
			mutate: func(raw map[string]interface{}) {
				entries := raw["summary"].(map[string]interface{})["perParticipant"].([]interface{})
				entries[0].(map[string]interface{})["paid"] = -5.0
			},
			message: utils.ErrSummaryDataInvalid,
		},
		{
			name: "owed item without description",
			mutate: func(raw map[string]interface{}) {
				entries := raw["summary"].(map[string]interface{})["perParticipant"].([]interface{})
				items := entries[0].(map[string]interface{})["owedItems"].([]interface{})
				items[0].(map[string]interface{})["description"] = ""
			},
			message: utils.ErrOwedItemDataInvalid,
		},
		{
			name: "settlement missing to",
			mutate: func(raw map[string]interface{}) {
				settlements := raw["summary"].(map[string]interface{})["settlements"].([]interface{})
				delete(settlements[0].(map[string]interface{}), "to")
			},
			message: utils.ErrSettlementDataInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decodePayload(t, validRecordBody())
			tt.mutate(raw)

			_, err := SanitizeRecordPayload(raw)

			require.Error(t, err)
			appErr, ok := err.(*utils.AppError)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestSanitizeRecordPayload_NilPayload(t *testing.T) {
	_, err := SanitizeRecordPayload(nil)

	require.Error(t, err)
	assert.Equal(t, utils.ErrInvalidPayload, err.Error())
}

func TestSanitizeRecordPayload_AcceptedDateLayouts(t *testing.T) {
	layouts := []string{
		"2026-03-14T10:30:00+07:00",
		"2026-03-14T10:30:00.123Z",
		"2026-03-14T10:30:00",
		"2026-03-14",
	}

	for _, value := range layouts {
		raw := decodePayload(t, validRecordBody())
		raw["occurredAt"] = value

		_, err := SanitizeRecordPayload(raw)
		assert.NoError(t, err, "layout %q should be accepted", value)
	}
}
