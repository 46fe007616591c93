// models/models.go
package models

import "time"

// Record status values. Records are created locked; no endpoint transitions
// them to editable yet.
const (
	StatusLocked   = "locked"
	StatusEditable = "editable"
)

// Payment method snapshot categories
const (
	CategoryBankTransfer = "bank_transfer"
	CategoryEwallet      = "ewallet"
)

// Owed item types
const (
	OwedItemBase       = "base"
	OwedItemAdditional = "additional"
)

// SplitBillRecord is one completed bill-splitting activity owned by a user.
type SplitBillRecord struct {
	ID                     string                  `json:"id"`
	OwnerID                string                  `json:"ownerId"`
	ActivityName           string                  `json:"activityName"`
	OccurredAt             time.Time               `json:"occurredAt"`
	Participants           []RecordParticipant     `json:"participants"`
	Expenses               []RecordExpense         `json:"expenses"`
	AdditionalExpenses     []RecordExpense         `json:"additionalExpenses"`
	PaymentMethodIDs       []string                `json:"paymentMethodIds"`
	PaymentMethodSnapshots []PaymentMethodSnapshot `json:"paymentMethodSnapshots"`
	Summary                Summary                 `json:"summary"`
	Status                 string                  `json:"status"`
	CreatedAt              time.Time               `json:"createdAt"`
	UpdatedAt              time.Time               `json:"updatedAt"`
}

// RecordParticipant is a participant embedded in a record, distinct from the
// standalone participant directory.
type RecordParticipant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecordExpense is a base or additional expense embedded in a record.
// CreatedAt is the client-side epoch-millisecond timestamp.
type RecordExpense struct {
	ID           string   `json:"id"`
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	PaidBy       string   `json:"paidBy"`
	Participants []string `json:"participants"`
	CreatedAt    int64    `json:"createdAt"`
}

// PaymentMethodSnapshot is an immutable copy of a payment method embedded at
// record-creation time.
type PaymentMethodSnapshot struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Provider      string `json:"provider"`
	OwnerName     string `json:"ownerName"`
	AccountNumber string `json:"accountNumber,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
}

// Summary is the client-computed settlement summary stored with a record.
type Summary struct {
	Total          float64              `json:"total"`
	PerParticipant []ParticipantSummary `json:"perParticipant"`
	Settlements    []Settlement         `json:"settlements"`
}

// ParticipantSummary describes one participant's totals within a summary.
type ParticipantSummary struct {
	ParticipantID string     `json:"participantId"`
	Paid          float64    `json:"paid"`
	Owed          float64    `json:"owed"`
	Balance       float64    `json:"balance"`
	OwedItems     []OwedItem `json:"owedItems"`
}

// OwedItem is a single line a participant owes for.
type OwedItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

// Settlement is a directed transfer needed to balance accounts.
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// RecordPayload is a sanitized split-bill creation payload, ready for
// persistence. Produced only by the sanitizer; handlers never build one from
// raw client input.
type RecordPayload struct {
	ActivityName           string
	OccurredAt             time.Time
	Participants           []RecordParticipant
	Expenses               []RecordExpense
	AdditionalExpenses     []RecordExpense
	PaymentMethodIDs       []string
	PaymentMethodSnapshots []PaymentMethodSnapshot
	Summary                Summary
}

// Participant is an entry in a user's standalone participant directory.
type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateParticipantRequest is the body of POST /api/participants.
type CreateParticipantRequest struct {
	Name string `json:"name"`
}
