// services/sanitize_service.go
package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// SanitizeRecordPayload turns an arbitrary decoded JSON value into a
// normalized split-bill creation payload. It is a pure transform: strings are
// trimmed, numbers coerced, unknown fields dropped. The first offending field
// fails the whole payload with a 400 carrying the client-facing message.
func SanitizeRecordPayload(raw map[string]interface{}) (*models.RecordPayload, error) {
	if raw == nil {
		return nil, utils.NewBadRequestError(utils.ErrInvalidPayload)
	}

	activityName := trimmedString(raw["activityName"])
	if activityName == "" {
		return nil, utils.NewBadRequestError(utils.ErrActivityNameRequired)
	}
	if len(activityName) > utils.MaxActivityNameLength {
		return nil, utils.NewBadRequestError(utils.ErrActivityNameTooLong)
	}

	occurredAt, ok := parseDate(raw["occurredAt"])
	if !ok {
		return nil, utils.NewBadRequestError(utils.ErrOccurredAtInvalid)
	}

	rawParticipants, err := ensureArray(raw["participants"], utils.ErrParticipantsInvalid)
	if err != nil {
		return nil, err
	}
	participants := make([]models.RecordParticipant, 0, len(rawParticipants))
	for _, entry := range rawParticipants {
		participant, err := sanitizeParticipant(entry)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	expenses, err := sanitizeExpenseList(raw["expenses"], utils.ErrExpensesInvalid, utils.ErrExpenseInvalid)
	if err != nil {
		return nil, err
	}

	additionalExpenses, err := sanitizeExpenseList(raw["additionalExpenses"], utils.ErrAdditionalListInvalid, utils.ErrAdditionalInvalid)
	if err != nil {
		return nil, err
	}

	rawMethodIDs, err := ensureArray(raw["paymentMethodIds"], utils.ErrPaymentMethodListValid)
	if err != nil {
		return nil, err
	}
	methodIDs := make([]string, 0, len(rawMethodIDs))
	for _, entry := range rawMethodIDs {
		id := trimmedString(entry)
		if id == "" {
			return nil, utils.NewBadRequestError(utils.ErrPaymentMethodIDInvalid)
		}
		methodIDs = append(methodIDs, id)
	}

	// Snapshots default to an empty list when absent.
	rawSnapshots := raw["paymentMethodSnapshots"]
	if rawSnapshots == nil {
		rawSnapshots = []interface{}{}
	}
	snapshotEntries, err := ensureArray(rawSnapshots, utils.ErrSnapshotListInvalid)
	if err != nil {
		return nil, err
	}
	snapshots := make([]models.PaymentMethodSnapshot, 0, len(snapshotEntries))
	for _, entry := range snapshotEntries {
		snapshot, err := sanitizeSnapshot(entry)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	summary, err := sanitizeSummary(raw["summary"])
	if err != nil {
		return nil, err
	}

	return &models.RecordPayload{
		ActivityName:           activityName,
		OccurredAt:             occurredAt,
		Participants:           participants,
		Expenses:               expenses,
		AdditionalExpenses:     additionalExpenses,
		PaymentMethodIDs:       methodIDs,
		PaymentMethodSnapshots: snapshots,
		Summary:                summary,
	}, nil
}

func sanitizeParticipant(entry interface{}) (models.RecordParticipant, error) {
	obj, ok := entry.(map[string]interface{})
	if !ok {
		return models.RecordParticipant{}, utils.NewBadRequestError(utils.ErrParticipantInvalid)
	}

	id := trimmedString(obj["id"])
	name := trimmedString(obj["name"])
	if id == "" || name == "" || len(name) > utils.MaxParticipantName {
		return models.RecordParticipant{}, utils.NewBadRequestError(utils.ErrParticipantDataRequired)
	}

	return models.RecordParticipant{ID: id, Name: name}, nil
}

func sanitizeExpenseList(raw interface{}, listMessage, itemMessage string) ([]models.RecordExpense, error) {
	entries, err := ensureArray(raw, listMessage)
	if err != nil {
		return nil, err
	}
	expenses := make([]models.RecordExpense, 0, len(entries))
	for _, entry := range entries {
		expense, err := sanitizeExpense(entry, itemMessage)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

func sanitizeExpense(entry interface{}, errorMessage string) (models.RecordExpense, error) {
	obj, ok := entry.(map[string]interface{})
	if !ok {
		return models.RecordExpense{}, utils.NewBadRequestError(errorMessage)
	}

	id := trimmedString(obj["id"])
	description := trimmedString(obj["description"])
	paidBy := trimmedString(obj["paidBy"])
	amount, amountOK := toNumber(obj["amount"])
	createdAt, createdOK := toNumber(obj["createdAt"])

	rawParticipants, err := ensureArray(obj["participants"], utils.ErrExpenseParticipantsList)
	if err != nil {
		return models.RecordExpense{}, err
	}
	participants := make([]string, 0, len(rawParticipants))
	for _, participantID := range rawParticipants {
		trimmed := trimmedString(participantID)
		if trimmed == "" {
			return models.RecordExpense{}, utils.NewBadRequestError(utils.ErrExpenseParticipantID)
		}
		participants = append(participants, trimmed)
	}

	if id == "" || description == "" || len(description) > utils.MaxDescriptionLength ||
		paidBy == "" || !amountOK || amount < 0 || !createdOK {
		return models.RecordExpense{}, utils.NewBadRequestError(errorMessage)
	}

	return models.RecordExpense{
		ID:           id,
		Description:  description,
		Amount:       amount,
		PaidBy:       paidBy,
		Participants: participants,
		CreatedAt:    int64(createdAt),
	}, nil
}

func sanitizeSnapshot(entry interface{}) (models.PaymentMethodSnapshot, error) {
	obj, ok := entry.(map[string]interface{})
	if !ok {
		return models.PaymentMethodSnapshot{}, utils.NewBadRequestError(utils.ErrSnapshotInvalid)
	}

	id := trimmedString(obj["id"])
	provider := trimmedString(obj["provider"])
	ownerName := trimmedString(obj["ownerName"])
	accountNumber := trimmedString(obj["accountNumber"])
	phoneNumber := trimmedString(obj["phoneNumber"])

	var category string
	switch obj["category"] {
	case models.CategoryBankTransfer:
		category = models.CategoryBankTransfer
	case models.CategoryEwallet:
		category = models.CategoryEwallet
	}

	if id == "" || category == "" || provider == "" || ownerName == "" {
		return models.PaymentMethodSnapshot{}, utils.NewBadRequestError(utils.ErrSnapshotDataInvalid)
	}
	if category == models.CategoryBankTransfer && accountNumber == "" {
		return models.PaymentMethodSnapshot{}, utils.NewBadRequestError(utils.ErrSnapshotAccountNumber)
	}
	if category == models.CategoryEwallet && phoneNumber == "" {
		return models.PaymentMethodSnapshot{}, utils.NewBadRequestError(utils.ErrSnapshotPhoneNumber)
	}

	return models.PaymentMethodSnapshot{
		ID:            id,
		Category:      category,
		Provider:      provider,
		OwnerName:     ownerName,
		AccountNumber: accountNumber,
		PhoneNumber:   phoneNumber,
	}, nil
}

func sanitizeSummary(raw interface{}) (models.Summary, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return models.Summary{}, utils.NewBadRequestError(utils.ErrSummaryInvalid)
	}

	total, totalOK := toNumber(obj["total"])
	if !totalOK || total < 0 {
		return models.Summary{}, utils.NewBadRequestError(utils.ErrSummaryTotalInvalid)
	}

	rawEntries, err := ensureArray(obj["perParticipant"], utils.ErrPerParticipantInvalid)
	if err != nil {
		return models.Summary{}, err
	}
	perParticipant := make([]models.ParticipantSummary, 0, len(rawEntries))
	for _, entry := range rawEntries {
		summaryEntry, err := sanitizeParticipantSummary(entry)
		if err != nil {
			return models.Summary{}, err
		}
		perParticipant = append(perParticipant, summaryEntry)
	}

	rawSettlements, err := ensureArray(obj["settlements"], utils.ErrSettlementsInvalid)
	if err != nil {
		return models.Summary{}, err
	}
	settlements := make([]models.Settlement, 0, len(rawSettlements))
	for _, entry := range rawSettlements {
		settlement, err := sanitizeSettlement(entry)
		if err != nil {
			return models.Summary{}, err
		}
		settlements = append(settlements, settlement)
	}

	return models.Summary{
		Total:          total,
		PerParticipant: perParticipant,
		Settlements:    settlements,
	}, nil
}

func sanitizeParticipantSummary(entry interface{}) (models.ParticipantSummary, error) {
	obj, ok := entry.(map[string]interface{})
	if !ok {
		return models.ParticipantSummary{}, utils.NewBadRequestError(utils.ErrSummaryEntryInvalid)
	}

	participantID := trimmedString(obj["participantId"])
	paid, paidOK := toNumber(obj["paid"])
	owed, owedOK := toNumber(obj["owed"])
	balance, balanceOK := toNumber(obj["balance"])

	if participantID == "" || !paidOK || !owedOK || !balanceOK || paid < 0 || owed < 0 {
		return models.ParticipantSummary{}, utils.NewBadRequestError(utils.ErrSummaryDataInvalid)
	}

	rawItems, err := ensureArray(obj["owedItems"], utils.ErrOwedItemsInvalid)
	if err != nil {
		return models.ParticipantSummary{}, err
	}
	owedItems := make([]models.OwedItem, 0, len(rawItems))
	for _, item := range rawItems {
		owedItem, err := sanitizeOwedItem(item)
		if err != nil {
			return models.ParticipantSummary{}, err
		}
		owedItems = append(owedItems, owedItem)
	}

	return models.ParticipantSummary{
		ParticipantID: participantID,
		Paid:          paid,
		Owed:          owed,
		Balance:       balance,
		OwedItems:     owedItems,
	}, nil
}

func sanitizeOwedItem(entry interface{}) (models.OwedItem, error) {
	obj, ok := entry.(map[string]interface{})
	if !ok {
		return models.OwedItem{}, utils.NewBadRequestError(utils.ErrOwedItemInvalid)
	}

	id := trimmedString(obj["id"])
	description := trimmedString(obj["description"])
	amount, amountOK := toNumber(obj["amount"])

	itemType := models.OwedItemBase
	if obj["type"] == models.OwedItemAdditional {
		itemType = models.OwedItemAdditional
	}

	if id == "" || description == "" || !amountOK || amount < 0 {
		return models.OwedItem{}, utils.NewBadRequestError(utils.ErrOwedItemDataInvalid)
	}

	return models.OwedItem{ID: id, Description: description, Amount: amount, Type: itemType}, nil
}

func sanitizeSettlement(entry interface{}) (models.Settlement, error) {
	obj, ok := entry.(map[string]interface{})
	if !ok {
		return models.Settlement{}, utils.NewBadRequestError(utils.ErrSettlementInvalid)
	}

	from := trimmedString(obj["from"])
	to := trimmedString(obj["to"])
	amount, amountOK := toNumber(obj["amount"])

	if from == "" || to == "" || !amountOK || amount < 0 {
		return models.Settlement{}, utils.NewBadRequestError(utils.ErrSettlementDataInvalid)
	}

	return models.Settlement{From: from, To: to, Amount: amount}, nil
}

func ensureArray(value interface{}, message string) ([]interface{}, error) {
	entries, ok := value.([]interface{})
	if !ok {
		return nil, utils.NewBadRequestError(message)
	}
	return entries, nil
}

func trimmedString(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// toNumber coerces JSON numbers and numeric strings, rejecting NaN and
// infinities.
func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, !math.IsNaN(parsed) && !math.IsInf(parsed, 0)
	default:
		return 0, false
	}
}

// Accepted occurredAt layouts, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(value interface{}) (time.Time, bool) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
