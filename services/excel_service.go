// services/excel_service.go
package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// ExcelService renders split-bill records as downloadable workbooks.
type ExcelService struct {
	splitBillService *SplitBillService
}

// NewExcelService creates a new Excel service
func NewExcelService(splitBillService *SplitBillService) *ExcelService {
	return &ExcelService{splitBillService: splitBillService}
}

// ExportRecord builds an xlsx workbook for one of the caller's records and
// returns it with a suggested filename.
func (s *ExcelService) ExportRecord(userID, recordID string) (*excelize.File, string, error) {
	record, err := s.splitBillService.GetByID(userID, recordID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, record); err != nil {
		return nil, "", utils.NewInternalError("Failed to create summary sheet")
	}
	if err := s.createExpensesSheet(f, record); err != nil {
		return nil, "", utils.NewInternalError("Failed to create expenses sheet")
	}

	f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex("Summary"); err == nil {
		f.SetActiveSheet(index)
	}

	filename := fmt.Sprintf("%s_%s.xlsx",
		utils.CleanFileName(record.ActivityName),
		record.OccurredAt.Format("2006-01-02"))
	return f, filename, nil
}

func (s *ExcelService) createSummarySheet(f *excelize.File, record *models.SplitBillRecord) error {
	sheet := "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	names := make(map[string]string, len(record.Participants))
	for _, participant := range record.Participants {
		names[participant.ID] = participant.Name
	}

	f.SetCellValue(sheet, "A1", "Activity")
	f.SetCellValue(sheet, "B1", record.ActivityName)
	f.SetCellValue(sheet, "A2", "Date")
	f.SetCellValue(sheet, "B2", record.OccurredAt.Format("2006-01-02"))
	f.SetCellValue(sheet, "A3", "Total")
	f.SetCellValue(sheet, "B3", utils.Round(record.Summary.Total))

	row := 5
	headers := []string{"Participant", "Paid", "Owed", "Balance"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, header)
	}
	for _, entry := range record.Summary.PerParticipant {
		row++
		name := names[entry.ParticipantID]
		if name == "" {
			name = entry.ParticipantID
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), utils.Round(entry.Paid))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), utils.Round(entry.Owed))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), utils.Round(entry.Balance))
	}

	row += 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Settlements")
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "From")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "To")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Amount")
	for _, settlement := range record.Summary.Settlements {
		row++
		from := names[settlement.From]
		if from == "" {
			from = settlement.From
		}
		to := names[settlement.To]
		if to == "" {
			to = settlement.To
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), from)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), to)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), utils.Round(settlement.Amount))
	}

	return nil
}

func (s *ExcelService) createExpensesSheet(f *excelize.File, record *models.SplitBillRecord) error {
	sheet := "Expenses"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	names := make(map[string]string, len(record.Participants))
	for _, participant := range record.Participants {
		names[participant.ID] = participant.Name
	}

	headers := []string{"Date", "Description", "Amount", "Paid By", "Type"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	row := 1
	writeExpense := func(expense models.RecordExpense, kind string) {
		row++
		paidBy := names[expense.PaidBy]
		if paidBy == "" {
			paidBy = expense.PaidBy
		}
		created := time.UnixMilli(expense.CreatedAt).Format("2006-01-02")
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), created)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), utils.Round(expense.Amount))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), paidBy)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), kind)
	}

	for _, expense := range record.Expenses {
		writeExpense(expense, "base")
	}
	for _, expense := range record.AdditionalExpenses {
		writeExpense(expense, "additional")
	}

	return nil
}
