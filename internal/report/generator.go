// Package report renders reconciliation records as CSV for the treasurer's
// review workflow.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"clubdues/internal/logging"
	"clubdues/internal/models"
)

// Row is the flattened CSV shape of a reconciliation record.
type Row struct {
	RecordID        string  `csv:"record_id"`
	Date            string  `csv:"date"`
	Depositor       string  `csv:"depositor"`
	Amount          int64   `csv:"amount"`
	Memo            string  `csv:"memo"`
	Status          string  `csv:"status"`
	MatchType       string  `csv:"match_type"`
	MemberID        int64   `csv:"member_id"`
	MemberName      string  `csv:"member_name"`
	Confidence      float64 `csv:"confidence"`
	FeeTypeName     string  `csv:"fee_type"`
	Period          string  `csv:"period"`
	MonthCount      int     `csv:"month_count"`
	SuggestedMonths string  `csv:"suggested_months"`
	Note            string  `csv:"note"`
}

const dateLayout = "2006-01-02 15:04:05"

// FromRecord flattens a reconciliation record for CSV output.
func FromRecord(record models.ReconRecord) Row {
	months := make([]string, 0, len(record.SuggestedMonths))
	for _, m := range record.SuggestedMonths {
		months = append(months, strconv.Itoa(m))
	}

	return Row{
		RecordID:        record.ID,
		Date:            record.Row.TransactionDate.Format(dateLayout),
		Depositor:       record.Row.DepositorName,
		Amount:          record.Row.Amount,
		Memo:            record.Row.Memo,
		Status:          string(record.Status),
		MatchType:       string(record.Match.Type),
		MemberID:        record.Match.MemberID,
		MemberName:      record.Match.MemberName,
		Confidence:      record.Match.Confidence,
		FeeTypeName:     record.Validation.FeeTypeName,
		Period:          string(record.Validation.Period),
		MonthCount:      record.Validation.MonthCount,
		SuggestedMonths: strings.Join(months, ";"),
		Note:            record.Note,
	}
}

// Write renders records as CSV to w with the given delimiter.
func Write(records []models.ReconRecord, w io.Writer, delimiter rune) error {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, FromRecord(record))
	}

	writer := csv.NewWriter(w)
	if delimiter != 0 {
		writer.Comma = delimiter
	}
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing reconciliation report: %w", err)
	}
	return nil
}

// WriteFile renders records as CSV to a file.
func WriteFile(records []models.ReconRecord, path string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close report file")
		}
	}()

	if err := Write(records, file, delimiter); err != nil {
		return err
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Wrote reconciliation report")
	return nil
}
