// Package ingest parses bank deposit exports (XLSX workbooks and CSV
// exports) into normalized deposit rows. Only rows with a strictly positive
// deposit amount are emitted; malformed rows degrade gracefully instead of
// aborting the batch.
package ingest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"clubdues/internal/dateutils"
	"clubdues/internal/logging"
	"clubdues/internal/models"
	"clubdues/internal/parsererror"
	"clubdues/internal/textutils"
)

// Column aliases accepted in export headers. Bank exports use one of two
// header spellings per column depending on the export format version.
var (
	dateAliases   = []string{"거래일시", "거래일자"}
	amountAliases = []string{"입금액", "입금금액"}
	nameAliases   = []string{"보낸분/받는분", "보낸분"}
	memoAliases   = []string{"메모", "적요"}
)

// columns holds resolved header indices. A value of -1 means the column is
// absent.
type columns struct {
	date   int
	amount int
	name   int
	memo   int
}

// resolveColumns maps a header row to column indices. The date and amount
// columns are required; the name column is preferred combined-field first
// (sender/receiver) with the plain sender field as fallback; memo is
// optional.
func resolveColumns(header []string) (columns, error) {
	cols := columns{date: -1, amount: -1, name: -1, memo: -1}

	index := func(aliases []string) int {
		for _, alias := range aliases {
			for i, cell := range header {
				if strings.TrimSpace(cell) == alias {
					return i
				}
			}
		}
		return -1
	}

	cols.date = index(dateAliases)
	cols.amount = index(amountAliases)
	cols.name = index(nameAliases)
	cols.memo = index(memoAliases)

	if cols.date == -1 {
		return cols, &parsererror.MissingColumnError{Column: "date", Aliases: dateAliases}
	}
	if cols.amount == -1 {
		return cols, &parsererror.MissingColumnError{Column: "amount", Aliases: amountAliases}
	}
	if cols.name == -1 {
		return cols, &parsererror.MissingColumnError{Column: "depositor", Aliases: nameAliases}
	}
	return cols, nil
}

// Parse reads the first sheet of an XLSX workbook and returns the deposit
// rows. An unreadable workbook is a batch-level error; individual malformed
// rows are handled best-effort.
func Parse(r io.Reader, logger logging.Logger) ([]models.DepositRow, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: "XLSX bank deposit export",
			Msg:            fmt.Sprintf("unreadable workbook: %v", err),
		}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: "XLSX bank deposit export",
			Msg:            "workbook has no sheets",
		}
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: "XLSX bank deposit export",
			Msg:            fmt.Sprintf("unable to read sheet %q: %v", sheet, err),
		}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldSheet, Value: sheet},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Reading deposit rows from workbook")

	return convertRows(rows, logger)
}

// ParseFile parses an XLSX deposit export from disk.
func ParseFile(filePath string, logger logging.Logger) ([]models.DepositRow, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.WithField(logging.FieldFile, filePath).Info("Parsing deposit export file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening deposit export: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	return Parse(file, logger)
}

// convertRows turns raw sheet rows (header first) into deposit rows.
func convertRows(rows [][]string, logger logging.Logger) ([]models.DepositRow, error) {
	if len(rows) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: "bank deposit export",
			Msg:            "no header row",
		}
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var deposits []models.DepositRow
	for i, row := range rows[1:] {
		deposit, ok := convertRow(row, cols, logger)
		if !ok {
			logger.WithField(logging.FieldRow, i+2).Debug("Skipping non-deposit row")
			continue
		}
		deposits = append(deposits, deposit)
	}

	logger.WithField(logging.FieldCount, len(deposits)).Info("Parsed deposit rows")
	return deposits, nil
}

// convertRow converts one data row. Rows whose deposit amount resolves to
// zero or negative report ok=false and are filtered; they are withdrawals or
// non-payment lines, not errors.
func convertRow(row []string, cols columns, logger logging.Logger) (models.DepositRow, bool) {
	amount := parseAmount(cell(row, cols.amount))
	if amount <= 0 {
		return models.DepositRow{}, false
	}

	rawDate := cell(row, cols.date)
	date, err := dateutils.ParseDepositDate(rawDate)
	if err != nil {
		// Lossy but non-fatal: the row still carries a usable amount and
		// depositor, so it is kept with the current wall-clock time instead
		// of being dropped.
		perr := &parsererror.ParseError{Parser: "ingest", Field: "date", Value: rawDate, Err: err}
		logger.WithError(perr).Warn("Unparsable deposit date, using current time")
		date = time.Now()
	}

	return models.DepositRow{
		TransactionDate: date,
		DepositorName:   textutils.CleanName(cell(row, cols.name)),
		Amount:          amount,
		Memo:            strings.TrimSpace(cell(row, cols.memo)),
	}, true
}

// parseAmount resolves a deposit amount cell to whole currency units.
// Numeric values pass through; other strings are stripped to digits first.
// Anything unparsable resolves to 0 and is filtered upstream.
func parseAmount(raw string) int64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	if d, err := decimal.NewFromString(strings.ReplaceAll(cleaned, ",", "")); err == nil {
		return d.IntPart()
	}

	digits := textutils.DigitsOnly(cleaned)
	if digits == "" {
		return 0
	}
	if d, err := decimal.NewFromString(digits); err == nil {
		return d.IntPart()
	}
	return 0
}

// cell returns the trimmed value at index i, or "" when the row is short or
// the column absent.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
