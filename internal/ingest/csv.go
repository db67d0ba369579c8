package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"clubdues/internal/logging"
	"clubdues/internal/models"
)

// ParseCSV parses a CSV deposit export with the same header schema as the
// XLSX path. Some banks offer CSV downloads of the same statement; the row
// semantics are identical.
func ParseCSV(r io.Reader, logger logging.Logger) ([]models.DepositRow, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports pad rows inconsistently

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.WithError(err).Warn("Skipping malformed CSV row")
			continue
		}
		rows = append(rows, record)
	}

	logger.WithField(logging.FieldCount, len(rows)).Info("Reading deposit rows from CSV")
	return convertRows(rows, logger)
}

// ParseCSVFile parses a CSV deposit export from disk.
func ParseCSVFile(filePath string, logger logging.Logger) ([]models.DepositRow, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.WithField(logging.FieldFile, filePath).Info("Parsing CSV deposit export")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV deposit export: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	return ParseCSV(file, logger)
}
