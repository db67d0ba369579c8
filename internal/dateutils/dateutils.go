// Package dateutils provides date parsing for bank deposit exports,
// including the spreadsheet serial-date encoding used by common workbook
// formats.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts observed in bank deposit exports.
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutISOFull = "2006-01-02 15:04:05"
	DateLayoutDotted  = "2006.01.02"
	DateLayoutSlashed = "2006/01/02"
)

// depositFormats lists the string encodings tried in order when parsing a
// deposit timestamp.
var depositFormats = []string{
	DateLayoutISOFull,
	DateLayoutISO,
	DateLayoutDotted + " 15:04:05",
	DateLayoutDotted,
	DateLayoutSlashed + " 15:04:05",
	DateLayoutSlashed,
	"2006.1.2",
	"2006/1/2",
}

// serialEpochOffsetDays is the day offset between the spreadsheet serial
// epoch (1899-12-30) and the Unix epoch (1970-01-01).
const serialEpochOffsetDays = 25569

const secondsPerDay = 86400

// FromSerial converts a spreadsheet serial date (days since 1899-12-30,
// fractional part is time of day) to a time.Time in the local zone.
func FromSerial(serial float64) time.Time {
	seconds := (serial - serialEpochOffsetDays) * secondsPerDay
	return time.Unix(int64(seconds), 0)
}

// ParseDepositDate parses a deposit timestamp from a bank export cell.
// Accepted encodings: ISO-like strings (with optional time), strings using
// "." or "/" separators, and numeric spreadsheet serials. Callers decide
// the fallback when nothing parses; the ingestor substitutes the current
// wall-clock time rather than dropping the row.
func ParseDepositDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}

	for _, format := range depositFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	// Numeric cell values arrive as serial dates when the workbook stores
	// the column as a date type.
	if serial, err := strconv.ParseFloat(cleaned, 64); err == nil {
		if serial > 0 {
			return FromSerial(serial), nil
		}
		return time.Time{}, fmt.Errorf("non-positive date serial: %s", cleaned)
	}

	return time.Time{}, fmt.Errorf("unable to parse deposit date: %s", raw)
}
