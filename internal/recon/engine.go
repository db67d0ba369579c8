// Package recon coordinates the deposit reconciliation pass: for each
// ingested deposit row it validates the amount, resolves the depositor and
// proposes the months the payment should cover, yielding one record per row
// for downstream review or persistence.
package recon

import (
	"context"

	"github.com/google/uuid"

	"clubdues/internal/fees"
	"clubdues/internal/logging"
	"clubdues/internal/matcher"
	"clubdues/internal/models"
	"clubdues/internal/schedule"
)

// PaymentLedger supplies the months a member has already paid for a year.
// The surrounding application owns the ledger; the engine only reads it.
type PaymentLedger interface {
	PaidMonths(memberID int64, year int) []int
}

// PaidMonthsFunc adapts a plain function to the PaymentLedger interface.
type PaidMonthsFunc func(memberID int64, year int) []int

// PaidMonths implements PaymentLedger.
func (f PaidMonthsFunc) PaidMonths(memberID int64, year int) []int {
	return f(memberID, year)
}

// emptyLedger is used when no ledger is supplied; every month is unpaid.
type emptyLedger struct{}

func (emptyLedger) PaidMonths(int64, int) []int { return nil }

// Engine runs reconciliation passes over deposit rows. All inputs are read
// in-memory; the engine itself performs no I/O and is safe to share across
// goroutines processing independent batches.
type Engine struct {
	rates     []models.FeeRate
	directory matcher.Directory
	ledger    PaymentLedger
	matcher   *matcher.Matcher
	logger    logging.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMatcher replaces the engine's default matcher, e.g. to widen the
// fuzzy distance bound.
func WithMatcher(m *matcher.Matcher) EngineOption {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

// NewEngine wires an engine from club data. A nil ledger means no payment
// history; a nil logger falls back to the package default.
func NewEngine(rates []models.FeeRate, members []models.Member, coupleGroups []models.CoupleGroup, ledger PaymentLedger, logger logging.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if ledger == nil {
		ledger = emptyLedger{}
	}
	e := &Engine{
		rates:     rates,
		directory: matcher.Directory{Members: members, CoupleGroups: coupleGroups},
		ledger:    ledger,
		matcher:   matcher.New(logger),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile processes a batch of deposit rows and returns one record per
// row, in input order. Rows are independent; a cancelled context stops the
// pass, marking the remaining rows skipped so the caller still receives a
// record for every input.
func (e *Engine) Reconcile(ctx context.Context, rows []models.DepositRow) []models.ReconRecord {
	records := make([]models.ReconRecord, 0, len(rows))
	for i, row := range rows {
		if ctx.Err() != nil {
			e.logger.WithField(logging.FieldCount, len(rows)-i).Warn("Reconciliation cancelled, skipping remaining rows")
			for _, rest := range rows[i:] {
				records = append(records, models.ReconRecord{
					ID:     uuid.NewString(),
					Row:    rest,
					Match:  models.NoMatch(),
					Status: models.StatusSkipped,
					Note:   "batch cancelled",
				})
			}
			break
		}
		records = append(records, e.reconcileRow(row))
	}
	return records
}

// reconcileRow computes the record for one deposit.
func (e *Engine) reconcileRow(row models.DepositRow) models.ReconRecord {
	record := models.ReconRecord{
		ID:  uuid.NewString(),
		Row: row,
	}

	record.Validation = fees.Validate(row.Amount, e.rates)
	record.Match = e.matcher.Match(row.DepositorName, e.directory)

	switch {
	case !record.Validation.Valid:
		// Amount mismatches route to manual review with the diagnostic.
		record.Status = models.StatusError
		record.Note = record.Validation.Reason
	case !record.Match.Matched():
		record.Status = models.StatusPending
		record.Note = "depositor not resolved"
	default:
		record.Status = models.StatusMatched
		year := row.TransactionDate.Year()
		paid := e.ledger.PaidMonths(record.Match.MemberID, year)
		record.SuggestedMonths = schedule.SuggestMonths(
			record.Validation.MonthCount,
			paid,
			int(row.TransactionDate.Month()),
		)
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldRecordID, Value: record.ID},
		logging.Field{Key: logging.FieldDepositor, Value: row.DepositorName},
		logging.Field{Key: logging.FieldAmount, Value: row.Amount},
		logging.Field{Key: logging.FieldStatus, Value: string(record.Status)},
		logging.Field{Key: logging.FieldMatchType, Value: string(record.Match.Type)},
		logging.Field{Key: logging.FieldFeeType, Value: record.Validation.FeeTypeName},
		logging.Field{Key: logging.FieldPeriod, Value: string(record.Validation.Period)},
		logging.Field{Key: logging.FieldMonths, Value: record.SuggestedMonths},
	).Debug("Reconciled deposit row")

	return record
}

// Summary aggregates a reconciliation pass for run logs and reports.
type Summary struct {
	Total         int
	Matched       int
	Pending       int
	Errors        int
	Skipped       int
	MatchedAmount int64
}

// Summarize tallies records by status.
func Summarize(records []models.ReconRecord) Summary {
	var s Summary
	s.Total = len(records)
	for _, record := range records {
		switch record.Status {
		case models.StatusMatched, models.StatusConfirmed:
			s.Matched++
			s.MatchedAmount += record.Row.Amount
		case models.StatusPending:
			s.Pending++
		case models.StatusError:
			s.Errors++
		case models.StatusSkipped:
			s.Skipped++
		}
	}
	return s
}
