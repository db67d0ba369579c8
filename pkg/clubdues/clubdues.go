// Package clubdues exposes the reconciliation pipeline as a library, for
// callers that want the end-to-end flow without going through the CLI.
package clubdues

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"clubdues/internal/ingest"
	"clubdues/internal/logging"
	"clubdues/internal/matcher"
	"clubdues/internal/models"
	"clubdues/internal/recon"
	"clubdues/internal/report"
	"clubdues/internal/store"
)

// Options configures a reconciliation run.
type Options struct {
	// MaxDistance is the edit distance ceiling for fuzzy name matching.
	// Zero keeps the default.
	MaxDistance int

	// Logger receives progress and per-row diagnostics. Nil uses the
	// process default.
	Logger logging.Logger
}

// ReconcileFile runs the full pipeline: load club data from clubFile, parse
// the deposit export at inputFile (XLSX or CSV, chosen by extension) and
// reconcile every row.
func ReconcileFile(ctx context.Context, inputFile, clubFile string, opts Options) ([]models.ReconRecord, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}

	data, err := store.NewStore(logger).Load(clubFile)
	if err != nil {
		return nil, err
	}

	var rows []models.DepositRow
	if strings.EqualFold(filepath.Ext(inputFile), ".csv") {
		rows, err = ingest.ParseCSVFile(inputFile, logger)
	} else {
		rows, err = ingest.ParseFile(inputFile, logger)
	}
	if err != nil {
		return nil, err
	}

	return Reconcile(ctx, rows, data, opts), nil
}

// Reconcile runs matching, validation and month suggestion over already
// parsed deposit rows.
func Reconcile(ctx context.Context, rows []models.DepositRow, data *store.ClubData, opts Options) []models.ReconRecord {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}

	var engineOpts []recon.EngineOption
	if opts.MaxDistance > 0 {
		engineOpts = append(engineOpts,
			recon.WithMatcher(matcher.New(logger, matcher.WithMaxDistance(opts.MaxDistance))))
	}

	engine := recon.NewEngine(data.FeeRates(), data.Members, data.CoupleGroups, data, logger, engineOpts...)
	return engine.Reconcile(ctx, rows)
}

// WriteReport writes reconciliation records as a CSV report file.
func WriteReport(records []models.ReconRecord, outputFile string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}
	if outputFile == "" {
		return fmt.Errorf("no output file specified")
	}
	return report.WriteFile(records, outputFile, ',', logger)
}
