// Package reconcile implements the reconcile command: parse a bank deposit
// export, reconcile it against club data and emit a CSV report.
package reconcile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"clubdues/cmd/root"
	"clubdues/internal/ingest"
	"clubdues/internal/logging"
	"clubdues/internal/matcher"
	"clubdues/internal/models"
	"clubdues/internal/recon"
	"clubdues/internal/report"
	"clubdues/internal/store"
)

// Cmd is the reconcile command.
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a bank deposit export against club dues",
	Long: `Reconcile parses a bank deposit export (XLSX or CSV), matches each
deposit to a club member, validates the amount against the configured fee
rates and suggests the months each payment should cover. The result is a
CSV report with one record per deposit.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	logger := root.Logger()

	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("no input file specified, use --input")
	}

	data, err := store.NewStore(logger).Load(root.SharedFlags.ClubFile)
	if err != nil {
		return err
	}

	rows, err := parseInput(input, logger)
	if err != nil {
		return err
	}

	engine := recon.NewEngine(
		data.FeeRates(),
		data.Members,
		data.CoupleGroups,
		data,
		logger,
		recon.WithMatcher(matcher.New(logger, matcher.WithMaxDistance(root.Cfg.Matching.MaxDistance))),
	)

	records := engine.Reconcile(cmd.Context(), rows)

	summary := recon.Summarize(records)
	logger.WithFields(
		logging.Field{Key: "total", Value: summary.Total},
		logging.Field{Key: "matched", Value: summary.Matched},
		logging.Field{Key: "pending", Value: summary.Pending},
		logging.Field{Key: "errors", Value: summary.Errors},
		logging.Field{Key: "skipped", Value: summary.Skipped},
		logging.Field{Key: "matched_amount", Value: summary.MatchedAmount},
	).Info("Reconciliation pass complete")

	return writeReport(records, logger)
}

// parseInput picks the parser from the file extension. Bank portals offer
// the same statement as XLSX or CSV.
func parseInput(input string, logger logging.Logger) ([]models.DepositRow, error) {
	if strings.EqualFold(filepath.Ext(input), ".csv") {
		return ingest.ParseCSVFile(input, logger)
	}
	return ingest.ParseFile(input, logger)
}

func writeReport(records []models.ReconRecord, logger logging.Logger) error {
	delimiter := root.Cfg.DelimiterRune()
	if root.SharedFlags.Output == "" {
		return report.Write(records, os.Stdout, delimiter)
	}
	return report.WriteFile(records, root.SharedFlags.Output, delimiter, logger)
}
