// Package validate implements the validate command: check a single deposit
// amount against the club's fee rates.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubdues/cmd/root"
	"clubdues/internal/fees"
	"clubdues/internal/store"
)

var amount int64

// Cmd is the validate command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a deposit amount against the club's fee rates",
	RunE:  run,
}

func init() {
	Cmd.Flags().Int64VarP(&amount, "amount", "a", 0, "Deposit amount in whole currency units")
}

func run(cmd *cobra.Command, args []string) error {
	logger := root.Logger()

	data, err := store.NewStore(logger).Load(root.SharedFlags.ClubFile)
	if err != nil {
		return err
	}
	rates := data.FeeRates()

	result := fees.Validate(amount, rates)
	if !result.Valid {
		fmt.Printf("invalid: %s\n", result.Reason)
		return nil
	}

	fmt.Printf("valid: %s (%s), covers %d month(s)\n",
		result.FeeTypeName, result.Period, result.MonthCount)

	if info, ok := fees.DetectFeeType(amount, rates); ok {
		fmt.Printf("detected fee type: %s (%s)\n", info.FeeTypeName, info.Period)
	}
	return nil
}
