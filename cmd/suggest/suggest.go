// Package suggest implements the suggest command: propose which unpaid
// months a payment covering a given number of months should apply to.
package suggest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"clubdues/internal/schedule"
)

var (
	monthCount int
	paidList   string
	baseMonth  int
)

// Cmd is the suggest command.
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest which unpaid months a payment should cover",
	RunE:  run,
}

func init() {
	Cmd.Flags().IntVarP(&monthCount, "months", "m", 1, "Number of months the payment covers")
	Cmd.Flags().StringVarP(&paidList, "paid", "p", "", "Comma-separated list of already-paid months")
	Cmd.Flags().IntVarP(&baseMonth, "base-month", "b", 0, "Base month to scan from (defaults to the current month)")
}

func run(cmd *cobra.Command, args []string) error {
	paid, err := parsePaidMonths(paidList)
	if err != nil {
		return err
	}

	months := schedule.SuggestMonths(monthCount, paid, baseMonth)
	if len(months) == 0 {
		fmt.Println("no unpaid months available")
		return nil
	}

	parts := make([]string, 0, len(months))
	for _, m := range months {
		parts = append(parts, strconv.Itoa(m))
	}
	fmt.Printf("suggested months: %s\n", strings.Join(parts, ", "))
	return nil
}

// parsePaidMonths parses a comma-separated month list, rejecting values
// outside [1,12].
func parsePaidMonths(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var months []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid month %q: %w", part, err)
		}
		if m < 1 || m > 12 {
			return nil, fmt.Errorf("month %d out of range [1,12]", m)
		}
		months = append(months, m)
	}
	return months, nil
}
