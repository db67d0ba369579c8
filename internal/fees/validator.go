// Package fees validates deposited amounts against a club's configured
// membership fee rates and detects fee types from amounts alone.
package fees

import (
	"fmt"
	"strings"

	"clubdues/internal/models"
)

// Validate checks a deposited amount against the configured fee rates.
//
// An amount is valid when it exactly equals a configured rate, or when it is
// an integer multiple of a monthly rate (covering that many months). Exact
// matches are resolved with the same period priority as DetectFeeType
// (annual before semi-annual before quarterly before monthly) so that both
// entry points agree when rates in different periods share an amount.
//
// Invalid amounts are ordinary results, not errors; the Reason field carries
// a human-readable diagnostic for manual review.
func Validate(amount int64, rates []models.FeeRate) models.AmountValidation {
	if amount <= 0 {
		return invalid("deposit amount is non-positive")
	}
	if len(rates) == 0 {
		return invalid("no fee configuration")
	}

	if rate, ok := findExact(amount, rates); ok {
		return models.AmountValidation{
			Valid:       true,
			FeeTypeID:   rate.FeeTypeID,
			FeeTypeName: rate.FeeTypeName,
			Period:      rate.Period,
			MonthCount:  monthsFor(rate),
		}
	}

	if rate, months, ok := findMonthlyMultiple(amount, rates); ok {
		return models.AmountValidation{
			Valid:       true,
			FeeTypeID:   rate.FeeTypeID,
			FeeTypeName: rate.FeeTypeName,
			Period:      models.PeriodMonthly,
			MonthCount:  months,
		}
	}

	return invalid(mismatchReason(amount, rates))
}

// findExact returns the first rate whose amount equals the input, searching
// periods longest first.
func findExact(amount int64, rates []models.FeeRate) (models.FeeRate, bool) {
	for _, period := range models.DetectionOrder {
		for _, rate := range rates {
			if rate.Period == period && rate.Amount == amount {
				return rate, true
			}
		}
	}
	return models.FeeRate{}, false
}

// findMonthlyMultiple returns the first monthly rate that divides the amount
// exactly, along with the number of months covered.
func findMonthlyMultiple(amount int64, rates []models.FeeRate) (models.FeeRate, int, bool) {
	for _, rate := range rates {
		if rate.Period != models.PeriodMonthly || rate.Amount <= 0 {
			continue
		}
		if amount%rate.Amount == 0 {
			return rate, int(amount / rate.Amount), true
		}
	}
	return models.FeeRate{}, 0, false
}

// monthsFor returns the coverage of one payment of the rate, falling back to
// the period's calendar length when the configured count is absent.
func monthsFor(rate models.FeeRate) int {
	if rate.MonthCount >= 1 {
		return rate.MonthCount
	}
	return rate.Period.Months()
}

// mismatchReason enumerates the known monthly rates so a treasurer can see
// at a glance why the amount was rejected.
func mismatchReason(amount int64, rates []models.FeeRate) string {
	var monthly []string
	for _, rate := range rates {
		if rate.Period == models.PeriodMonthly {
			monthly = append(monthly, fmt.Sprintf("%s %d", rate.FeeTypeName, rate.Amount))
		}
	}
	if len(monthly) == 0 {
		return fmt.Sprintf("amount %d does not match any configured rate and no monthly rate is configured", amount)
	}
	return fmt.Sprintf("amount %d does not match any configured rate and is not a multiple of a monthly rate (%s)",
		amount, strings.Join(monthly, ", "))
}

func invalid(reason string) models.AmountValidation {
	return models.AmountValidation{Valid: false, MonthCount: 0, Reason: reason}
}
