// Package schedule proposes which calendar months a dues payment should be
// recorded against, given the months a member has already paid.
package schedule

import (
	"sort"
	"time"
)

// SuggestMonths proposes up to monthCount unpaid months for a new payment.
// baseMonth is 1-indexed; values outside [1,12] mean "the current calendar
// month".
//
// The scan runs forward cyclically from the base month so the current and
// upcoming months are caught up first, then backfills older arrears from
// January. The result is ascending and never padded: when fewer unpaid
// months exist than requested, only those are returned.
func SuggestMonths(monthCount int, paidMonths []int, baseMonth int) []int {
	if monthCount <= 0 {
		return nil
	}
	if baseMonth < 1 || baseMonth > 12 {
		baseMonth = int(time.Now().Month())
	}

	paid := make(map[int]bool, len(paidMonths))
	for _, m := range paidMonths {
		paid[m] = true
	}

	selected := make(map[int]bool, monthCount)
	var months []int

	// Forward, wrapping through December back to January.
	for i := 0; i < 12 && len(months) < monthCount; i++ {
		m := (baseMonth-1+i)%12 + 1
		if !paid[m] && !selected[m] {
			selected[m] = true
			months = append(months, m)
		}
	}

	// Backfill anything before the base month that the forward pass missed.
	for m := 1; m < baseMonth && len(months) < monthCount; m++ {
		if !paid[m] && !selected[m] {
			selected[m] = true
			months = append(months, m)
		}
	}

	sort.Ints(months)
	return months
}

// UnpaidMonths returns the unpaid months of a year. For the current year
// only months up to and including the current calendar month count as due;
// any other year owes all twelve.
func UnpaidMonths(paidMonths []int, year, currentYear int) []int {
	return unpaidMonths(paidMonths, year, currentYear, int(time.Now().Month()))
}

func unpaidMonths(paidMonths []int, year, currentYear, currentMonth int) []int {
	paid := make(map[int]bool, len(paidMonths))
	for _, m := range paidMonths {
		paid[m] = true
	}

	last := 12
	if year == currentYear {
		last = currentMonth
	}

	var months []int
	for m := 1; m <= last; m++ {
		if !paid[m] {
			months = append(months, m)
		}
	}
	return months
}
