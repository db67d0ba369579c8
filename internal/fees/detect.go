package fees

import "clubdues/internal/models"

// FeeTypeInfo identifies the fee type and period detected from an amount.
type FeeTypeInfo struct {
	FeeTypeID   int64
	FeeTypeName string
	Period      models.FeePeriod
}

// DetectFeeType resolves a fee type from an amount alone. Periods are
// searched annual first so that a longer period wins when amounts coincide,
// then integer multiples of a monthly rate are accepted as monthly payments.
func DetectFeeType(amount int64, rates []models.FeeRate) (FeeTypeInfo, bool) {
	if amount <= 0 || len(rates) == 0 {
		return FeeTypeInfo{}, false
	}

	if rate, ok := findExact(amount, rates); ok {
		return FeeTypeInfo{
			FeeTypeID:   rate.FeeTypeID,
			FeeTypeName: rate.FeeTypeName,
			Period:      rate.Period,
		}, true
	}

	if rate, _, ok := findMonthlyMultiple(amount, rates); ok {
		return FeeTypeInfo{
			FeeTypeID:   rate.FeeTypeID,
			FeeTypeName: rate.FeeTypeName,
			Period:      models.PeriodMonthly,
		}, true
	}

	return FeeTypeInfo{}, false
}
