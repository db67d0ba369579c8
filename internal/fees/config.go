package fees

import "clubdues/internal/models"

// Fee type ids assigned to rates synthesized from the legacy configuration
// shape.
const (
	legacyRegularFeeTypeID = 1
	legacyCoupleFeeTypeID  = 2
)

// Config is the configuration-boundary shape for a club's fees. Clubs either
// carry a full rate table or the older {regular, couple} pair; the two are
// mutually exclusive in practice and the rate table wins when both appear.
type Config struct {
	FeeRates      []models.FeeRate `yaml:"fee_rates"`
	RegularAmount int64            `yaml:"regular_amount"`
	CoupleAmount  int64            `yaml:"couple_amount"`
}

// Normalize converts the configuration to the rich rate-table shape. The
// validator and detector only ever see []FeeRate; legacy branching stops at
// this boundary.
func (c Config) Normalize() []models.FeeRate {
	if len(c.FeeRates) > 0 {
		return c.FeeRates
	}
	return NormalizeLegacy(c.RegularAmount, c.CoupleAmount)
}

// NormalizeLegacy converts the legacy {regularAmount, coupleAmount} pair to
// monthly fee rates. Non-positive amounts are skipped.
func NormalizeLegacy(regular, couple int64) []models.FeeRate {
	var rates []models.FeeRate
	if regular > 0 {
		rates = append(rates, models.FeeRate{
			FeeTypeID:   legacyRegularFeeTypeID,
			FeeTypeName: "regular",
			Period:      models.PeriodMonthly,
			Amount:      regular,
			MonthCount:  1,
		})
	}
	if couple > 0 {
		rates = append(rates, models.FeeRate{
			FeeTypeID:   legacyCoupleFeeTypeID,
			FeeTypeName: "couple",
			Period:      models.PeriodMonthly,
			Amount:      couple,
			MonthCount:  1,
		})
	}
	return rates
}
