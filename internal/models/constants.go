package models

// FeePeriod is the billing period of a fee rate.
type FeePeriod string

// Billing periods, ordered from longest to shortest coverage.
const (
	PeriodAnnual     FeePeriod = "ANNUAL"
	PeriodSemiAnnual FeePeriod = "SEMI_ANNUAL"
	PeriodQuarterly  FeePeriod = "QUARTERLY"
	PeriodMonthly    FeePeriod = "MONTHLY"
)

// DetectionOrder is the period priority used when an amount alone must be
// resolved to a fee type. Longer periods win when amounts coincide.
var DetectionOrder = []FeePeriod{
	PeriodAnnual,
	PeriodSemiAnnual,
	PeriodQuarterly,
	PeriodMonthly,
}

// Months returns the number of calendar months one payment of the period
// covers, or 0 for an unknown period.
func (p FeePeriod) Months() int {
	switch p {
	case PeriodAnnual:
		return 12
	case PeriodSemiAnnual:
		return 6
	case PeriodQuarterly:
		return 3
	case PeriodMonthly:
		return 1
	default:
		return 0
	}
}

// MatchType identifies which matcher strategy resolved a depositor name.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
	MatchCouple  MatchType = "couple"
	MatchSimilar MatchType = "similar"
	MatchNone    MatchType = "none"
)

// Confidence levels assigned per strategy. Exact identity is certain;
// honorific-stripping and couple aliasing encode naming conventions; fuzzy
// matching is a last-resort catch for typos.
const (
	ConfidenceExact   = 1.0
	ConfidenceCouple  = 0.95
	ConfidencePartial = 0.9
	ConfidenceSimilar = 0.7
)

// ReconStatus is the lifecycle state of a reconciliation record.
type ReconStatus string

const (
	StatusPending   ReconStatus = "pending"
	StatusMatched   ReconStatus = "matched"
	StatusConfirmed ReconStatus = "confirmed"
	StatusError     ReconStatus = "error"
	StatusSkipped   ReconStatus = "skipped"
)
