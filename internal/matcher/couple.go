package matcher

import "clubdues/internal/models"

// CoupleStrategy resolves deposits made under either spouse's name. The
// payment is attributed to the group's first listed member regardless of
// which spouse's name appears on the deposit, so a couple's dues always
// land on one ledger. The first matching group wins.
type CoupleStrategy struct{}

// Name identifies the strategy in logs.
func (s *CoupleStrategy) Name() string { return "couple" }

// Match implements Strategy.
func (s *CoupleStrategy) Match(name string, dir Directory) (models.MatchResult, bool) {
	for _, group := range dir.CoupleGroups {
		for _, gm := range group.Members {
			if gm.ClubMember.TrimmedName() != name {
				continue
			}
			primary, ok := group.PrimaryMember()
			if !ok {
				continue
			}
			return models.MatchResult{
				MemberID:   primary.ID,
				MemberName: primary.TrimmedName(),
				Type:       models.MatchCouple,
				Confidence: models.ConfidenceCouple,
			}, true
		}
	}
	return models.NoMatch(), false
}
