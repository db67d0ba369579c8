package matcher

import "clubdues/internal/models"

// PartialStrategy handles the East-Asian convention of omitting the family
// name character: a 2-character depositor name is matched against the last
// two characters of 3-character member names. The tier only matches when
// exactly one member qualifies; with two or more candidates an arbitrary
// pick would misattribute the payment, so ambiguity settles the name as a
// non-match and stops the cascade before the fuzzy tier can guess.
type PartialStrategy struct{}

// Name identifies the strategy in logs.
func (s *PartialStrategy) Name() string { return "partial" }

// Match implements Strategy.
func (s *PartialStrategy) Match(name string, dir Directory) (models.MatchResult, bool) {
	given := []rune(name)
	if len(given) != 2 {
		return models.NoMatch(), false
	}

	var candidate models.Member
	candidates := 0
	for _, member := range dir.Members {
		full := []rune(member.TrimmedName())
		if len(full) != 3 {
			continue
		}
		if full[1] == given[0] && full[2] == given[1] {
			candidate = member
			candidates++
		}
	}

	if candidates == 0 {
		return models.NoMatch(), false
	}
	if candidates > 1 {
		return models.NoMatch(), true
	}

	return models.MatchResult{
		MemberID:   candidate.ID,
		MemberName: candidate.TrimmedName(),
		Type:       models.MatchPartial,
		Confidence: models.ConfidencePartial,
	}, true
}
