package matcher

import "clubdues/internal/models"

// ExactStrategy matches the trimmed depositor name against member names
// character for character. The first member with an equal name wins; the
// directory does not forbid duplicate names, so ordering is load-bearing.
type ExactStrategy struct{}

// Name identifies the strategy in logs.
func (s *ExactStrategy) Name() string { return "exact" }

// Match implements Strategy.
func (s *ExactStrategy) Match(name string, dir Directory) (models.MatchResult, bool) {
	for _, member := range dir.Members {
		memberName := member.TrimmedName()
		if memberName == "" {
			continue
		}
		if memberName == name {
			return models.MatchResult{
				MemberID:   member.ID,
				MemberName: memberName,
				Type:       models.MatchExact,
				Confidence: models.ConfidenceExact,
			}, true
		}
	}
	return models.NoMatch(), false
}
