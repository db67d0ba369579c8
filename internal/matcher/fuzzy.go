package matcher

import (
	"clubdues/internal/models"
	"clubdues/internal/textutils"
)

// DefaultMaxDistance is the edit-distance bound of the fuzzy tier. One edit
// catches single-character typos without pulling in unrelated members.
const DefaultMaxDistance = 1

// FuzzyStrategy is the last-resort tier: it selects the member whose name
// has the globally smallest edit distance from the depositor name, accepting
// the match only when that minimum is within MaxDistance. Ties at the
// minimum resolve to the first member encountered.
type FuzzyStrategy struct {
	MaxDistance int
}

// Name identifies the strategy in logs.
func (s *FuzzyStrategy) Name() string { return "fuzzy" }

// Match implements Strategy.
func (s *FuzzyStrategy) Match(name string, dir Directory) (models.MatchResult, bool) {
	maxDistance := s.MaxDistance
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}

	best := models.Member{}
	bestDistance := -1
	for _, member := range dir.Members {
		memberName := member.TrimmedName()
		if memberName == "" {
			continue
		}
		distance := textutils.Levenshtein(name, memberName)
		if bestDistance == -1 || distance < bestDistance {
			best = member
			bestDistance = distance
		}
	}

	if bestDistance == -1 || bestDistance > maxDistance {
		return models.NoMatch(), false
	}

	return models.MatchResult{
		MemberID:   best.ID,
		MemberName: best.TrimmedName(),
		Type:       models.MatchSimilar,
		Confidence: models.ConfidenceSimilar,
	}, true
}
