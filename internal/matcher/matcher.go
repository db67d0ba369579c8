// Package matcher resolves free-text depositor names to club members using
// an ordered strategy cascade: exact name, honorific-stripped partial name,
// couple-group alias, then bounded edit-distance fuzzy matching. Tiers are
// tried in order and the first hit wins, so a certain match always outranks
// a heuristic one.
package matcher

import (
	"strings"

	"clubdues/internal/logging"
	"clubdues/internal/models"
)

// Directory bundles the read-only club data the cascade matches against.
type Directory struct {
	Members      []models.Member
	CoupleGroups []models.CoupleGroup
}

// Strategy is one tier of depositor resolution. Implementations are pure:
// they report a result and whether the tier settled the name. A settled
// non-match result stops the cascade, so a tier that detects ambiguity can
// prevent lower tiers from turning it into a guess.
type Strategy interface {
	// Match attempts to resolve the trimmed depositor name against the
	// directory. The boolean reports whether this strategy settled the name.
	Match(name string, dir Directory) (models.MatchResult, bool)

	// Name identifies the strategy in logs.
	Name() string
}

// Matcher runs the strategy cascade.
type Matcher struct {
	strategies []Strategy
	logger     logging.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithMaxDistance sets the edit-distance bound of the fuzzy tier.
func WithMaxDistance(d int) Option {
	return func(m *Matcher) {
		for _, s := range m.strategies {
			if fuzzy, ok := s.(*FuzzyStrategy); ok {
				fuzzy.MaxDistance = d
			}
		}
	}
}

// New creates a Matcher with the standard cascade. A nil logger falls back
// to the package default.
func New(logger logging.Logger, opts ...Option) *Matcher {
	if logger == nil {
		logger = logging.GetLogger()
	}
	m := &Matcher{
		strategies: []Strategy{
			&ExactStrategy{},
			&PartialStrategy{},
			&CoupleStrategy{},
			&FuzzyStrategy{MaxDistance: DefaultMaxDistance},
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match resolves a depositor name to a member. A blank or whitespace-only
// name is an immediate non-match; otherwise each tier is attempted in order
// until one fires.
func (m *Matcher) Match(depositorName string, dir Directory) models.MatchResult {
	name := strings.TrimSpace(depositorName)
	if name == "" {
		return models.NoMatch()
	}

	for _, strategy := range m.strategies {
		result, ok := strategy.Match(name, dir)
		if !ok {
			continue
		}
		if !result.Matched() {
			// The tier settled the name as unmatchable, e.g. an ambiguous
			// partial name. Lower tiers must not guess past it.
			m.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()},
				logging.Field{Key: logging.FieldDepositor, Value: name},
			).Debug("Depositor resolution stopped")
			return models.NoMatch()
		}
		m.logger.WithFields(
			logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()},
			logging.Field{Key: logging.FieldDepositor, Value: name},
			logging.Field{Key: logging.FieldMemberID, Value: result.MemberID},
			logging.Field{Key: logging.FieldConfidence, Value: result.Confidence},
		).Debug("Depositor resolved")
		return result
	}

	m.logger.WithField(logging.FieldDepositor, name).Debug("Depositor not resolved")
	return models.NoMatch()
}

// Match resolves a depositor name using a Matcher with default settings.
// Callers needing a custom logger or fuzzy bound should construct their own
// Matcher with New.
func Match(depositorName string, members []models.Member, coupleGroups []models.CoupleGroup) models.MatchResult {
	m := New(nil)
	return m.Match(depositorName, Directory{Members: members, CoupleGroups: coupleGroups})
}

// FindCoupleGroup returns the couple group containing the given member id.
func FindCoupleGroup(memberID int64, groups []models.CoupleGroup) (models.CoupleGroup, bool) {
	for _, group := range groups {
		for _, gm := range group.Members {
			if gm.ClubMemberID == memberID {
				return group, true
			}
		}
	}
	return models.CoupleGroup{}, false
}
