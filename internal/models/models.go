// Package models defines the shared data structures for the deposit
// reconciliation engine: bank deposit rows, club members, fee rates and the
// result types produced by the matcher, validator and orchestrator.
package models

import (
	"strings"
	"time"
)

// DepositRow is a single normalized row from a bank deposit export.
// Rows are ephemeral: produced by the ingestor, consumed once by the
// reconciliation engine.
type DepositRow struct {
	TransactionDate time.Time
	DepositorName   string
	Amount          int64 // whole currency units, always > 0 after ingestion
	Memo            string
}

// FeeRate is one configured membership fee rate for a club.
// MonthCount is the number of calendar months one payment covers.
type FeeRate struct {
	FeeTypeID   int64     `yaml:"fee_type_id"`
	FeeTypeName string    `yaml:"fee_type_name"`
	Period      FeePeriod `yaml:"period"`
	Amount      int64     `yaml:"amount"`
	MonthCount  int       `yaml:"month_count"`
}

// Member is a club member as supplied by the member directory.
// Members with an empty name are unmatchable by any strategy.
type Member struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// TrimmedName returns the member name with surrounding whitespace removed.
func (m Member) TrimmedName() string {
	return strings.TrimSpace(m.Name)
}

// CoupleGroupMember links a member into a couple group.
type CoupleGroupMember struct {
	ClubMemberID int64  `yaml:"club_member_id"`
	ClubMember   Member `yaml:"club_member"`
}

// CoupleGroup represents a married couple who may pay dues jointly.
// A deposit naming either spouse is attributed to the first listed member.
type CoupleGroup struct {
	ID      int64               `yaml:"id"`
	Members []CoupleGroupMember `yaml:"members"`
}

// PrimaryMember returns the group's first listed member, the attributed
// payer for any deposit naming either spouse.
func (g CoupleGroup) PrimaryMember() (Member, bool) {
	if len(g.Members) == 0 {
		return Member{}, false
	}
	return g.Members[0].ClubMember, true
}

// MatchResult is the outcome of resolving a depositor name to a member.
// Invariant: Type == MatchNone iff MemberID == 0 iff Confidence == 0.
type MatchResult struct {
	MemberID   int64
	MemberName string
	Type       MatchType
	Confidence float64
}

// Matched reports whether the result identifies a member.
func (r MatchResult) Matched() bool {
	return r.Type != MatchNone
}

// NoMatch is the canonical non-match result.
func NoMatch() MatchResult {
	return MatchResult{Type: MatchNone, Confidence: 0}
}

// AmountValidation is the outcome of checking a deposited amount against a
// club's fee rates.
// Invariant: Valid implies MonthCount >= 1 and Reason empty; !Valid implies
// MonthCount == 0 and Reason non-empty.
type AmountValidation struct {
	Valid       bool
	FeeTypeID   int64
	FeeTypeName string
	Period      FeePeriod
	MonthCount  int
	Reason      string
}

// ReconRecord is the per-deposit output of a reconciliation run, handed to
// downstream persistence or review UIs.
type ReconRecord struct {
	ID              string
	Row             DepositRow
	Match           MatchResult
	Validation      AmountValidation
	SuggestedMonths []int
	Status          ReconStatus
	Note            string
}
