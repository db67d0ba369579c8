package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubdues/internal/logging"
	"clubdues/internal/models"
)

func members(names ...string) []models.Member {
	out := make([]models.Member, 0, len(names))
	for i, name := range names {
		out = append(out, models.Member{ID: int64(i + 1), Name: name})
	}
	return out
}

func TestMatchBlankName(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수")}

	for _, name := range []string{"", "   ", "\t"} {
		result := m.Match(name, dir)
		assert.Equal(t, models.MatchNone, result.Type)
		assert.Zero(t, result.MemberID)
		assert.Zero(t, result.Confidence)
	}
}

func TestMatchExact(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김영희", "김철수")}

	result := m.Match("김철수", dir)
	assert.Equal(t, models.MatchExact, result.Type)
	assert.Equal(t, int64(2), result.MemberID)
	assert.Equal(t, "김철수", result.MemberName)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestMatchExactTrimsNames(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: []models.Member{{ID: 5, Name: " 김철수 "}}}

	result := m.Match("  김철수", dir)
	assert.Equal(t, models.MatchExact, result.Type)
	assert.Equal(t, int64(5), result.MemberID)
}

func TestMatchExactOutranksFuzzy(t *testing.T) {
	// 이철수 is distance 1 from 김철수, but the exact tier runs first.
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("이철수", "김철수")}

	result := m.Match("김철수", dir)
	assert.Equal(t, models.MatchExact, result.Type)
	assert.Equal(t, "김철수", result.MemberName)
}

func TestMatchExactDuplicateNamesFirstWins(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: []models.Member{
		{ID: 7, Name: "김철수"},
		{ID: 8, Name: "김철수"},
	}}

	result := m.Match("김철수", dir)
	assert.Equal(t, int64(7), result.MemberID)
}

func TestMatchPartialSingleCandidate(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수")}

	result := m.Match("철수", dir)
	assert.Equal(t, models.MatchPartial, result.Type)
	assert.Equal(t, int64(1), result.MemberID)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestMatchPartialAmbiguousIsNoMatch(t *testing.T) {
	// Two 3-character members end in 철수; an arbitrary pick would
	// misattribute the payment.
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수", "이철수")}

	result := m.Match("철수", dir)
	assert.Equal(t, models.MatchNone, result.Type)
	assert.Zero(t, result.MemberID)
	assert.Zero(t, result.Confidence)
}

func TestMatchPartialAmbiguityStopsCascade(t *testing.T) {
	// All three members end in 철수 and all are within fuzzy distance 1 of
	// the depositor name. The partial tier's ambiguity must settle the name
	// as a non-match instead of letting the fuzzy tier pick one.
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수", "이철수", "박철수")}

	result := m.Match("철수", dir)
	assert.Equal(t, models.MatchNone, result.Type)
	assert.Zero(t, result.MemberID)
	assert.Zero(t, result.Confidence)
}

func TestMatchPartialOnlyTwoCharacterInput(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수")}

	// Three characters that are not an exact member name skip the partial
	// tier entirely.
	result := m.Match("박철수", dir)
	assert.NotEqual(t, models.MatchPartial, result.Type)
}

func TestMatchCoupleAttributesToPrimary(t *testing.T) {
	m := New(&logging.MockLogger{})
	group := models.CoupleGroup{
		ID: 1,
		Members: []models.CoupleGroupMember{
			{ClubMemberID: 10, ClubMember: models.Member{ID: 10, Name: "김영희"}},
			{ClubMemberID: 11, ClubMember: models.Member{ID: 11, Name: "박민수"}},
		},
	}
	dir := Directory{CoupleGroups: []models.CoupleGroup{group}}

	// A deposit under the second spouse's name lands on the first listed
	// member.
	result := m.Match("박민수", dir)
	assert.Equal(t, models.MatchCouple, result.Type)
	assert.Equal(t, int64(10), result.MemberID)
	assert.Equal(t, "김영희", result.MemberName)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestMatchFuzzyWithinDistance(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수")}

	// One deletion away.
	result := m.Match("김수", dir)
	assert.Equal(t, models.MatchSimilar, result.Type)
	assert.Equal(t, int64(1), result.MemberID)
	assert.Equal(t, 0.7, result.Confidence)
}

func TestMatchFuzzyBeyondDistanceIsNoMatch(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수")}

	// 박영수 is two edits from 김철수.
	result := m.Match("박영수", dir)
	assert.Equal(t, models.MatchNone, result.Type)
}

func TestMatchFuzzyTieFirstWins(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수", "박철수")}

	// 최철수 is distance 1 from both; iteration order breaks the tie.
	result := m.Match("최철수", dir)
	assert.Equal(t, models.MatchSimilar, result.Type)
	assert.Equal(t, int64(1), result.MemberID)
}

func TestMatchFuzzyCustomDistance(t *testing.T) {
	m := New(&logging.MockLogger{}, WithMaxDistance(2))
	dir := Directory{Members: members("김철수")}

	result := m.Match("박영수", dir)
	assert.Equal(t, models.MatchSimilar, result.Type)
}

func TestMatchSkipsEmptyMemberNames(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: []models.Member{{ID: 1, Name: ""}, {ID: 2, Name: "김철수"}}}

	result := m.Match("김철수", dir)
	assert.Equal(t, int64(2), result.MemberID)

	// An empty member name must never fuzzy-match a short depositor name.
	result = m.Match("수", dir)
	assert.Equal(t, models.MatchNone, result.Type)
}

func TestMatchIdempotent(t *testing.T) {
	m := New(&logging.MockLogger{})
	dir := Directory{Members: members("김철수", "이영희")}

	first := m.Match("김철수", dir)
	second := m.Match("김철수", dir)
	assert.Equal(t, first, second)
}

func TestPackageLevelMatch(t *testing.T) {
	result := Match("김철수", members("김철수"), nil)
	assert.Equal(t, models.MatchExact, result.Type)
}

func TestFindCoupleGroup(t *testing.T) {
	groups := []models.CoupleGroup{
		{
			ID: 1,
			Members: []models.CoupleGroupMember{
				{ClubMemberID: 10, ClubMember: models.Member{ID: 10, Name: "김영희"}},
				{ClubMemberID: 11, ClubMember: models.Member{ID: 11, Name: "박민수"}},
			},
		},
	}

	group, ok := FindCoupleGroup(11, groups)
	assert.True(t, ok)
	assert.Equal(t, int64(1), group.ID)

	_, ok = FindCoupleGroup(99, groups)
	assert.False(t, ok)
}
