package leaderboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSnapshot() Snapshot {
	return Snapshot{
		Teams: []Team{
			{OwnerID: "p1", Members: []string{"p1", "p2"}, CaptainID: "p1"},
		},
		Players: []Player{
			{OwnerID: "p1", Name: "Andrea"},
			{OwnerID: "p2", Name: "Marina"},
		},
		Gifts: []Gift{
			{SantaOwnerID: "p1", CategoryID: "goliardico", BonusPoints: 0},
			{SantaOwnerID: "p2", CategoryID: "tech", BonusPoints: -2},
		},
		Categories: []Category{
			{ID: "goliardico", Points: 10},
			{ID: "tech", Points: 5},
		},
		Published: true,
	}
}

func TestHiddenBoardLeaksNothing(t *testing.T) {
	s := baseSnapshot()
	s.Published = false
	s.AdminRequest = false
	s.Votes = []Vote{{VoterOwnerID: "p2", TargetOwnerID: "p1", VoteType: "best_wrapping"}}
	s.VotePoints = VotePoints{BestWrapping: 100}

	result := Compute(s)

	assert.Empty(t, result.Teams)
	assert.False(t, result.IsPublished)
	assert.Nil(t, result.Voting)
	assert.Nil(t, result.VotingDetails)
}

func TestEndToEndScenario(t *testing.T) {
	result := Compute(baseSnapshot())

	require.Len(t, result.Teams, 1)
	team := result.Teams[0]
	assert.Equal(t, "p1", team.OwnerID)
	assert.Equal(t, "Andrea", team.OwnerName)
	assert.Equal(t, 23, team.TotalPoints)

	require.Len(t, team.Members, 2)
	assert.Equal(t, 20, team.Members[0].Points, "captain base 10 doubled")
	assert.True(t, team.Members[0].IsCaptain)
	assert.Equal(t, 3, team.Members[1].Points, "5 - 2 malus, no multiplier")
	assert.False(t, team.Members[1].IsCaptain)
}

func TestCaptainDoublingAppliesToMalus(t *testing.T) {
	s := Snapshot{
		Teams: []Team{
			{OwnerID: "p1", Members: []string{"p1"}, CaptainID: "p1"},
			{OwnerID: "p2", Members: []string{"p2"}},
		},
		Gifts: []Gift{
			{SantaOwnerID: "p1", CategoryID: "tazza", BonusPoints: 0},
			{SantaOwnerID: "p2", CategoryID: "tazza", BonusPoints: 0},
		},
		Categories: []Category{{ID: "tazza", Points: -4}},
		Published:  true,
	}

	result := Compute(s)

	require.Len(t, result.Teams, 2)
	// p2 sorts first: -4 beats -8
	assert.Equal(t, -4, result.Teams[0].TotalPoints)
	assert.Equal(t, -8, result.Teams[1].TotalPoints)
	assert.True(t, result.Teams[1].Members[0].IsCaptain)
}

func TestEmptyTeamsExcluded(t *testing.T) {
	s := baseSnapshot()
	s.Teams = append(s.Teams, Team{OwnerID: "p2", Members: nil})
	s.Teams = append(s.Teams, Team{OwnerID: "p3", Members: []string{}})

	result := Compute(s)

	require.Len(t, result.Teams, 1)
	assert.Equal(t, "p1", result.Teams[0].OwnerID)
}

func TestCaptainOutsideRosterIgnored(t *testing.T) {
	s := baseSnapshot()
	s.Teams[0].CaptainID = "p99"

	result := Compute(s)

	require.Len(t, result.Teams, 1)
	for _, m := range result.Teams[0].Members {
		assert.False(t, m.IsCaptain)
	}
	assert.Equal(t, 13, result.Teams[0].TotalPoints, "10 + 3, no doubling")
}

func TestUnknownCategoryScoresZero(t *testing.T) {
	s := baseSnapshot()
	s.Categories = []Category{{ID: "tech", Points: 5}} // goliardico deleted after assignment

	result := Compute(s)

	require.Len(t, result.Teams, 1)
	// p1: bonus 0 on a missing category, doubled -> 0; p2: 3
	assert.Equal(t, 3, result.Teams[0].TotalPoints)
}

func TestMissingNameFallsBackToID(t *testing.T) {
	s := baseSnapshot()
	s.Players = nil

	result := Compute(s)

	require.Len(t, result.Teams, 1)
	assert.Equal(t, "p1", result.Teams[0].OwnerName)
	assert.Equal(t, "p2", result.Teams[0].Members[1].Name)
}

func TestVoteBonusFlowsIntoScores(t *testing.T) {
	s := baseSnapshot()
	s.Votes = []Vote{
		{VoterOwnerID: "p2", TargetOwnerID: "p1", VoteType: "best_wrapping"},
		{VoterOwnerID: "p2", TargetOwnerID: "p1", VoteType: "most_fitting"},
	}
	s.VotePoints = VotePoints{BestWrapping: 5, MostFitting: 3}

	result := Compute(s)

	require.Len(t, result.Teams, 1)
	// p1 base 10 + 5 + 3 = 18, doubled as captain -> 36; p2 stays 3
	assert.Equal(t, 36, result.Teams[0].Members[0].Points)
	assert.Equal(t, 39, result.Teams[0].TotalPoints)

	require.NotNil(t, result.Voting)
	require.Len(t, result.Voting[VoteBestWrapping].Winners, 1)
	assert.Equal(t, 5, result.Voting[VoteBestWrapping].Winners[0].PointsAwarded)
	require.NotNil(t, result.VotingDetails)
	assert.Len(t, result.VotingDetails[VoteBestWrapping], 1)
	assert.Len(t, result.VotingDetails[VoteMostFitting], 1)
	assert.Empty(t, result.VotingDetails[VoteWorstWrapping])
}

func TestIncreasedVotePointsNeverLowerWinner(t *testing.T) {
	s := baseSnapshot()
	s.Votes = []Vote{{VoterOwnerID: "p2", TargetOwnerID: "p1", VoteType: "best_wrapping"}}

	s.VotePoints = VotePoints{BestWrapping: 1}
	before := Compute(s)
	s.VotePoints = VotePoints{BestWrapping: 4}
	after := Compute(s)

	require.Len(t, before.Teams, 1)
	require.Len(t, after.Teams, 1)
	assert.GreaterOrEqual(t, after.Teams[0].TotalPoints, before.Teams[0].TotalPoints)
}

func TestIdempotence(t *testing.T) {
	s := baseSnapshot()
	s.Votes = []Vote{
		{VoterOwnerID: "p2", TargetOwnerID: "p1", VoteType: "best_wrapping"},
		{VoterOwnerID: "p1", TargetOwnerID: "p2", VoteType: "worst_wrapping"},
	}
	s.VotePoints = VotePoints{BestWrapping: 2, WorstWrapping: -1}

	first, err := json.Marshal(Compute(s))
	require.NoError(t, err)
	second, err := json.Marshal(Compute(s))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRankingOrderAndTieBreak(t *testing.T) {
	s := Snapshot{
		Teams: []Team{
			{OwnerID: "p1", Members: []string{"p1"}},
			{OwnerID: "p2", Members: []string{"p2"}},
			{OwnerID: "p3", Members: []string{"p3"}},
		},
		Players: []Player{
			{OwnerID: "p1", Name: "Zeno"},
			{OwnerID: "p2", Name: "Anna"},
			{OwnerID: "p3", Name: "Mira"},
		},
		Gifts: []Gift{
			{SantaOwnerID: "p1", CategoryID: "c", BonusPoints: 0},
			{SantaOwnerID: "p2", CategoryID: "c", BonusPoints: 0},
			{SantaOwnerID: "p3", CategoryID: "c", BonusPoints: 5},
		},
		Categories: []Category{{ID: "c", Points: 10}},
		Published:  true,
	}

	result := Compute(s)

	require.Len(t, result.Teams, 3)
	assert.Equal(t, "Mira", result.Teams[0].OwnerName)
	// p1 and p2 tie at 10, broken by owner name
	assert.Equal(t, "Anna", result.Teams[1].OwnerName)
	assert.Equal(t, "Zeno", result.Teams[2].OwnerName)
}
