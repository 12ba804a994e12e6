package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVoteType(t *testing.T) {
	for raw, want := range map[string]VoteType{
		"best_wrapping":  VoteBestWrapping,
		"BEST_WRAPPING":  VoteBestWrapping,
		"bestWrapping":   VoteBestWrapping,
		"worstWrapping":  VoteWorstWrapping,
		"MOST_FITTING":   VoteMostFitting,
	} {
		got, ok := NormalizeVoteType(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "best wrapping", "Best_Wrapping", "funniest"} {
		_, ok := NormalizeVoteType(raw)
		assert.False(t, ok, raw)
	}
}

func TestTallyDiscardsUnknownTypes(t *testing.T) {
	votes := []Vote{
		{VoterOwnerID: "p1", TargetOwnerID: "p2", VoteType: "best_wrapping"},
		{VoterOwnerID: "p3", TargetOwnerID: "p2", VoteType: "funniest"},
		{VoterOwnerID: "p4", TargetOwnerID: "p2", VoteType: ""},
	}

	tally := tallyVotes(votes, VotePoints{BestWrapping: 2}, nil, true)

	require.Len(t, tally.winners[VoteBestWrapping].Winners, 1)
	assert.Equal(t, 1, tally.winners[VoteBestWrapping].Winners[0].Votes)
	assert.Len(t, tally.details[VoteBestWrapping], 1)
	assert.Empty(t, tally.details[VoteWorstWrapping])
}

func TestTiedWinnersAllRewarded(t *testing.T) {
	votes := []Vote{
		{VoterOwnerID: "p1", TargetOwnerID: "p3", VoteType: "best_wrapping"},
		{VoterOwnerID: "p2", TargetOwnerID: "p3", VoteType: "best_wrapping"},
		{VoterOwnerID: "p3", TargetOwnerID: "p4", VoteType: "best_wrapping"},
		{VoterOwnerID: "p5", TargetOwnerID: "p4", VoteType: "best_wrapping"},
		{VoterOwnerID: "p6", TargetOwnerID: "p5", VoteType: "best_wrapping"},
	}

	tally := tallyVotes(votes, VotePoints{BestWrapping: 7}, nil, true)

	winners := tally.winners[VoteBestWrapping].Winners
	require.Len(t, winners, 2)
	for _, w := range winners {
		assert.Equal(t, 2, w.Votes)
		assert.Equal(t, 7, w.PointsAwarded)
	}
	assert.Equal(t, 7, tally.bonusByPlayer["p3"])
	assert.Equal(t, 7, tally.bonusByPlayer["p4"])
	assert.Zero(t, tally.bonusByPlayer["p5"])
}

func TestMultiCategoryBonusesAccumulate(t *testing.T) {
	votes := []Vote{
		{VoterOwnerID: "p1", TargetOwnerID: "p2", VoteType: "best_wrapping"},
		{VoterOwnerID: "p1", TargetOwnerID: "p2", VoteType: "most_fitting"},
		{VoterOwnerID: "p1", TargetOwnerID: "p2", VoteType: "worst_wrapping"},
	}

	tally := tallyVotes(votes, VotePoints{BestWrapping: 5, WorstWrapping: -3, MostFitting: 2}, nil, true)

	assert.Equal(t, 4, tally.bonusByPlayer["p2"], "5 - 3 + 2 across categories")
}

func TestHiddenTallyHasNoEffect(t *testing.T) {
	votes := []Vote{
		{VoterOwnerID: "p1", TargetOwnerID: "p2", VoteType: "best_wrapping"},
	}

	tally := tallyVotes(votes, VotePoints{BestWrapping: 50}, nil, false)

	assert.Empty(t, tally.bonusByPlayer)
	assert.Nil(t, tally.winners)
	assert.Nil(t, tally.details)
}

func TestNoVotesNoWinners(t *testing.T) {
	tally := tallyVotes(nil, VotePoints{BestWrapping: 5}, nil, true)

	for _, voteType := range VoteTypes {
		assert.Empty(t, tally.winners[voteType].Winners)
	}
}

func TestCountWinnersResolvesNames(t *testing.T) {
	votes := []Vote{
		{VoterOwnerID: "p1", TargetOwnerID: "p2", VoteType: "best_wrapping"},
		{VoterOwnerID: "p3", TargetOwnerID: "p2", VoteType: "best_wrapping"},
	}
	names := map[string]string{"p2": "Marina"}

	winners := CountWinners(votes, names)

	require.Len(t, winners[VoteBestWrapping].Winners, 1)
	w := winners[VoteBestWrapping].Winners[0]
	assert.Equal(t, "Marina", w.OwnerName)
	assert.Equal(t, 2, w.Votes)
	assert.Zero(t, w.PointsAwarded)
}
