package leaderboard

import "sort"

// voteTally is the aggregated outcome of all cast votes. When voting is not
// revealed the winner set, bonuses and detail rows are all left empty so the
// votes cannot influence scores at all.
type voteTally struct {
	winners       Winners
	bonusByPlayer map[string]int
	details       map[VoteType][]VoteDetail
}

func tallyVotes(votes []Vote, points VotePoints, names map[string]string, reveal bool) voteTally {
	tally := voteTally{
		bonusByPlayer: make(map[string]int),
	}

	counts := map[VoteType]map[string]int{
		VoteBestWrapping:  {},
		VoteWorstWrapping: {},
		VoteMostFitting:   {},
	}

	if reveal {
		tally.winners = Winners{}
		tally.details = map[VoteType][]VoteDetail{}
		for _, t := range VoteTypes {
			tally.winners[t] = CategoryWinners{Winners: []VotingWinner{}}
			tally.details[t] = []VoteDetail{}
		}
	}

	for _, v := range votes {
		voteType, ok := NormalizeVoteType(v.VoteType)
		if !ok {
			// unknown variant, dropped from counts and details alike
			continue
		}

		counts[voteType][v.TargetOwnerID]++

		if reveal {
			tally.details[voteType] = append(tally.details[voteType], VoteDetail{
				VoterOwnerID:  v.VoterOwnerID,
				VoterName:     displayName(names, v.VoterOwnerID),
				TargetOwnerID: v.TargetOwnerID,
				TargetName:    displayName(names, v.TargetOwnerID),
				PointsApplied: points.For(voteType),
			})
		}
	}

	if !reveal {
		return tally
	}

	for _, t := range VoteTypes {
		winners := winnersForType(counts[t], points.For(t), names)
		for _, w := range winners {
			tally.bonusByPlayer[w.OwnerID] += w.PointsAwarded
		}
		tally.winners[t] = CategoryWinners{Winners: winners}
	}
	return tally
}

// winnersForType returns every target tied at the maximum vote count. Ties are
// not broken: each tied target receives the full points for the category.
func winnersForType(counts map[string]int, pointsAwarded int, names map[string]string) []VotingWinner {
	if len(counts) == 0 {
		return []VotingWinner{}
	}

	maxVotes := 0
	for _, n := range counts {
		if n > maxVotes {
			maxVotes = n
		}
	}

	winners := make([]VotingWinner, 0, 1)
	for targetID, n := range counts {
		if n == maxVotes {
			winners = append(winners, VotingWinner{
				OwnerID:       targetID,
				OwnerName:     displayName(names, targetID),
				Votes:         n,
				PointsAwarded: pointsAwarded,
			})
		}
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i].OwnerID < winners[j].OwnerID })
	return winners
}

// CountWinners is the award-board view of the tally: the tied winner set per
// category by raw vote count, with no points attached. Categories with no
// votes have no winners.
func CountWinners(votes []Vote, names map[string]string) Winners {
	tally := tallyVotes(votes, VotePoints{}, names, true)
	return tally.winners
}

func displayName(names map[string]string, ownerID string) string {
	if name, ok := names[ownerID]; ok && name != "" {
		return name
	}
	return ownerID
}
