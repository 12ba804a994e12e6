// Package leaderboard computes the ranked fantasy standings from read-only
// snapshots of teams, players, gifts, categories, votes and settings. It
// performs no I/O and never fails: partial or inconsistent data degrades to
// documented defaults instead of errors.
package leaderboard

import "sort"

// visibility is the state of the publication gate.
type visibility int

const (
	// visibilityHidden returns an empty board: nothing is computed or leaked.
	visibilityHidden visibility = iota
	// visibilityScoresOnly would expose scores without vote influence. It is
	// unreachable while admins always reveal voting, but kept as a named
	// state so the policy lives in one place.
	visibilityScoresOnly
	// visibilityFull exposes scores, vote bonuses, winners and vote details.
	visibilityFull
)

func gate(published, adminRequest bool) visibility {
	if !published && !adminRequest {
		return visibilityHidden
	}
	if published || adminRequest {
		return visibilityFull
	}
	return visibilityScoresOnly
}

// Compute produces the leaderboard for one snapshot. Calling it twice with
// the same snapshot yields identical results.
func Compute(s Snapshot) Result {
	switch gate(s.Published, s.AdminRequest) {
	case visibilityHidden:
		return Result{Teams: []TeamStanding{}, IsPublished: false}
	case visibilityFull, visibilityScoresOnly:
	}
	reveal := gate(s.Published, s.AdminRequest) == visibilityFull

	names := make(map[string]string, len(s.Players))
	for _, p := range s.Players {
		names[p.OwnerID] = p.Name
	}

	scores := giftScores(s.Gifts, s.Categories)
	tally := tallyVotes(s.Votes, s.VotePoints, names, reveal)

	standings := make([]TeamStanding, 0, len(s.Teams))
	for _, team := range s.Teams {
		if len(team.Members) == 0 {
			continue
		}

		members := make([]MemberScore, 0, len(team.Members))
		total := 0
		for _, memberID := range team.Members {
			basePoints := scores[memberID] + tally.bonusByPlayer[memberID]

			isCaptain := team.CaptainID != "" && team.CaptainID == memberID
			points := basePoints
			if isCaptain {
				points = basePoints * CaptainMultiplier
			}
			total += points

			members = append(members, MemberScore{
				ID:        memberID,
				Name:      displayName(names, memberID),
				Points:    points,
				IsCaptain: isCaptain,
			})
		}

		standings = append(standings, TeamStanding{
			OwnerID:     team.OwnerID,
			OwnerName:   displayName(names, team.OwnerID),
			TotalPoints: total,
			Members:     members,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		return standings[i].OwnerName < standings[j].OwnerName
	})

	result := Result{
		Teams:       standings,
		IsPublished: s.Published,
	}
	if reveal {
		result.Voting = tally.winners
		result.VotingDetails = tally.details
	}
	return result
}
