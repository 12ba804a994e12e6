package models

import "github.com/Dailong90/fanta-claus/storage"

// RosterSize is the required number of members in a saved team.
const RosterSize = 7

type TeamPutRequest struct {
	Members   []string `json:"members"`
	CaptainID *string  `json:"captainId"`
}

type TeamResponse struct {
	OwnerID   string   `json:"ownerId"`
	Members   []string `json:"members"`
	CaptainID *string  `json:"captainId"`
}

func TransformTeamFromStorage(t *storage.Team) TeamResponse {
	members := t.Members
	if members == nil {
		members = []string{}
	}
	return TeamResponse{
		OwnerID:   t.OwnerID,
		Members:   members,
		CaptainID: t.CaptainID,
	}
}
