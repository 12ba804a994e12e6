package models

import (
	"time"

	"github.com/Dailong90/fanta-claus/storage"
)

type RegisterVoteRequest struct {
	TargetOwnerID string `json:"target_owner_id"`
	VoteType      string `json:"vote_type"`
}

type VoteResponse struct {
	VoterOwnerID  string    `json:"voter_owner_id"`
	TargetOwnerID string    `json:"target_owner_id"`
	VoteType      string    `json:"vote_type"`
	Timestamp     time.Time `json:"timestamp"`
}

func TransformVoteFromStorage(v *storage.PackageVote) VoteResponse {
	return VoteResponse{
		VoterOwnerID:  v.VoterOwnerID,
		TargetOwnerID: v.TargetOwnerID,
		VoteType:      v.VoteType,
		Timestamp:     v.Timestamp,
	}
}
