package storage

import "time"

type Player struct {
	OwnerID    string `dynamodbav:"PK"`
	Name       string `dynamodbav:"Name"`
	AccessCode string `dynamodbav:"AccessCode"`
	IsAdmin    bool   `dynamodbav:"IsAdmin"`
}

type Team struct {
	OwnerID   string   `dynamodbav:"PK"`
	Members   []string `dynamodbav:"Members"`
	CaptainID *string  `dynamodbav:"CaptainID"`
}

type Gift struct {
	SantaOwnerID    string  `dynamodbav:"PK"`
	ReceiverOwnerID *string `dynamodbav:"ReceiverOwnerID"`
	CategoryID      string  `dynamodbav:"CategoryID"`
	BonusPoints     int     `dynamodbav:"BonusPoints"`
}

type GiftCategory struct {
	ID     string `dynamodbav:"PK"`
	Code   string `dynamodbav:"Code"`
	Label  string `dynamodbav:"Label"`
	Points int    `dynamodbav:"Points"`
}

// PackageVote keys on voter and vote type, so re-voting the same category
// overwrites the previous choice.
type PackageVote struct {
	VoterOwnerID  string    `dynamodbav:"PK"`
	VoteType      string    `dynamodbav:"SK"`
	TargetOwnerID string    `dynamodbav:"TargetOwnerID"`
	Timestamp     time.Time `dynamodbav:"Timestamp"`
}

// GameSetting is a keyed JSON document (leaderboard_published, vote_points,
// team_lock_deadline).
type GameSetting struct {
	Key   string `dynamodbav:"PK"`
	Value string `dynamodbav:"Value"`
}
