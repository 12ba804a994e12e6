package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Dailong90/fanta-claus/leaderboard"
	"github.com/Dailong90/fanta-claus/storage"
)

type PublishRequest struct {
	Published *bool `json:"published"`
}

type PublishResponse struct {
	Published bool `json:"published"`
}

type VotePointsResponse struct {
	VotePoints leaderboard.VotePoints `json:"votePoints"`
}

type TeamDeadlineRequest struct {
	DeadlineISO *string `json:"deadlineIso"`
}

type TeamDeadlineResponse struct {
	DeadlineISO *string `json:"deadlineIso"`
}

type publishedDocument struct {
	Published *bool `json:"published"`
}

// DecodePublished reads the leaderboard_published setting. Historic rows may
// hold a bare bool, a "true"/"1" string, or {"published": bool}; anything
// else (including a missing row) means not published.
func DecodePublished(setting *storage.GameSetting) bool {
	if setting == nil || setting.Value == "" {
		return false
	}

	var doc publishedDocument
	if err := json.Unmarshal([]byte(setting.Value), &doc); err == nil && doc.Published != nil {
		return *doc.Published
	}

	var b bool
	if err := json.Unmarshal([]byte(setting.Value), &b); err == nil {
		return b
	}

	var s string
	if err := json.Unmarshal([]byte(setting.Value), &s); err == nil {
		lower := strings.ToLower(strings.TrimSpace(s))
		return lower == "true" || lower == "1"
	}
	return false
}

func EncodePublished(published bool) (*storage.GameSetting, error) {
	value, err := json.Marshal(publishedDocument{Published: &published})
	if err != nil {
		return nil, err
	}
	return &storage.GameSetting{Key: storage.SettingLeaderboardPublished, Value: string(value)}, nil
}

// DecodeVotePoints falls back to all-zero when the setting is missing or
// unreadable.
func DecodeVotePoints(setting *storage.GameSetting) leaderboard.VotePoints {
	if setting == nil || setting.Value == "" {
		return leaderboard.VotePoints{}
	}

	var points leaderboard.VotePoints
	if err := json.Unmarshal([]byte(setting.Value), &points); err != nil {
		return leaderboard.VotePoints{}
	}
	return points
}

func EncodeVotePoints(points leaderboard.VotePoints) (*storage.GameSetting, error) {
	value, err := json.Marshal(points)
	if err != nil {
		return nil, err
	}
	return &storage.GameSetting{Key: storage.SettingVotePoints, Value: string(value)}, nil
}

type deadlineDocument struct {
	DeadlineISO *string `json:"deadlineIso"`
}

// DecodeTeamDeadline returns the stored ISO deadline, or nil when unset.
func DecodeTeamDeadline(setting *storage.GameSetting) *string {
	if setting == nil || setting.Value == "" {
		return nil
	}

	var doc deadlineDocument
	if err := json.Unmarshal([]byte(setting.Value), &doc); err != nil {
		return nil
	}
	return doc.DeadlineISO
}

// TeamDeadlinePassed parses the stored deadline and compares it to now. An
// unparseable deadline never locks anyone out.
func TeamDeadlinePassed(setting *storage.GameSetting, now time.Time) bool {
	iso := DecodeTeamDeadline(setting)
	if iso == nil {
		return false
	}
	deadline, err := time.Parse(time.RFC3339, *iso)
	if err != nil {
		return false
	}
	return now.After(deadline)
}

func EncodeTeamDeadline(deadlineISO string) (*storage.GameSetting, error) {
	value, err := json.Marshal(deadlineDocument{DeadlineISO: &deadlineISO})
	if err != nil {
		return nil, err
	}
	return &storage.GameSetting{Key: storage.SettingTeamLockDeadline, Value: string(value)}, nil
}
