package models

import (
	"testing"
	"time"

	"github.com/Dailong90/fanta-claus/leaderboard"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingWith(value string) *storage.GameSetting {
	return &storage.GameSetting{Key: "test", Value: value}
}

func TestDecodePublished(t *testing.T) {
	cases := []struct {
		name     string
		setting  *storage.GameSetting
		expected bool
	}{
		{"missing row", nil, false},
		{"empty value", settingWith(""), false},
		{"document true", settingWith(`{"published":true}`), true},
		{"document false", settingWith(`{"published":false}`), false},
		{"bare bool", settingWith(`true`), true},
		{"string true", settingWith(`"true"`), true},
		{"string one", settingWith(`"1"`), true},
		{"string padded", settingWith(`" TRUE "`), true},
		{"string no", settingWith(`"no"`), false},
		{"garbage", settingWith(`{{{`), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DecodePublished(tc.setting))
		})
	}
}

func TestPublishedRoundTrip(t *testing.T) {
	setting, err := EncodePublished(true)
	require.NoError(t, err)
	assert.Equal(t, storage.SettingLeaderboardPublished, setting.Key)
	assert.True(t, DecodePublished(setting))
}

func TestVotePointsRoundTrip(t *testing.T) {
	points := leaderboard.VotePoints{BestWrapping: 5, WorstWrapping: -3, MostFitting: 2}

	setting, err := EncodeVotePoints(points)
	require.NoError(t, err)
	assert.Equal(t, storage.SettingVotePoints, setting.Key)
	assert.Equal(t, points, DecodeVotePoints(setting))
}

func TestDecodeVotePointsFallsBackToZero(t *testing.T) {
	assert.Equal(t, leaderboard.VotePoints{}, DecodeVotePoints(nil))
	assert.Equal(t, leaderboard.VotePoints{}, DecodeVotePoints(settingWith("not json")))
}

func TestTeamDeadlinePassed(t *testing.T) {
	now := time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC)

	t.Run("no deadline never locks", func(t *testing.T) {
		assert.False(t, TeamDeadlinePassed(nil, now))
	})

	t.Run("future deadline does not lock", func(t *testing.T) {
		setting, err := EncodeTeamDeadline("2025-12-24T18:00:00Z")
		require.NoError(t, err)
		assert.False(t, TeamDeadlinePassed(setting, now))
	})

	t.Run("past deadline locks", func(t *testing.T) {
		setting, err := EncodeTeamDeadline("2025-12-19T18:00:00Z")
		require.NoError(t, err)
		assert.True(t, TeamDeadlinePassed(setting, now))
	})

	t.Run("unparseable deadline never locks", func(t *testing.T) {
		assert.False(t, TeamDeadlinePassed(settingWith(`{"deadlineIso":"tomorrow"}`), now))
	})
}
