package controllers

import (
	"net/http"

	"github.com/Dailong90/fanta-claus/api/models"
	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/leaderboard"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	playersStorage    storage.PlayerStorage
	teamsStorage      storage.TeamStorage
	giftsStorage      storage.GiftStorage
	categoriesStorage storage.GiftCategoryStorage
	votesStorage      storage.PackageVoteStorage
	settingsStorage   storage.GameSettingStorage
	sessions          *session.Manager
}

func NewLeaderboardController(
	playersStorage storage.PlayerStorage,
	teamsStorage storage.TeamStorage,
	giftsStorage storage.GiftStorage,
	categoriesStorage storage.GiftCategoryStorage,
	votesStorage storage.PackageVoteStorage,
	settingsStorage storage.GameSettingStorage,
	sessions *session.Manager,
) *LeaderboardController {
	return &LeaderboardController{
		playersStorage:    playersStorage,
		teamsStorage:      teamsStorage,
		giftsStorage:      giftsStorage,
		categoriesStorage: categoriesStorage,
		votesStorage:      votesStorage,
		settingsStorage:   settingsStorage,
		sessions:          sessions,
	}
}

func (c *LeaderboardController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/leaderboard", c.getLeaderboard)
}

// getLeaderboard godoc
// @Summary Compute the current leaderboard
// @Description Ranked team standings; hidden until published unless the caller is an admin
// @Tags leaderboard
// @Produce json
// @Success 200 {object} leaderboard.Result
// @Failure 500 {object} models.ErrorResponse
// @Router /api/leaderboard [get]
func (c *LeaderboardController) getLeaderboard(g *gin.Context) {
	ctx := g.Request.Context()

	// The route is reachable without a session: anonymous callers simply get
	// the unpublished (empty) board.
	isAdmin := false
	if token, err := g.Cookie(session.CookieName); err == nil && token != "" {
		if ownerID, err := c.sessions.ValidateToken(token); err == nil {
			player, err := c.playersStorage.Get(ctx, ownerID)
			if err != nil {
				logging.Log.Errorf("LEADERBOARD: admin check failed for %s: %v", ownerID, err)
			}
			isAdmin = player != nil && player.IsAdmin
		}
	}

	publishSetting, err := c.settingsStorage.Get(ctx, storage.SettingLeaderboardPublished)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load settings"})
		return
	}
	votePointsSetting, err := c.settingsStorage.Get(ctx, storage.SettingVotePoints)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load settings"})
		return
	}

	teams, err := c.teamsStorage.GetAll(ctx)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}
	players, err := c.playersStorage.GetAll(ctx)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load players"})
		return
	}
	gifts, err := c.giftsStorage.GetAll(ctx)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load gifts"})
		return
	}
	categories, err := c.categoriesStorage.GetAll(ctx)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load categories"})
		return
	}
	votes, err := c.votesStorage.GetAll(ctx)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load votes"})
		return
	}

	result := leaderboard.Compute(leaderboard.Snapshot{
		Teams:        transformTeams(teams),
		Players:      transformPlayers(players),
		Gifts:        transformGifts(gifts),
		Categories:   transformCategories(categories),
		Votes:        transformVotes(votes),
		VotePoints:   models.DecodeVotePoints(votePointsSetting),
		Published:    models.DecodePublished(publishSetting),
		AdminRequest: isAdmin,
	})

	g.JSON(http.StatusOK, result)
}

func transformTeams(teams []*storage.Team) []leaderboard.Team {
	out := make([]leaderboard.Team, 0, len(teams))
	for _, t := range teams {
		captainID := ""
		if t.CaptainID != nil {
			captainID = *t.CaptainID
		}
		out = append(out, leaderboard.Team{
			OwnerID:   t.OwnerID,
			Members:   t.Members,
			CaptainID: captainID,
		})
	}
	return out
}

func transformPlayers(players []*storage.Player) []leaderboard.Player {
	out := make([]leaderboard.Player, 0, len(players))
	for _, p := range players {
		out = append(out, leaderboard.Player{
			OwnerID: p.OwnerID,
			Name:    p.Name,
			IsAdmin: p.IsAdmin,
		})
	}
	return out
}

func transformGifts(gifts []*storage.Gift) []leaderboard.Gift {
	out := make([]leaderboard.Gift, 0, len(gifts))
	for _, gift := range gifts {
		receiverID := ""
		if gift.ReceiverOwnerID != nil {
			receiverID = *gift.ReceiverOwnerID
		}
		out = append(out, leaderboard.Gift{
			SantaOwnerID:    gift.SantaOwnerID,
			ReceiverOwnerID: receiverID,
			CategoryID:      gift.CategoryID,
			BonusPoints:     gift.BonusPoints,
		})
	}
	return out
}

func transformCategories(categories []*storage.GiftCategory) []leaderboard.Category {
	out := make([]leaderboard.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, leaderboard.Category{ID: c.ID, Points: c.Points})
	}
	return out
}

func transformVotes(votes []*storage.PackageVote) []leaderboard.Vote {
	out := make([]leaderboard.Vote, 0, len(votes))
	for _, v := range votes {
		out = append(out, leaderboard.Vote{
			VoterOwnerID:  v.VoterOwnerID,
			TargetOwnerID: v.TargetOwnerID,
			VoteType:      v.VoteType,
		})
	}
	return out
}
