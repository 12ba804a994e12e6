package controllers

import (
	"net/http"
	"time"

	"github.com/Dailong90/fanta-claus/api/models"
	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/api/transport"
	"github.com/Dailong90/fanta-claus/leaderboard"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/gin-gonic/gin"
)

type VotingController struct {
	votesStorage   storage.PackageVoteStorage
	playersStorage storage.PlayerStorage
	sessions       *session.Manager
}

func NewVotingController(votesStorage storage.PackageVoteStorage, playersStorage storage.PlayerStorage, sessions *session.Manager) *VotingController {
	return &VotingController{
		votesStorage:   votesStorage,
		playersStorage: playersStorage,
		sessions:       sessions,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/votes", transport.SessionAuthMiddleware(c.sessions), c.registerVote)
	group.GET("/votes", transport.SessionAuthMiddleware(c.sessions), c.getOwnVotes)
	group.GET("/awards", c.getAwards)
}

// registerVote godoc
// @Summary Cast or change a vote
// @Description Upserts the caller's vote for one category; re-voting replaces the previous choice
// @Tags voting
// @Accept json
// @Produce json
// @Param vote body models.RegisterVoteRequest true "Vote"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Self-vote, unknown type or missing target"
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/votes [post]
func (c *VotingController) registerVote(g *gin.Context) {
	voterID := g.GetString(transport.ContextOwnerID)

	var req models.RegisterVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if req.TargetOwnerID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "target_owner_id is required"})
		return
	}
	if req.TargetOwnerID == voterID {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "you cannot vote your own gift"})
		return
	}

	voteType, ok := leaderboard.NormalizeVoteType(req.VoteType)
	if !ok {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid vote type"})
		return
	}

	target, err := c.playersStorage.Get(g.Request.Context(), req.TargetOwnerID)
	if err != nil {
		logging.Log.Errorf("VOTING: failed to load target %s: %v", req.TargetOwnerID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify target"})
		return
	}
	if target == nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "unknown target player"})
		return
	}

	vote := &storage.PackageVote{
		VoterOwnerID:  voterID,
		VoteType:      string(voteType),
		TargetOwnerID: req.TargetOwnerID,
		Timestamp:     time.Now().UTC(),
	}
	if err := c.votesStorage.Put(g.Request.Context(), vote); err != nil {
		logging.Log.Errorf("VOTING: failed to save vote: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save vote"})
		return
	}

	logging.Log.Infof("VOTING: %s voted %s for %s", voterID, voteType, req.TargetOwnerID)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "vote registered"})
}

// getOwnVotes godoc
// @Summary List the caller's votes
// @Tags voting
// @Produce json
// @Success 200 {array} models.VoteResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/votes [get]
func (c *VotingController) getOwnVotes(g *gin.Context) {
	voterID := g.GetString(transport.ContextOwnerID)

	votes, err := c.votesStorage.GetByVoter(g.Request.Context(), voterID)
	if err != nil {
		logging.Log.Errorf("VOTING: failed to load votes for %s: %v", voterID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load votes"})
		return
	}

	responses := make([]models.VoteResponse, 0, len(votes))
	for _, v := range votes {
		responses = append(responses, models.TransformVoteFromStorage(v))
	}
	g.JSON(http.StatusOK, responses)
}

// getAwards godoc
// @Summary Vote award summary
// @Description Tied winner set per vote category by raw vote count, without points
// @Tags voting
// @Produce json
// @Success 200 {object} leaderboard.Winners
// @Failure 500 {object} models.ErrorResponse
// @Router /api/awards [get]
func (c *VotingController) getAwards(g *gin.Context) {
	votes, err := c.votesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("VOTING: failed to load votes: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load votes"})
		return
	}

	players, err := c.playersStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("VOTING: failed to load players: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load players"})
		return
	}

	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.OwnerID] = p.Name
	}

	g.JSON(http.StatusOK, leaderboard.CountWinners(transformVotes(votes), names))
}
