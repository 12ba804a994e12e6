package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Dailong90/fanta-claus/api/models"
	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/api/transport"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/gin-gonic/gin"
)

type TeamController struct {
	teamsStorage    storage.TeamStorage
	playersStorage  storage.PlayerStorage
	settingsStorage storage.GameSettingStorage
	sessions        *session.Manager
}

func NewTeamController(teamsStorage storage.TeamStorage, playersStorage storage.PlayerStorage, settingsStorage storage.GameSettingStorage, sessions *session.Manager) *TeamController {
	return &TeamController{
		teamsStorage:    teamsStorage,
		playersStorage:  playersStorage,
		settingsStorage: settingsStorage,
		sessions:        sessions,
	}
}

func (c *TeamController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api", transport.SessionAuthMiddleware(c.sessions))

	group.GET("/team", c.getOwnTeam)
	group.PUT("/team", c.putOwnTeam)

	engine.GET("/api/admin/teams", transport.AdminAuthMiddleware(c.sessions, c.playersStorage), c.getAllTeams)
}

// getOwnTeam godoc
// @Summary Get the caller's team
// @Tags teams
// @Produce json
// @Success 200 {object} models.TeamResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "No team saved yet"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/team [get]
func (c *TeamController) getOwnTeam(g *gin.Context) {
	ownerID := g.GetString(transport.ContextOwnerID)

	team, err := c.teamsStorage.Get(g.Request.Context(), ownerID)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to load team for %s: %v", ownerID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load team"})
		return
	}
	if team == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "no team saved"})
		return
	}

	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// putOwnTeam godoc
// @Summary Save the caller's roster
// @Description Upserts the caller's team; rejected after the team deadline
// @Tags teams
// @Accept json
// @Produce json
// @Param team body models.TeamPutRequest true "Roster"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse "Wrong roster size, unknown member or captain outside roster"
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Deadline passed"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/team [put]
func (c *TeamController) putOwnTeam(g *gin.Context) {
	ownerID := g.GetString(transport.ContextOwnerID)

	var req models.TeamPutRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	deadlineSetting, err := c.settingsStorage.Get(g.Request.Context(), storage.SettingTeamLockDeadline)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load settings"})
		return
	}
	if models.TeamDeadlinePassed(deadlineSetting, time.Now().UTC()) {
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "team deadline has passed"})
		return
	}

	if len(req.Members) != models.RosterSize {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: fmt.Sprintf("a team needs exactly %d members", models.RosterSize)})
		return
	}

	seen := make(map[string]bool, len(req.Members))
	for _, memberID := range req.Members {
		if seen[memberID] {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "duplicate member: " + memberID})
			return
		}
		seen[memberID] = true

		player, err := c.playersStorage.Get(g.Request.Context(), memberID)
		if err != nil {
			logging.Log.Errorf("TEAM: failed to verify member %s: %v", memberID, err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify members"})
			return
		}
		if player == nil {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "unknown member: " + memberID})
			return
		}
	}

	if req.CaptainID != nil && !seen[*req.CaptainID] {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "captain must be one of the members"})
		return
	}

	team := &storage.Team{
		OwnerID:   ownerID,
		Members:   req.Members,
		CaptainID: req.CaptainID,
	}
	if err := c.teamsStorage.Put(g.Request.Context(), team); err != nil {
		logging.Log.Errorf("TEAM: failed to save team for %s: %v", ownerID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save team"})
		return
	}

	logging.Log.Infof("TEAM: saved roster for %s", ownerID)
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// getAllTeams godoc
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.TeamResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/teams [get]
func (c *TeamController) getAllTeams(g *gin.Context) {
	teams, err := c.teamsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("TEAM: failed to list teams: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}

	responses := make([]models.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, models.TransformTeamFromStorage(t))
	}
	g.JSON(http.StatusOK, responses)
}
