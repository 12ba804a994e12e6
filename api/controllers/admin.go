package controllers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/Dailong90/fanta-claus/api/models"
	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/api/transport"
	"github.com/Dailong90/fanta-claus/leaderboard"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type AdminController struct {
	playersStorage    storage.PlayerStorage
	giftsStorage      storage.GiftStorage
	categoriesStorage storage.GiftCategoryStorage
	teamsStorage      storage.TeamStorage
	votesStorage      storage.PackageVoteStorage
	settingsStorage   storage.GameSettingStorage
	sessions          *session.Manager
}

func NewAdminController(
	playersStorage storage.PlayerStorage,
	giftsStorage storage.GiftStorage,
	categoriesStorage storage.GiftCategoryStorage,
	teamsStorage storage.TeamStorage,
	votesStorage storage.PackageVoteStorage,
	settingsStorage storage.GameSettingStorage,
	sessions *session.Manager,
) *AdminController {
	return &AdminController{
		playersStorage:    playersStorage,
		giftsStorage:      giftsStorage,
		categoriesStorage: categoriesStorage,
		teamsStorage:      teamsStorage,
		votesStorage:      votesStorage,
		settingsStorage:   settingsStorage,
		sessions:          sessions,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware(c.sessions, c.playersStorage))

	group.GET("/base-data", c.getBaseData)
	group.GET("/gifts", c.listGifts)
	group.POST("/gifts", c.putGift)
	group.GET("/vote-points", c.getVotePoints)
	group.POST("/vote-points", c.setVotePoints)
	group.GET("/leaderboard-publish", c.getPublished)
	group.POST("/leaderboard-publish", c.setPublished)
	group.GET("/team-deadline", c.getTeamDeadline)
	group.POST("/team-deadline", c.setTeamDeadline)
	group.POST("/reset-game", c.resetGame)
	group.GET("/players", c.listPlayers)
	group.POST("/players", c.createPlayer)
}

// @Summary Base data for the admin screen
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/base-data [get]
func (c *AdminController) getBaseData(g *gin.Context) {
	ownerID := g.GetString(transport.ContextOwnerID)

	me, err := c.playersStorage.Get(g.Request.Context(), ownerID)
	if err != nil || me == nil {
		logging.Log.Errorf("ADMIN: failed to load current admin %s: %v", ownerID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load current admin"})
		return
	}

	players, err := c.playersStorage.GetAll(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load players"})
		return
	}
	sort.SliceStable(players, func(i, j int) bool { return players[i].Name < players[j].Name })

	categories, err := c.categoriesStorage.GetAll(g.Request.Context())
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load categories"})
		return
	}
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Points > categories[j].Points })

	playerResponses := make([]models.PlayerResponse, 0, len(players))
	for _, p := range players {
		playerResponses = append(playerResponses, models.TransformPlayerFromStorage(p))
	}
	categoryResponses := make([]models.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		categoryResponses = append(categoryResponses, models.TransformCategoryFromStorage(cat))
	}

	adminName := me.Name
	if adminName == "" {
		adminName = me.OwnerID
	}

	g.JSON(http.StatusOK, gin.H{
		"currentAdminName": adminName,
		"players":          playerResponses,
		"categories":       categoryResponses,
	})
}

// @Summary List gift assignments
// @Tags admin
// @Produce json
// @Success 200 {array} models.GiftResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/gifts [get]
func (c *AdminController) listGifts(g *gin.Context) {
	gifts, err := c.giftsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list gifts: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load gifts"})
		return
	}

	responses := make([]models.GiftResponse, 0, len(gifts))
	for _, gift := range gifts {
		responses = append(responses, models.TransformGiftFromStorage(gift))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Assign a gift category and bonus to a santa
// @Description Upserts the single gift record of a santa
// @Tags admin
// @Accept json
// @Produce json
// @Param gift body models.GiftPutRequest true "Gift assignment"
// @Success 200 {object} models.GiftResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/gifts [post]
func (c *AdminController) putGift(g *gin.Context) {
	var req models.GiftPutRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	req.SantaOwnerID = strings.TrimSpace(req.SantaOwnerID)
	req.CategoryID = strings.TrimSpace(req.CategoryID)
	if req.SantaOwnerID == "" || req.CategoryID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "santa_owner_id and category_id are required"})
		return
	}

	santa, err := c.playersStorage.Get(g.Request.Context(), req.SantaOwnerID)
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not verify santa"})
		return
	}
	if santa == nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown santa"})
		return
	}

	category, err := c.categoriesStorage.Get(g.Request.Context(), req.CategoryID)
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not verify category"})
		return
	}
	if category == nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown category"})
		return
	}

	bonus := 0
	if req.BonusPoints != nil {
		bonus = *req.BonusPoints
	}

	var receiver *string
	if req.ReceiverOwnerID != nil && strings.TrimSpace(*req.ReceiverOwnerID) != "" {
		trimmed := strings.TrimSpace(*req.ReceiverOwnerID)
		receiver = &trimmed
	}

	gift := &storage.Gift{
		SantaOwnerID:    req.SantaOwnerID,
		ReceiverOwnerID: receiver,
		CategoryID:      req.CategoryID,
		BonusPoints:     bonus,
	}
	if err := c.giftsStorage.Put(g.Request.Context(), gift); err != nil {
		logging.Log.Errorf("ADMIN: failed to save gift for %s: %v", req.SantaOwnerID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save gift"})
		return
	}

	logging.Log.Infof("ADMIN: assigned category %s to santa %s (bonus %d)", req.CategoryID, req.SantaOwnerID, bonus)
	g.JSON(http.StatusOK, models.TransformGiftFromStorage(gift))
}

// @Summary Get the votes-to-points configuration
// @Tags admin
// @Produce json
// @Success 200 {object} models.VotePointsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/admin/vote-points [get]
func (c *AdminController) getVotePoints(g *gin.Context) {
	setting, err := c.settingsStorage.Get(g.Request.Context(), storage.SettingVotePoints)
	if err != nil {
		// default rather than fail, the admin screen can still render
		logging.Log.Errorf("ADMIN: failed to read vote points: %v", err)
		g.JSON(http.StatusOK, models.VotePointsResponse{VotePoints: leaderboard.VotePoints{}})
		return
	}
	g.JSON(http.StatusOK, models.VotePointsResponse{VotePoints: models.DecodeVotePoints(setting)})
}

// @Summary Set the votes-to-points configuration
// @Tags admin
// @Accept json
// @Produce json
// @Param points body leaderboard.VotePoints true "Points per vote category"
// @Success 200 {object} models.VotePointsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/vote-points [post]
func (c *AdminController) setVotePoints(g *gin.Context) {
	var points leaderboard.VotePoints
	if err := g.ShouldBindJSON(&points); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	setting, err := models.EncodeVotePoints(points)
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not encode vote points"})
		return
	}
	if err := c.settingsStorage.Put(g.Request.Context(), setting); err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save vote points"})
		return
	}

	logging.Log.Infof("ADMIN: updated vote points: %+v", points)
	g.JSON(http.StatusOK, models.VotePointsResponse{VotePoints: points})
}

// @Summary Get the leaderboard publication flag
// @Tags admin
// @Produce json
// @Success 200 {object} models.PublishResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/leaderboard-publish [get]
func (c *AdminController) getPublished(g *gin.Context) {
	setting, err := c.settingsStorage.Get(g.Request.Context(), storage.SettingLeaderboardPublished)
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not read publication state"})
		return
	}
	g.JSON(http.StatusOK, models.PublishResponse{Published: models.DecodePublished(setting)})
}

// @Summary Publish or hide the leaderboard
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.PublishRequest true "Publish flag"
// @Success 200 {object} models.PublishResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/leaderboard-publish [post]
func (c *AdminController) setPublished(g *gin.Context) {
	var req models.PublishRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Published == nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "field 'published' missing or invalid"})
		return
	}

	setting, err := models.EncodePublished(*req.Published)
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not encode publication state"})
		return
	}
	if err := c.settingsStorage.Put(g.Request.Context(), setting); err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save publication state"})
		return
	}

	logging.Log.Infof("ADMIN: leaderboard published=%t", *req.Published)
	g.JSON(http.StatusOK, models.PublishResponse{Published: *req.Published})
}

// @Summary Get the team lock deadline
// @Tags admin
// @Produce json
// @Success 200 {object} models.TeamDeadlineResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/team-deadline [get]
func (c *AdminController) getTeamDeadline(g *gin.Context) {
	setting, err := c.settingsStorage.Get(g.Request.Context(), storage.SettingTeamLockDeadline)
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not read team deadline"})
		return
	}
	g.JSON(http.StatusOK, models.TeamDeadlineResponse{DeadlineISO: models.DecodeTeamDeadline(setting)})
}

// @Summary Set or clear the team lock deadline
// @Description A null deadline removes the lock
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.TeamDeadlineRequest true "Deadline"
// @Success 200 {object} models.TeamDeadlineResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/team-deadline [post]
func (c *AdminController) setTeamDeadline(g *gin.Context) {
	var req models.TeamDeadlineRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if req.DeadlineISO == nil || *req.DeadlineISO == "" {
		if err := c.settingsStorage.Delete(g.Request.Context(), storage.SettingTeamLockDeadline); err != nil {
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not clear team deadline"})
			return
		}
		g.JSON(http.StatusOK, models.TeamDeadlineResponse{DeadlineISO: nil})
		return
	}

	if _, err := time.Parse(time.RFC3339, *req.DeadlineISO); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "deadlineIso must be RFC3339"})
		return
	}

	setting, err := models.EncodeTeamDeadline(*req.DeadlineISO)
	if err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not encode team deadline"})
		return
	}
	if err := c.settingsStorage.Put(g.Request.Context(), setting); err != nil {
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save team deadline"})
		return
	}

	logging.Log.Infof("ADMIN: team deadline set to %s", *req.DeadlineISO)
	g.JSON(http.StatusOK, models.TeamDeadlineResponse{DeadlineISO: req.DeadlineISO})
}

// @Summary Reset the game
// @Description Deletes all teams and all votes; players, gifts, categories and settings survive
// @Tags admin
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/reset-game [post]
func (c *AdminController) resetGame(g *gin.Context) {
	if err := c.teamsStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to wipe teams: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not wipe teams"})
		return
	}
	if err := c.votesStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to wipe votes: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not wipe votes"})
		return
	}

	logging.Log.Info("ADMIN: game reset, teams and votes wiped")
	g.JSON(http.StatusOK, models.MessageResponse{Message: "reset complete: teams and votes wiped"})
}

// @Summary List players with their access codes
// @Tags admin
// @Produce json
// @Success 200 {array} models.PlayerAdminResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/players [get]
func (c *AdminController) listPlayers(g *gin.Context) {
	players, err := c.playersStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list players: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load players"})
		return
	}
	sort.SliceStable(players, func(i, j int) bool { return players[i].Name < players[j].Name })

	responses := make([]models.PlayerAdminResponse, 0, len(players))
	for _, p := range players {
		responses = append(responses, models.TransformPlayerForAdmin(p))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Create a player with a generated access code
// @Tags admin
// @Accept json
// @Produce json
// @Param player body models.PlayerCreateRequest true "Player"
// @Success 200 {object} models.PlayerAdminResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/players [post]
func (c *AdminController) createPlayer(g *gin.Context) {
	var req models.PlayerCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.OwnerID == "" || req.Name == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "owner_id and name are required"})
		return
	}

	player := &storage.Player{
		OwnerID:    req.OwnerID,
		Name:       req.Name,
		AccessCode: c.generateAccessCode(),
		IsAdmin:    req.IsAdmin,
	}
	if err := c.playersStorage.Put(g.Request.Context(), player); err != nil {
		logging.Log.Errorf("ADMIN: failed to create player %s: %v", req.OwnerID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not create player"})
		return
	}

	logging.Log.Infof("ADMIN: created player %s", player.OwnerID)
	g.JSON(http.StatusOK, models.TransformPlayerForAdmin(player))
}

func (c *AdminController) generateAccessCode() string {
	code, err := gonanoid.Generate(models.Alphabet, 5)
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to generate access code: %v", err)
		return "ERROR"
	}
	return code
}
