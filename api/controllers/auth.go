package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/Dailong90/fanta-claus/api/models"
	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/api/transport"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	playersStorage storage.PlayerStorage
	sessions       *session.Manager
}

func NewAuthController(playersStorage storage.PlayerStorage, sessions *session.Manager) *AuthController {
	return &AuthController{
		playersStorage: playersStorage,
		sessions:       sessions,
	}
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/login", c.login)
	group.POST("/logout", c.logout)
	group.GET("/me", transport.SessionAuthMiddleware(c.sessions), c.me)
}

// login godoc
// @Summary Log in with a personal access code
// @Description Exchanges an access code for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse "Missing code"
// @Failure 401 {object} models.ErrorResponse "Unknown code"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/login [post]
func (c *AuthController) login(g *gin.Context) {
	var req models.LoginRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "code is required"})
		return
	}

	player, err := c.playersStorage.GetByAccessCode(g.Request.Context(), code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logging.Log.Warnf("AUTH: login attempt with unknown code")
			g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "invalid code"})
			return
		}
		logging.Log.Errorf("AUTH: failed to look up access code: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify code"})
		return
	}

	token, err := c.sessions.IssueToken(player.OwnerID)
	if err != nil {
		logging.Log.Errorf("AUTH: failed to issue session token: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create session"})
		return
	}

	g.SetCookie(session.CookieName, token, int(c.sessions.TTL().Seconds()), "/", "", secureCookies(), true)
	logging.Log.Infof("AUTH: player %s logged in", player.OwnerID)
	g.JSON(http.StatusOK, models.TransformPlayerToLoginResponse(player))
}

// logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /api/logout [post]
func (c *AuthController) logout(g *gin.Context) {
	g.SetCookie(session.CookieName, "", -1, "/", "", secureCookies(), true)
	g.JSON(http.StatusOK, gin.H{"ok": true})
}

// me godoc
// @Summary Current player
// @Tags auth
// @Produce json
// @Success 200 {object} models.PlayerResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/me [get]
func (c *AuthController) me(g *gin.Context) {
	ownerID := g.GetString(transport.ContextOwnerID)

	player, err := c.playersStorage.Get(g.Request.Context(), ownerID)
	if err != nil {
		logging.Log.Errorf("AUTH: failed to load player %s: %v", ownerID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load player"})
		return
	}
	if player == nil {
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "unauthorized"})
		return
	}

	g.JSON(http.StatusOK, models.TransformPlayerFromStorage(player))
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") != "local"
}
