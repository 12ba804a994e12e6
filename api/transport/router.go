package transport

import (
	"net/http"
	"os"

	"github.com/Dailong90/fanta-claus/api/session"
	"github.com/Dailong90/fanta-claus/logging"
	"github.com/Dailong90/fanta-claus/storage"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ContextOwnerID is the gin context key holding the authenticated player id.
const ContextOwnerID = "ownerId"

func NewRouter(ginMode string) *gin.Engine {
	gin.SetMode(ginMode)
	engine := gin.New()
	engine.Use(CORSMiddleware())

	//Bypass swagger for non-local
	if os.Getenv("APP_ENV") == "local" {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.NoRoute(NoRouteHandler())

	return engine
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", os.Getenv("CORS_ORIGIN"))
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			logging.Log.Infof("OPTIONS request received:%s", c.Request.URL.Path)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logging.Log.Infof("No routed request received for:%s", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
	}
}

// SessionAuthMiddleware resolves the session cookie to a player id and stores
// it in the context. Requests without a valid session are rejected.
func SessionAuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ownerID, err := sessions.ValidateToken(token)
		if err != nil {
			logging.Log.Warnf("AUTH: rejected session token for %s: %v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ContextOwnerID, ownerID)
		c.Next()
	}
}

// AdminAuthMiddleware additionally requires the session player to be flagged
// as admin in storage. The flag is read per request, never from the token.
func AdminAuthMiddleware(sessions *session.Manager, players storage.PlayerStorage) gin.HandlerFunc {
	sessionAuth := SessionAuthMiddleware(sessions)
	return func(c *gin.Context) {
		sessionAuth(c)
		if c.IsAborted() {
			return
		}

		ownerID := c.GetString(ContextOwnerID)
		player, err := players.Get(c.Request.Context(), ownerID)
		if err != nil || player == nil || !player.IsAdmin {
			logging.Log.Warnf("ADMIN: unauthorized access attempt to %s by %s", c.Request.URL.Path, ownerID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
