package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/auth"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/users"
)

// RouterDeps carries the wired handlers the router needs.
type RouterDeps struct {
	Config         config.Config
	Tokens         *auth.Service
	UsersHandler   *users.Handler
	ResumesHandler *resumes.Handler
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigins),
		middleware.BodyLimit(deps.Config.MaxBodyBytes),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "Server is running successfully!"})
	})

	// The auth routes reject a bad token with 403, the resume routes with
	// 401; a missing token is 401 on both.
	deps.UsersHandler.RegisterRoutes(api, middleware.Auth(deps.Tokens, http.StatusForbidden))
	deps.ResumesHandler.RegisterRoutes(api, middleware.Auth(deps.Tokens, http.StatusUnauthorized))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Route not found"})
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
