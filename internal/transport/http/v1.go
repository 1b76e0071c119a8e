package http

import (
	"github.com/gin-gonic/gin"

	"github.com/skillswaphq/skillswap-backend/internal/handler"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/jwtauth"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, jwtManager *jwtauth.Manager, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")
	authenticated := authMiddleware(jwtManager)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
		auth.GET("/me", authenticated, h.AuthHandler.Me)
	}

	users := v1.Group("/users")
	{
		users.GET("", h.UserHandler.List)
		users.GET("/:id", h.UserHandler.Get)
		users.PUT("/:id", authenticated, h.UserHandler.UpdateProfile)
		users.PUT("/:id/profile-photo", authenticated, h.UserHandler.UpdateProfilePhoto)
	}

	swapRequests := v1.Group("/swap-requests", authenticated)
	{
		swapRequests.POST("", h.SwapRequestHandler.Create)
		swapRequests.GET("/me", h.SwapRequestHandler.ListMine)
		swapRequests.PUT("/:id/accept", h.SwapRequestHandler.Accept)
		swapRequests.PUT("/:id/reject", h.SwapRequestHandler.Reject)
		swapRequests.DELETE("/:id", h.SwapRequestHandler.Delete)
	}

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)
	r.GET("/healthz/db", h.HealthHandler.Database)
}
