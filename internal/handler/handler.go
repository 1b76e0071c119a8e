package handler

import (
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/controller"
	"github.com/skillswaphq/skillswap-backend/internal/handler/auth"
	"github.com/skillswaphq/skillswap-backend/internal/handler/health"
	"github.com/skillswaphq/skillswap-backend/internal/handler/swaprequest"
	"github.com/skillswaphq/skillswap-backend/internal/handler/user"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/jwtauth"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
)

type Handler struct {
	AuthHandler        auth.IHandler
	UserHandler        user.IHandler
	SwapRequestHandler swaprequest.IHandler
	HealthHandler      health.IHealthHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	ctrl controller.IController,
	jwtManager *jwtauth.Manager,
	db *gorm.DB) *Handler {
	return &Handler{
		AuthHandler:        auth.New(ctrl, jwtManager, logger, appConfig),
		UserHandler:        user.New(ctrl, logger, appConfig),
		SwapRequestHandler: swaprequest.New(ctrl, logger, appConfig),
		HealthHandler:      health.New(db, logger),
	}
}
