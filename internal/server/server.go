package server

import (
	"github.com/robfig/cron/v3"

	"github.com/skillswaphq/skillswap-backend/internal/controller"
	"github.com/skillswaphq/skillswap-backend/internal/store"
	pgstore "github.com/skillswaphq/skillswap-backend/internal/store/postgres"
	"github.com/skillswaphq/skillswap-backend/internal/telemetry"
	"github.com/skillswaphq/skillswap-backend/internal/transport/http"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/jwtauth"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)
	s := store.New()

	ctrl := controller.New(db, s, logger, appConfig)
	jwtManager := jwtauth.New(appConfig)

	stats := telemetry.New(db, s, appConfig, logger)

	c := cron.New()
	if _, err := c.AddFunc(appConfig.StatsPeriod, func() {
		if err := stats.IndexSwapRequestStats(); err != nil {
			logger.Error("[Init][IndexSwapRequestStats]", map[string]string{
				"error": err.Error(),
			})
		}
	}); err != nil {
		logger.Error("[Init][AddFunc] failed to schedule stats job", map[string]string{
			"error": err.Error(),
		})
	}
	c.Start()

	httpServer := http.NewHttpServer(appConfig, logger, ctrl, jwtManager, db)

	if err := httpServer.Run(":" + appConfig.ApiServer.Port); err != nil {
		logger.Fatal("failed to run http server", map[string]string{
			"error": err.Error(),
		})
	}
}
