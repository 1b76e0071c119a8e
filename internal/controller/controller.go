package controller

import (
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/store"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
)

const (
	// Cap on public directory listings
	maxDirectoryResults = 50
)

type Controller struct {
	db        *gorm.DB
	store     *store.Store
	logger    *logger.Logger
	appConfig *config.AppConfig

	// doInTx brackets multi-statement writes in a single transaction.
	doInTx func(db *gorm.DB, fn func(tx *gorm.DB) error) error
}

func New(
	db *gorm.DB,
	s *store.Store,
	logger *logger.Logger,
	appConfig *config.AppConfig,
) IController {
	return &Controller{
		db:        db,
		store:     s,
		logger:    logger,
		appConfig: appConfig,
		doInTx:    store.DoInTx,
	}
}
