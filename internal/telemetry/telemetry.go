package telemetry

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/store"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
)

type Telemetry struct {
	db        *gorm.DB
	store     *store.Store
	appConfig *config.AppConfig
	logger    *logger.Logger
}

func New(db *gorm.DB, store *store.Store, appConfig *config.AppConfig, logger *logger.Logger) ITelemetry {
	return &Telemetry{
		db:        db,
		store:     store,
		appConfig: appConfig,
		logger:    logger,
	}
}

func (t *Telemetry) IndexSwapRequestStats() error {
	counts, err := t.store.SwapRequest.CountByStatus(t.db)
	if err != nil {
		t.logger.Error("[IndexSwapRequestStats][CountByStatus]", map[string]string{
			"error": err.Error(),
		})
		return err
	}

	fields := make(map[string]string, len(counts))
	for status, count := range counts {
		fields[string(status)] = strconv.FormatInt(count, 10)
	}

	t.logger.Info("[IndexSwapRequestStats] swap request totals by status", fields)
	return nil
}
