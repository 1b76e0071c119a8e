package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
)

type IHealthHandler interface {
	Basic(c *gin.Context)
	Database(c *gin.Context)
}

type BasicHealthResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HealthHandler struct {
	db     *gorm.DB
	logger *logger.Logger
}

func New(db *gorm.DB, logger *logger.Logger) IHealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

func (h *HealthHandler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, BasicHealthResponse{Message: "ok"})
}

func (h *HealthHandler) Database(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Checks:    map[string]CheckResult{},
	}

	check := CheckResult{Status: "healthy"}
	if h.db == nil {
		check = CheckResult{Status: "unhealthy", Error: "database connection not available"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		check = CheckResult{Status: "unhealthy", Error: err.Error()}
	} else if err := sqlDB.Ping(); err != nil {
		check = CheckResult{Status: "unhealthy", Error: err.Error()}
	}

	resp.Checks["database"] = check
	if check.Status != "healthy" {
		resp.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
