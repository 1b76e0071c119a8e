package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/skillswaphq/skillswap-backend/internal/consts"
	"github.com/skillswaphq/skillswap-backend/internal/controller"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/jwtauth"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
	"github.com/skillswaphq/skillswap-backend/internal/view"
)

type handler struct {
	controller controller.IController
	jwtManager *jwtauth.Manager
	logger     *logger.Logger
	appConfig  *config.AppConfig
}

func New(controller controller.IController, jwtManager *jwtauth.Manager, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		controller: controller,
		jwtManager: jwtManager,
		logger:     logger,
		appConfig:  appConfig,
	}
}

// Register godoc
// @Summary Register a new user
// @id register
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration fields"
// @Success 201 {object} view.Response[model.User]
// @Failure 400 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /auth/register [post]
func (h *handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Register][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	u, err := h.controller.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, controller.ErrEmailTaken) {
			c.JSON(http.StatusConflict, view.ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("[Register][Register]", map[string]string{
			"email": req.Email,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.ErrorResponse{Error: "failed to register"})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID)
	if err != nil {
		h.logger.Error("[Register][GenerateAccessToken]", map[string]string{
			"user_id": u.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.ErrorResponse{Error: "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  u,
	})
}

// Login godoc
// @Summary Log in
// @id login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} view.Response[model.User]
// @Failure 400 {object} view.ErrorResponse
// @Failure 401 {object} view.ErrorResponse
// @Router /auth/login [post]
func (h *handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	u, err := h.controller.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, controller.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, view.ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("[Login][Login]", map[string]string{
			"email": req.Email,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.ErrorResponse{Error: "failed to log in"})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID)
	if err != nil {
		h.logger.Error("[Login][GenerateAccessToken]", map[string]string{
			"user_id": u.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.ErrorResponse{Error: "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  u,
	})
}

// Me godoc
// @Summary Current user profile
// @id me
// @Tags Auth
// @Produce json
// @Success 200 {object} view.Response[model.User]
// @Failure 401 {object} view.ErrorResponse
// @Router /auth/me [get]
func (h *handler) Me(c *gin.Context) {
	v, exists := c.Get(consts.ContextKeyUserID)
	userID, ok := v.(string)
	if !exists || !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, view.ErrorResponse{Error: "unauthenticated"})
		return
	}

	u, err := h.controller.GetUser(userID)
	if err != nil {
		if errors.Is(err, controller.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, view.ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("[Me][GetUser]", map[string]string{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.ErrorResponse{Error: "failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(u, nil, ""))
}
