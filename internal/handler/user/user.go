package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/skillswaphq/skillswap-backend/internal/consts"
	"github.com/skillswaphq/skillswap-backend/internal/controller"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
	"github.com/skillswaphq/skillswap-backend/internal/view"
)

// Placeholder until real photo storage lands behind the upload endpoint.
const placeholderPhotoURL = "https://via.placeholder.com/150"

type handler struct {
	controller controller.IController
	logger     *logger.Logger
	appConfig  *config.AppConfig
}

func New(controller controller.IController, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
		appConfig:  appConfig,
	}
}

func actingUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(consts.ContextKeyUserID)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// List godoc
// @Summary Browse public users
// @Description Lists public profiles, filterable by skill/name search and availability
// @id listUsers
// @Tags User
// @Produce json
// @Param search query string false "Name or skill search"
// @Param availability query string false "Availability label"
// @Success 200 {object} view.Response[[]model.User]
// @Router /users [get]
func (h *handler) List(c *gin.Context) {
	var req ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	users, err := h.controller.ListUsers(req.Search, req.Availability)
	if err != nil {
		h.logger.Error("[List][ListUsers]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.ErrorResponse{Error: "failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(users, nil, ""))
}

// Get godoc
// @Summary Get a user profile
// @id getUser
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} view.Response[model.User]
// @Failure 404 {object} view.ErrorResponse
// @Router /users/{id} [get]
func (h *handler) Get(c *gin.Context) {
	u, err := h.controller.GetUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, controller.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, view.ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("[Get][GetUser]", map[string]string{
			"user_id": c.Param("id"),
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.ErrorResponse{Error: "failed to fetch user profile"})
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(u, nil, ""))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Applies allow-listed profile fields; self only
// @id updateProfile
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} view.Response[model.User]
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /users/{id} [put]
func (h *handler) UpdateProfile(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, view.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[UpdateProfile][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	u, err := h.controller.UpdateProfile(c.Param("id"), userID, controller.ProfileUpdate{
		Name:          req.Name,
		Location:      req.Location,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Availability:  req.Availability,
		IsPublic:      req.IsPublic,
	})
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrNotProfileOwner):
			c.JSON(http.StatusForbidden, view.ErrorResponse{Error: err.Error()})
		case errors.Is(err, controller.ErrUserNotFound):
			c.JSON(http.StatusNotFound, view.ErrorResponse{Error: err.Error()})
		default:
			h.logger.Error("[UpdateProfile][UpdateProfile]", map[string]string{
				"user_id": userID,
				"error":   err.Error(),
			})
			c.JSON(http.StatusInternalServerError, view.ErrorResponse{Error: "failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(u, nil, "profile updated successfully"))
}

// UpdateProfilePhoto godoc
// @Summary Update profile photo
// @Description Photo storage is not wired yet; returns a placeholder URL
// @id updateProfilePhoto
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} view.MessageResponse
// @Failure 403 {object} view.ErrorResponse
// @Router /users/{id}/profile-photo [put]
func (h *handler) UpdateProfilePhoto(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, view.ErrorResponse{Error: "unauthenticated"})
		return
	}

	if c.Param("id") != userID {
		c.JSON(http.StatusForbidden, view.ErrorResponse{Error: controller.ErrNotProfileOwner.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "photo upload is not implemented yet",
		"profile_photo_url": placeholderPhotoURL,
	})
}
