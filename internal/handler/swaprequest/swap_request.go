package swaprequest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/skillswaphq/skillswap-backend/internal/consts"
	"github.com/skillswaphq/skillswap-backend/internal/controller"
	"github.com/skillswaphq/skillswap-backend/internal/model"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
	"github.com/skillswaphq/skillswap-backend/internal/view"
)

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

// httpStatusOf maps each domain error kind to its one stable status code.
func httpStatusOf(err error) int {
	switch {
	case errors.Is(err, controller.ErrUserNotFound),
		errors.Is(err, controller.ErrSwapRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, controller.ErrNotAccepter),
		errors.Is(err, controller.ErrNotRequester):
		return http.StatusForbidden
	case errors.Is(err, controller.ErrSelfSwapRequest),
		errors.Is(err, controller.ErrMissingSkills),
		errors.Is(err, controller.ErrDuplicatePendingRequest),
		errors.Is(err, controller.ErrRequestNotPending):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondError(c *gin.Context, err error, fallback string) {
	status := httpStatusOf(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, view.ErrorResponse{Error: fallback})
		return
	}
	c.JSON(status, view.ErrorResponse{Error: err.Error()})
}

func actingUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(consts.ContextKeyUserID)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// Create godoc
// @Summary Create a swap request
// @Description Opens a pending swap negotiation with another user
// @id createSwapRequest
// @Tags SwapRequest
// @Accept json
// @Produce json
// @Param request body CreateSwapRequestRequest true "Swap request parameters"
// @Success 201 {object} view.SwapRequestDetail
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swap-requests [post]
func (h *handler) Create(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, view.ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req CreateSwapRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Create][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if err := validator.New().Struct(req); err != nil {
		h.logger.Error("[Create][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	swapRequest, err := h.controller.CreateSwapRequest(controller.CreateSwapRequestInput{
		RequesterID:  userID,
		AccepterID:   req.AccepterID,
		OfferedSkill: req.RequesterOfferedSkill,
		WantedSkill:  req.AccepterWantedSkill,
		Message:      req.Message,
	})
	if err != nil {
		h.logger.Error("[Create][CreateSwapRequest]", map[string]string{
			"requester_id": userID,
			"accepter_id":  req.AccepterID,
			"error":        err.Error(),
		})
		h.respondError(c, err, "failed to create swap request")
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(view.ToSwapRequestDetail(swapRequest), nil, "swap request created successfully"))
}

// ListMine godoc
// @Summary List the caller's swap requests
// @Description Returns requests where the caller is requester or accepter, newest first
// @id listMySwapRequests
// @Tags SwapRequest
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} view.Response[[]view.SwapRequestItem]
// @Failure 400 {object} view.ErrorResponse
// @Router /swap-requests/me [get]
func (h *handler) ListMine(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, view.ErrorResponse{Error: "unauthenticated"})
		return
	}

	status := model.SwapRequestStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: "invalid status filter"})
		return
	}

	swapRequests, err := h.controller.ListSwapRequestsForUser(userID, status)
	if err != nil {
		h.logger.Error("[ListMine][ListSwapRequestsForUser]", map[string]string{
			"user_id": userID,
			"error":   err.Error(),
		})
		h.respondError(c, err, "failed to fetch swap requests")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(view.ToSwapRequestItems(swapRequests, userID), nil, ""))
}

// Accept godoc
// @Summary Accept a swap request
// @Description Transitions a pending request to accepted; accepter only
// @id acceptSwapRequest
// @Tags SwapRequest
// @Produce json
// @Param id path string true "Swap request ID"
// @Success 200 {object} view.SwapRequestDetail
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swap-requests/{id}/accept [put]
func (h *handler) Accept(c *gin.Context) {
	h.respond(c, c.Param("id"), h.controller.AcceptSwapRequest, "swap request accepted successfully")
}

// Reject godoc
// @Summary Reject a swap request
// @Description Transitions a pending request to rejected; accepter only
// @id rejectSwapRequest
// @Tags SwapRequest
// @Produce json
// @Param id path string true "Swap request ID"
// @Success 200 {object} view.SwapRequestDetail
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swap-requests/{id}/reject [put]
func (h *handler) Reject(c *gin.Context) {
	h.respond(c, c.Param("id"), h.controller.RejectSwapRequest, "swap request rejected successfully")
}

func (h *handler) respond(c *gin.Context, id string, transition func(id, actingUserID string) (*model.SwapRequest, error), message string) {
	userID, ok := actingUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, view.ErrorResponse{Error: "unauthenticated"})
		return
	}

	swapRequest, err := transition(id, userID)
	if err != nil {
		h.logger.Error("[respond][transition]", map[string]string{
			"swap_request_id": id,
			"user_id":         userID,
			"error":           err.Error(),
		})
		h.respondError(c, err, "failed to update swap request")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(view.ToSwapRequestDetail(swapRequest), nil, message))
}

// Delete godoc
// @Summary Delete a swap request
// @Description Withdraws a pending request; requester only, hard delete
// @id deleteSwapRequest
// @Tags SwapRequest
// @Produce json
// @Param id path string true "Swap request ID"
// @Success 200 {object} view.MessageResponse
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swap-requests/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, view.ErrorResponse{Error: "unauthenticated"})
		return
	}

	id := c.Param("id")
	if err := h.controller.DeleteSwapRequest(id, userID); err != nil {
		h.logger.Error("[Delete][DeleteSwapRequest]", map[string]string{
			"swap_request_id": id,
			"user_id":         userID,
			"error":           err.Error(),
		})
		h.respondError(c, err, "failed to delete swap request")
		return
	}

	c.JSON(http.StatusOK, view.MessageResponse{Message: "swap request deleted successfully"})
}
