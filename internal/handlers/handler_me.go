package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// meHandler serves the signed-in user's own profile.
type meHandler struct {
	userService portssvc.UserSvcFacade
}

func newMeHandler(us portssvc.UserSvcFacade) *meHandler {
	return &meHandler{userService: us}
}

func registerMeRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newMeHandler(userService)

	me := rg.Group("/me")
	{
		me.GET("", h.getMe)
		me.PUT("/password", h.changePassword)
	}
}

// getMe godoc
// @Summary Get own profile
// @Tags me
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *meHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// changePassword godoc
// @Summary Change own password
// @Tags me
// @Accept json
// @Param body body dto.ChangePasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Current password is wrong"
// @Security BearerAuth
// @Router /me/password [put]
func (h *meHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		respondWithError(c, logger, err, "Failed to change password")
		return
	}
	logger.Info("Password changed", slog.String("user_id", userID))
	c.Status(http.StatusNoContent)
}
