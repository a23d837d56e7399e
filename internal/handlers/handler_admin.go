package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves the operator console. Every service call it makes
// checks the operator role itself; the handler only forwards the caller's ID.
type adminHandler struct {
	txnService       portssvc.TransactionSvcFacade
	userService      portssvc.UserSvcFacade
	dashboardService portssvc.DashboardSvc
	maxUploadBytes   int64
}

func newAdminHandler(ts portssvc.TransactionSvcFacade, us portssvc.UserSvcFacade, ds portssvc.DashboardSvc, maxUploadBytes int64) *adminHandler {
	return &adminHandler{
		txnService:       ts,
		userService:      us,
		dashboardService: ds,
		maxUploadBytes:   maxUploadBytes,
	}
}

func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, maxUploadBytes int64) {
	registerValidators()
	h := newAdminHandler(services.Transaction, services.User, services.Dashboard, maxUploadBytes)

	admin := rg.Group("/admin")
	{
		admin.GET("/dashboard", h.getDashboard)

		txns := admin.Group("/transactions")
		txns.GET("", h.listTransactions)
		txns.PUT("/:id/status", h.updateStatus)
		txns.POST("/:id/complete/upload", h.completeWithUpload)

		users := admin.Group("/users")
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.PUT("/:id", h.updateUser)
		users.PUT("/:id/role", h.setRole)
	}
}

// getDashboard godoc
// @Summary Operator dashboard
// @Description Current configuration, rate board, counts by status and open volume per currency.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *adminHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	dash, err := h.dashboardService.GetDashboard(c.Request.Context(), operatorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}

// listTransactions godoc
// @Summary List all transactions
// @Description The operator queue, newest first, with owner details.
// @Tags admin
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/transactions [get]
func (h *adminHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	overviews, next, err := h.txnService.ListAllTransactions(c.Request.Context(), operatorID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	resp := dto.ListTransactionsResponse{Transactions: make([]dto.TransactionResponse, len(overviews)), NextToken: next}
	for i := range overviews {
		resp.Transactions[i] = toTransactionOverviewResponse(&overviews[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateStatus godoc
// @Summary Move a transaction through its lifecycle
// @Description verifying -> verified|rejected, verified -> completed|rejected. Completing requires a completion proof. Requesting the current status is a no-op.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param status body dto.UpdateTransactionStatusRequest true "Target status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid transition or concurrent modification"
// @Failure 422 {object} ErrorResponse "Completion proof missing"
// @Security BearerAuth
// @Router /admin/transactions/{id}/status [put]
func (h *adminHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txnID := c.Param("id")
	logger = logger.With(slog.String("transaction_id", txnID), slog.String("new_status", req.Status))

	txn, err := h.txnService.Transition(c.Request.Context(), txnID, domain.TransactionStatus(req.Status), operatorID, req.CompletionProofURL)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update transaction status")
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// completeWithUpload godoc
// @Summary Upload a payout proof and complete
// @Description Stores the payout receipt, then transitions a verified transaction to completed.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Transaction ID"
// @Param file formData file true "Payout receipt image or PDF"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Uploads are not configured"
// @Security BearerAuth
// @Router /admin/transactions/{id}/complete/upload [post]
func (h *adminHandler) completeWithUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	artifact, closeFn, ok := readArtifact(c, logger, h.maxUploadBytes)
	if !ok {
		return
	}
	defer closeFn()

	txn, err := h.txnService.CompleteWithArtifact(c.Request.Context(), c.Param("id"), operatorID, artifact)
	if err != nil {
		respondWithError(c, logger, err, "Failed to complete transaction")
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// listUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profiles, err := h.userService.ListUsers(c.Request.Context(), operatorID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(profiles))
}

// createUser godoc
// @Summary Create a user on a customer's behalf
// @Tags admin
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [post]
func (h *adminHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.userService.CreateUser(c.Request.Context(), operatorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// updateUser godoc
// @Summary Update a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (h *adminHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.userService.UpdateUser(c.Request.Context(), operatorID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// setRole godoc
// @Summary Promote or demote a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/role [put]
func (h *adminHandler) setRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.userService.SetRole(c.Request.Context(), operatorID, c.Param("id"), req.Role)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update role")
		return
	}
	logger.Info("User role updated", slog.String("target_user_id", profile.UserID), slog.String("role", string(profile.Role)))
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
