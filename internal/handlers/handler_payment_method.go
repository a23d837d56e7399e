package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentMethodHandler handles the collection accounts customers pay into.
type paymentMethodHandler struct {
	pmService portssvc.PaymentMethodSvcFacade
}

func newPaymentMethodHandler(ps portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{pmService: ps}
}

func registerPaymentMethodRoutes(rg *gin.RouterGroup, pmService portssvc.PaymentMethodSvcFacade) {
	registerValidators()
	h := newPaymentMethodHandler(pmService)

	pms := rg.Group("/payment-methods")
	{
		pms.GET("", h.listPaymentMethods)
		pms.POST("", h.createPaymentMethod)
		pms.PUT("/:id", h.updatePaymentMethod)
		pms.DELETE("/:id", h.deletePaymentMethod)
	}
}

// listPaymentMethods godoc
// @Summary List collection accounts
// @Description Active accounts, optionally for one region. Operators may include inactive ones.
// @Tags payment-methods
// @Produce json
// @Param region query string false "Region or currency"
// @Param includeInactive query bool false "Operators only"
// @Success 200 {array} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentMethodsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	pms, err := h.pmService.ListPaymentMethods(c.Request.Context(), actorID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list payment methods")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponses(pms))
}

// createPaymentMethod godoc
// @Summary Add a collection account
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param paymentMethod body dto.CreatePaymentMethodRequest true "Account details"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	pm, err := h.pmService.CreatePaymentMethod(c.Request.Context(), operatorID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create payment method")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(pm))
}

// updatePaymentMethod godoc
// @Summary Update a collection account
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param id path string true "Payment method ID"
// @Param paymentMethod body dto.UpdatePaymentMethodRequest true "Fields to update"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods/{id} [put]
func (h *paymentMethodHandler) updatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	pm, err := h.pmService.UpdatePaymentMethod(c.Request.Context(), operatorID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update payment method")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(pm))
}

// deletePaymentMethod godoc
// @Summary Remove a collection account
// @Tags payment-methods
// @Param id path string true "Payment method ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods/{id} [delete]
func (h *paymentMethodHandler) deletePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.pmService.DeletePaymentMethod(c.Request.Context(), operatorID, c.Param("id")); err != nil {
		respondWithError(c, logger, err, "Failed to delete payment method")
		return
	}
	c.Status(http.StatusNoContent)
}
