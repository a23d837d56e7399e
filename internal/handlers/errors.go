package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps a service error to its HTTP status and writes it.
// An AppError carries its own code and message; bare sentinels are mapped here.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status, msg := statusFor(err, fallback)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()))
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

func statusFor(err error, fallback string) (int, string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		if appErr.Code >= http.StatusInternalServerError && appErr.Code != http.StatusServiceUnavailable {
			return appErr.Code, fallback
		}
		return appErr.Code, appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, apperrors.ErrNotAuthorized):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrMissingCompletionProof):
		return http.StatusUnprocessableEntity, "A completion proof is required to complete a transaction"
	case errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, fallback
}
