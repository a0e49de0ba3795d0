package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/hoofledger/hoofledger/internal/api/shared/errors"
	"github.com/hoofledger/hoofledger/internal/logger"
)

// statusByCode maps API error codes to HTTP statuses
var statusByCode = map[apierrors.ErrorCode]int{
	apierrors.ErrCodeBadRequest:         http.StatusBadRequest,
	apierrors.ErrCodeValidationFailed:   http.StatusBadRequest,
	apierrors.ErrCodeNotFound:           http.StatusNotFound,
	apierrors.ErrCodeUnauthorized:       http.StatusUnauthorized,
	apierrors.ErrCodeForbidden:          http.StatusForbidden,
	apierrors.ErrCodeConflict:           http.StatusConflict,
	apierrors.ErrCodeInternalError:      http.StatusInternalServerError,
	apierrors.ErrCodeDatabaseError:      http.StatusInternalServerError,
	apierrors.ErrCodeServiceError:       http.StatusBadGateway,
	apierrors.ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with per-field validation messages
func respondValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(fields))
}

// respondError renders an executor error. Anything that is not an
// *apierrors.APIError is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, apierrors.NewInternalError("Internal server error"))
		return
	}

	status, ok := statusByCode[apiErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), errors.New(apiErr.Message),
			zap.String("details", apiErr.Details),
			zap.String("path", c.Request.URL.Path))
	}

	c.JSON(status, apiErr)
}
