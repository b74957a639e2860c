package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/team-echo-club/echo-api/internal/app/models/dto"
	"github.com/team-echo-club/echo-api/internal/pkg/apperrors"
)

// errorDetail builds the error envelope body, carrying over any context
// details attached to the service error.
func errorDetail(code dto.ErrorCode, err error) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(code, err.Error())
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Details != nil {
		detail = detail.WithDetails(ce.Details)
	}
	return detail
}

// HandleAPIError maps application errors to status codes and the standard
// error envelope. Controllers delegate every service error here.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrActivityNotFound, apperrors.ErrMemberNotFound):
		c.JSON(404, dto.APIResponse{
			Error:     errorDetail(dto.ErrorCodeResourceNotFound, err),
			Timestamp: time.Now(),
		})
		return
	case apperrors.Is(err, apperrors.ErrUnknownPlatform, apperrors.ErrUnknownSort, apperrors.ErrUnknownChannel):
		c.JSON(400, dto.APIResponse{
			Error:     errorDetail(dto.ErrorCodeResourceInvalid, err),
			Timestamp: time.Now(),
		})
		return
	case errors.Is(err, apperrors.ErrValidationFailed):
		// Client mistakes are warnings, not server faults
		c.JSON(400, dto.APIResponse{
			Error:     errorDetail(dto.ErrorCodeValidationFailed, err).WithSeverity(dto.ErrorSeverityWarning),
			Timestamp: time.Now(),
		})
		return
	default:
		// Handle unknown errors
		c.JSON(500, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			Timestamp: time.Now(),
		})
		return
	}
}
