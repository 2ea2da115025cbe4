package response

import (
	"errors"
	"net/http"

	"hotelbooking/internal/domain"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// DomainError renders a domain failure with the HTTP status its code maps to.
// Anything that is not a *domain.Error is treated as an internal error.
func DomainError(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "unexpected error")
		return
	}
	Error(c, statusFor(de.Code), string(de.Code), de.Message)
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeRoomNotFound, domain.CodeGuestNotFound, domain.CodeBookingNotFound:
		return http.StatusNotFound
	case domain.CodeRoomInMaintenance, domain.CodeRoomNotAvailable,
		domain.CodeCannotDeleteRoomWithBookings, domain.CodeCannotDeleteGuestWithBookings:
		return http.StatusConflict
	case domain.CodeStorageFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
