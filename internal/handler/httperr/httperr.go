package httperr

import (
	"net/http"

	"storezee/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the failure envelope shared by every route.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func NewResponse(status int, msg string, details any) Response {
	return Response{Status: status, Error: msg, Details: details}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, details)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps a workflow failure class to its HTTP status and public message.
func StatusFor(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid booking request"
	case errs.Is(err, errs.ErrTimeout):
		return http.StatusGatewayTimeout, "Booking request timed out"
	case errs.Is(err, errs.ErrStorage):
		return http.StatusBadGateway, "Failed to store uploaded files"
	case errs.Is(err, errs.ErrPersistence):
		return http.StatusInternalServerError, "Failed to save booking"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
