package api

import (
	"net/http"

	"mentormatch/internal/apperr"
	"mentormatch/internal/logger"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"slot already booked"`
	Code  string `json:"code,omitempty" example:"SLOT_ALREADY_BOOKED"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalReviews int `json:"total_reviews"`
}

// RespondError writes the structured body for a domain error. Anything that is
// not an *apperr.Error is logged and hidden behind a generic 500.
func RespondError(c *gin.Context, err error) {
	if ae, ok := apperr.As(err); ok {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: ae.Message, Code: ae.Code})
		return
	}

	logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "BAD_REQUEST"})
}
