package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/motodash/internal/core/domain"
)

type errorResponse struct {
	Message string            `json:"message" example:"validation failed"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type healthResponse struct {
	Status string `json:"status" example:"ok"`
	Time   string `json:"time" example:"2024-05-01T12:00:00Z"`
}

var errInvalidJSON = errors.New("invalid JSON body")

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

func newValidationResponse(c *gin.Context, verr *domain.ValidationError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Message: "validation failed",
		Fields:  verr.Fields,
	})
}
