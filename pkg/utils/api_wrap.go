package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body for every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps service-layer errors onto HTTP responses.
// Upstream errors keep their wrapped message so the caller can see what
// the maps service actually said.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDestinationRequired):
		RespondError(c, http.StatusBadRequest, "destination is required")
	case errors.Is(err, ErrInvalidDateRange):
		RespondError(c, http.StatusBadRequest, "end date must not precede start date")
	case errors.Is(err, ErrDestinationNotFound):
		RespondError(c, http.StatusNotFound, "destination not found")
	case errors.Is(err, ErrMissingAPIKey):
		log.Printf("Config error: %v", err)
		RespondError(c, http.StatusInternalServerError, "maps api key is not configured")
	case errors.Is(err, ErrUpstream):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
