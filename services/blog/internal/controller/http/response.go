package http

import (
	"encoding/xml"
	"errors"
	"net/http"
	"strconv"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto HTTP statuses. Unexpected errors are
// logged and reported as 500.
func respondError(c *gin.Context, log *logger.Logger, action string, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, usecase.ErrAuthorInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
	default:
		log.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}

func writeXML(c *gin.Context, contentType string, v interface{}) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to encode xml")
		return
	}
	c.Data(http.StatusOK, contentType, append([]byte(xml.Header), body...))
}
