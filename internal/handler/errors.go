package handler

import (
	"errors"
	"log"
	"net/http"

	"taskboard/internal/middleware"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures onto status codes. Upstream details are
// logged and never sent to the client.
func respondError(c *gin.Context, err error, fallback string) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
		return
	}

	var configuration *service.ConfigurationError
	if errors.As(err, &configuration) {
		log.Printf("❌ [%s] %s: %v", c.GetString(middleware.RequestIDKey), fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": configuration.Error()})
		return
	}

	log.Printf("❌ [%s] %s: %v", c.GetString(middleware.RequestIDKey), fallback, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func invalidRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}
