package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.RequestIDKey))
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	router := setupRequestIDRouter()
	req, _ := http.NewRequest("GET", "/ping", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	id := resp.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, resp.Body.String())
}

func TestRequestID_Propagated(t *testing.T) {
	router := setupRequestIDRouter()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, "abc-123", resp.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", resp.Body.String())
}
