package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_BlocksBurstOverflow(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.001, 2)) // effectively: 2 requests, then blocked
	r.POST("/api/contact", func(c *gin.Context) { c.JSON(200, gin.H{"message": "ok"}) })

	do := func(ip string) int {
		req := httptest.NewRequest("POST", "/api/contact", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1"))
	require.Equal(t, http.StatusOK, do("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))

	// other clients are keyed independently
	require.Equal(t, http.StatusOK, do("10.0.0.2"))
}
