package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NomadCrew/tourist-travel-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testHandler := func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}

	testCases := []struct {
		name           string
		allowedOrigins []string
		requestOrigin  string
		expectedOrigin string
	}{
		{
			name:           "Wildcard allows any origin",
			allowedOrigins: []string{"*"},
			requestOrigin:  "http://anywhere.example",
			expectedOrigin: "*",
		},
		{
			name:           "Empty list allows any origin",
			allowedOrigins: nil,
			requestOrigin:  "http://anywhere.example",
			expectedOrigin: "*",
		},
		{
			name:           "Listed origin is echoed",
			allowedOrigins: []string{"http://localhost:3000", "https://tours.example"},
			requestOrigin:  "https://tours.example",
			expectedOrigin: "https://tours.example",
		},
		{
			name:           "Unlisted origin gets no header",
			allowedOrigins: []string{"http://localhost:3000"},
			requestOrigin:  "http://malicious.example",
			expectedOrigin: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORSMiddleware(&config.ServerConfig{AllowedOrigins: tc.allowedOrigins}))
			router.GET("/test", testHandler)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tc.requestOrigin)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(&config.ServerConfig{AllowedOrigins: []string{"*"}}))
	router.PATCH("/api/bookings/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/bookings/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
