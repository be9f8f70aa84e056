package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoverWithSentry())
	router.Use(RequestTracking(nil))
	router.Use(CORS(origins))

	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("engine exploded")
	})
	return router
}

func TestRequestTracking_AssignsRequestID(t *testing.T) {
	router := setupTestRouter([]string{"*"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, w.Body.String(), id)
}

func TestRequestTracking_KeepsCallerRequestID(t *testing.T) {
	router := setupTestRouter([]string{"*"})
	incoming := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", incoming)
	router.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get("X-Request-ID"))
}

func TestRequestTracking_ReplacesMalformedRequestID(t *testing.T) {
	router := setupTestRouter([]string{"*"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "not a uuid")
	router.ServeHTTP(w, req)

	assert.NotEqual(t, "not a uuid", w.Header().Get("X-Request-ID"))
}

func TestRecoverWithSentry(t *testing.T) {
	router := setupTestRouter([]string{"*"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		origins        []string
		origin         string
		expectedStatus int
		expectedHeader string
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "https://app.example", expectedStatus: http.StatusOK, expectedHeader: "*"},
		{name: "listed origin", origins: []string{"https://app.example/"}, origin: "https://app.example", expectedStatus: http.StatusOK, expectedHeader: "https://app.example"},
		{name: "unlisted origin", origins: []string{"https://app.example"}, origin: "https://evil.example", expectedStatus: http.StatusForbidden},
		{name: "no origin header", origins: []string{"https://app.example"}, expectedStatus: http.StatusOK},
		{name: "no origins configured", origins: nil, origin: "https://app.example", expectedStatus: http.StatusForbidden},
		{name: "origin without scheme", origins: []string{"app.example"}, origin: "https://app.example", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(tt.origins)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := setupTestRouter([]string{"https://app.example"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET,POST,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Request-Id")
}
