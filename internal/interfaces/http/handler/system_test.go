package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping() error { return p.err }

func TestSystemHandler_Info(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSystemHandler("orderhub-backend", "1.0.0", stubPinger{})
	router := gin.New()
	router.GET("/", h.Info)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp InfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "orderhub-backend", resp.Name)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.NotEmpty(t, resp.GoVersion)
}

func TestSystemHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reports ok when database responds", func(t *testing.T) {
		h := NewSystemHandler("orderhub-backend", "1.0.0", stubPinger{})
		router := gin.New()
		router.GET("/health", h.Health)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "up", resp.Database)
	})

	t.Run("reports 503 when database is down", func(t *testing.T) {
		h := NewSystemHandler("orderhub-backend", "1.0.0", stubPinger{err: errors.New("dial tcp: refused")})
		router := gin.New()
		router.GET("/health", h.Health)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unhealthy")
	})
}
