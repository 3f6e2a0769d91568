package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/orderhub/backend/internal/application/catalog"
	"github.com/orderhub/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProductTestRouter() (*gin.Engine, *MockProductRepository) {
	gin.SetMode(gin.TestMode)

	productRepo := new(MockProductRepository)
	service := catalogapp.NewProductService(productRepo)
	h := NewProductHandler(service)

	router := gin.New()
	router.GET("/api/products", h.List)

	return router, productRepo
}

func TestProductHandler_List(t *testing.T) {
	t.Run("returns the product catalog", func(t *testing.T) {
		router, productRepo := setupProductTestRouter()

		productRepo.On("FindAll", mock.Anything).Return([]catalog.Product{
			{ID: 1, Name: "HP laptop", Description: "this is first product"},
			{ID: 2, Name: "lenovo laptop", Description: "this is second product"},
		}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp []catalogapp.ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, int64(1), resp[0].ID)
		assert.Equal(t, "lenovo laptop", resp[1].Name)
		productRepo.AssertExpectations(t)
	})

	t.Run("maps storage failures to 500", func(t *testing.T) {
		router, productRepo := setupProductTestRouter()

		productRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INTERNAL")
	})
}
