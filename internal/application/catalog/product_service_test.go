package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/orderhub/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductService_List(t *testing.T) {
	t.Run("returns all products as responses", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("FindAll", mock.Anything).Return([]catalog.Product{
			{ID: 1, Name: "HP laptop", Description: "this is first product"},
			{ID: 2, Name: "lenovo laptop", Description: "this is second product"},
		}, nil)

		products, err := service.List(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []ProductResponse{
			{ID: 1, Name: "HP laptop", Description: "this is first product"},
			{ID: 2, Name: "lenovo laptop", Description: "this is second product"},
		}, products)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

		products, err := service.List(context.Background())

		assert.Error(t, err)
		assert.Nil(t, products)
		repo.AssertExpectations(t)
	})

	t.Run("returns empty list for empty catalog", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("FindAll", mock.Anything).Return([]catalog.Product{}, nil)

		products, err := service.List(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, products)
		repo.AssertExpectations(t)
	})
}
