package services_test

import (
	"context"
	"testing"

	"boutique/internal/models"
	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Classic Monogram Handbag", Price: 125000, Category: "Handbags"},
		{ID: "2", Name: "Leather Traveler Wallet", Price: 45000, Category: "Accessories"},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Classic Monogram Handbag", Price: 125000}

	// Test successful retrieval
	mockRepo.On("GetByID", mock.Anything, "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", mock.Anything, "99").Return(nil, repositories.ErrProductNotFound).Once()
	product, err = service.GetProductByID(context.Background(), "99")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SeedCatalog_EmptyStore(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Count", mock.Anything).Return(int64(0), nil).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Times(8)

	err := service.SeedCatalog(context.Background())

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SeedCatalog_NonEmptyStoreIsNoOp(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Count", mock.Anything).Return(int64(8), nil).Once()

	err := service.SeedCatalog(context.Background())

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}
