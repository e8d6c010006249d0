package services_test

import (
	"fmt"
	"testing"

	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(category string) ([]models.Product, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "1", Name: "Calendario solidale", Price: 10.0, Stock: 100, Category: "cartoleria"},
		{ID: "2", Name: "Tazza", Price: 8.0, Stock: 50, Category: "casa"},
	}

	mockRepo.On("GetAll", "").Return(expected, nil).Once()
	products, err := service.GetAllProducts("")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)

	mockRepo.On("GetAll", "casa").Return(expected[1:], nil).Once()
	products, err = service.GetAllProducts("casa")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{ID: "1", Name: "Calendario solidale", Price: 10.0}

	mockRepo.On("GetByID", "1").Return(expected, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("failed: %w", gorm.ErrRecordNotFound)).Once()
	product, err = service.GetProductByID("99")
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{Name: "Borraccia", Price: 12.0, Stock: 20}

	mockRepo.On("Create", product).Return(nil).Once()
	assert.NoError(t, service.CreateProduct(product))

	mockRepo.On("Create", product).Return(fmt.Errorf("database error")).Once()
	err := service.CreateProduct(product)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{ID: "1", Name: "Borraccia", Price: 14.0, Stock: 15}

	mockRepo.On("Update", product).Return(nil).Once()
	assert.NoError(t, service.UpdateProduct(product))

	mockRepo.On("Update", product).Return(fmt.Errorf("failed: %w", gorm.ErrRecordNotFound)).Once()
	assert.ErrorIs(t, service.UpdateProduct(product), services.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct("1"))

	mockRepo.On("Delete", "99").Return(fmt.Errorf("failed: %w", gorm.ErrRecordNotFound)).Once()
	assert.ErrorIs(t, service.DeleteProduct("99"), services.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}
