package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mercato-be/internal/category"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, name string) (*category.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func TestCategoryHandler_List(t *testing.T) {
	mockSvc := new(MockCategoryService)
	h := NewCategoryHandler(mockSvc, zap.NewNop())

	mockSvc.On("List", mock.Anything).
		Return([]category.Category{{ID: 1, Name: "Electronics"}}, nil)

	req := httptest.NewRequest("GET", "/api/categories", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Electronics")
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		h := NewCategoryHandler(mockSvc, zap.NewNop())

		mockSvc.On("Create", mock.Anything, "Electronics").
			Return(&category.Category{ID: 1, Name: "Electronics"}, nil)

		req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"Electronics"}`))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		h := NewCategoryHandler(mockSvc, zap.NewNop())

		mockSvc.On("Create", mock.Anything, "Electronics").
			Return(nil, category.ErrCategoryExists)

		req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"Electronics"}`))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "already exists")
	})

	t.Run("MissingName", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		h := NewCategoryHandler(mockSvc, zap.NewNop())

		req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})
}
