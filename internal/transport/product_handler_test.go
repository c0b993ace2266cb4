package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mercato-be/internal/product"
	"mercato-be/internal/user"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) Search(ctx context.Context, query string) ([]product.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id uint) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, actor *user.User, params product.CreateParams) (*product.Product, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, actor *user.User, id uint, params product.UpdateParams) (*product.Product, error) {
	args := m.Called(ctx, actor, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, actor *user.User, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// withIDParam puts a chi route context with {id} on the request, the way the
// router would.
func withIDParam(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestProductHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		mockSvc.On("Get", mock.Anything, uint(1)).
			Return(&product.Product{ID: 1, Name: "Keyboard", Price: 49.99, OwnerID: 7}, nil)

		req := withIDParam(httptest.NewRequest("GET", "/api/products/1", nil), "1")
		rr := httptest.NewRecorder()
		h.Get(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Keyboard")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		mockSvc.On("Get", mock.Anything, uint(9999)).Return(nil, product.ErrProductNotFound)

		req := withIDParam(httptest.NewRequest("GET", "/api/products/9999", nil), "9999")
		rr := httptest.NewRecorder()
		h.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		req := withIDParam(httptest.NewRequest("GET", "/api/products/abc", nil), "abc")
		rr := httptest.NewRecorder()
		h.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockSvc.AssertNotCalled(t, "Get")
	})
}

func TestProductHandler_Create(t *testing.T) {
	vendor := &user.User{ID: 7, Email: "vera@example.com", IsActive: true, Role: user.RoleVendor}

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		mockSvc.On("Create", mock.Anything, vendor, mock.AnythingOfType("product.CreateParams")).
			Return(&product.Product{ID: 1, Name: "Keyboard", Price: 49.99, OwnerID: 7}, nil)

		req := authedRequest("POST", "/api/products", `{"name":"Keyboard","price":49.99}`, vendor)
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		req := authedRequest("POST", "/api/products", `{"name":"Keyboard","price":0}`, vendor)
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})
}

func TestProductHandler_Update(t *testing.T) {
	vendor := &user.User{ID: 8, Email: "other@example.com", IsActive: true, Role: user.RoleVendor}

	t.Run("ForeignVendorForbidden", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		mockSvc.On("Update", mock.Anything, vendor, uint(1), mock.AnythingOfType("product.UpdateParams")).
			Return(nil, product.ErrNotOwner)

		req := withIDParam(authedRequest("PUT", "/api/products/1", `{"price":59.99}`, vendor), "1")
		rr := httptest.NewRecorder()
		h.Update(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		mockSvc.On("Update", mock.Anything, vendor, uint(9999), mock.AnythingOfType("product.UpdateParams")).
			Return(nil, product.ErrProductNotFound)

		req := withIDParam(authedRequest("PUT", "/api/products/9999", `{"price":59.99}`, vendor), "9999")
		rr := httptest.NewRecorder()
		h.Update(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	vendor := &user.User{ID: 7, Email: "vera@example.com", IsActive: true, Role: user.RoleVendor}

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		mockSvc.On("Delete", mock.Anything, vendor, uint(1)).Return(nil)

		req := withIDParam(authedRequest("DELETE", "/api/products/1", "", vendor), "1")
		rr := httptest.NewRecorder()
		h.Delete(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("ForeignVendorForbidden", func(t *testing.T) {
		mockSvc := new(MockProductService)
		h := NewProductHandler(mockSvc, zap.NewNop())

		mockSvc.On("Delete", mock.Anything, vendor, uint(2)).Return(product.ErrNotOwner)

		req := withIDParam(authedRequest("DELETE", "/api/products/2", "", vendor), "2")
		rr := httptest.NewRecorder()
		h.Delete(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestProductHandler_Search(t *testing.T) {
	mockSvc := new(MockProductService)
	h := NewProductHandler(mockSvc, zap.NewNop())

	mockSvc.On("Search", mock.Anything, "mouse").
		Return([]product.Product{{ID: 2, Name: "Mouse", Price: 19.99, OwnerID: 7}}, nil)

	req := httptest.NewRequest("GET", "/api/products/search?query=mouse", nil)
	rr := httptest.NewRecorder()
	h.Search(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Mouse")
}
