package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"mercato-be/internal/category"
	"mercato-be/internal/transport/response"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories category.Service
	log        *zap.Logger
}

func NewCategoryHandler(categories category.Service, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		h.log.Error("category listing failed", zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	response.Success(w, "Categories retrieved", categories)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		response.BadRequest(w, "Validation failed", validationErrors)
		return
	}

	c, err := h.categories.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, category.ErrCategoryExists) {
			response.BadRequest(w, "Category already exists", nil)
			return
		}
		h.log.Error("category creation failed", zap.String("name", req.Name), zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	response.Created(w, "Category created", c)
}
