package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mercato-be/internal/middleware"
	"mercato-be/internal/product"
	"mercato-be/internal/transport/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products product.Service
	log      *zap.Logger
}

func NewProductHandler(products product.Service, log *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url"`
	CategoryID  *uint   `json:"category_id"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"image_url"`
	CategoryID  *uint    `json:"category_id"`
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		h.log.Error("product listing failed", zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	response.Success(w, "Products retrieved", products)
}

// Search handles GET /api/products/search?query=
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	products, err := h.products.Search(r.Context(), query)
	if err != nil {
		h.log.Error("product search failed", zap.String("query", query), zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	response.Success(w, "Products retrieved", products)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.products.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		h.log.Error("product fetch failed", zap.Uint("product_id", id), zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	response.Success(w, "Product retrieved", p)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		response.BadRequest(w, "Validation failed", validationErrors)
		return
	}

	p, err := h.products.Create(r.Context(), actor, product.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		h.log.Error("product creation failed", zap.Uint("actor_id", actor.ID), zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	response.Created(w, "Product created", p)
}

// Update handles PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		response.BadRequest(w, "Validation failed", validationErrors)
		return
	}

	p, err := h.products.Update(r.Context(), actor, id, product.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		h.handleMutationError(w, err, id, actor.ID, "update")
		return
	}

	response.Success(w, "Product updated", p)
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), actor, id); err != nil {
		h.handleMutationError(w, err, id, actor.ID, "delete")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) handleMutationError(w http.ResponseWriter, err error, productID, actorID uint, operation string) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	case errors.Is(err, product.ErrNotOwner):
		response.Forbidden(w, "Not enough permissions to modify this product")
	case errors.Is(err, product.ErrNoFieldsToUpdate):
		response.BadRequest(w, "No fields to update", nil)
	default:
		h.log.Error("product "+operation+" failed",
			zap.Uint("product_id", productID),
			zap.Uint("actor_id", actorID),
			zap.Error(err),
		)
		response.InternalError(w, "Internal server error")
	}
}

// parseIDParam reads the {id} chi route param; a malformed id is reported as
// not found, matching how a nonexistent row behaves.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.NotFound(w, "Resource not found")
		return 0, false
	}
	return uint(id), true
}
