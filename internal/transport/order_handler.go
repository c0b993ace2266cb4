package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mercato-be/internal/middleware"
	"mercato-be/internal/order"
	"mercato-be/internal/transport/response"

	"go.uber.org/zap"
)

type OrderHandler struct {
	orders order.Service
	log    *zap.Logger
}

func NewOrderHandler(orders order.Service, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

type OrderItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items        []OrderItemRequest `json:"items" validate:"dive"`
	AddressLine1 string             `json:"shipping_address_line1" validate:"required"`
	City         string             `json:"shipping_city" validate:"required"`
	PostalCode   string             `json:"shipping_postal_code" validate:"required"`
	Country      string             `json:"shipping_country" validate:"required"`
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		response.BadRequest(w, "Validation failed", validationErrors)
		return
	}

	cart := make([]order.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		cart = append(cart, order.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	shipping := order.ShippingDetails{
		AddressLine1: req.AddressLine1,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	}

	o, err := h.orders.Create(r.Context(), u.ID, shipping, cart)
	if err != nil {
		var notFound *order.ProductsNotFoundError
		switch {
		case errors.Is(err, order.ErrEmptyOrder):
			response.BadRequest(w, "Order must contain at least one item", nil)
		case errors.As(err, &notFound):
			response.NotFound(w, fmt.Sprintf("Products not found: %v", notFound.IDs))
		default:
			h.log.Error("order creation failed", zap.Uint("user_id", u.ID), zap.Error(err))
			response.InternalError(w, "Internal server error")
		}
		return
	}

	response.Created(w, "Order created", o)
}

// List handles GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), u.ID)
	if err != nil {
		h.log.Error("order listing failed", zap.Uint("user_id", u.ID), zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	response.Success(w, "Orders retrieved", orders)
}

// Get handles GET /api/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	o, err := h.orders.GetForUser(r.Context(), id, u.ID)
	if err != nil {
		// Another user's order is indistinguishable from a missing one.
		if errors.Is(err, order.ErrOrderNotFound) {
			response.NotFound(w, "Order not found")
			return
		}
		h.log.Error("order fetch failed",
			zap.Uint("order_id", id),
			zap.Uint("user_id", u.ID),
			zap.Error(err),
		)
		response.InternalError(w, "Internal server error")
		return
	}

	response.Success(w, "Order retrieved", o)
}
