package order

import "time"

type OrderStatus string

const StatusPending OrderStatus = "pending"

// CartItem is one submitted cart line, before any pricing happens.
type CartItem struct {
	ProductID uint
	Quantity  int
}

type ShippingDetails struct {
	AddressLine1 string `json:"shipping_address_line1"`
	City         string `json:"shipping_city"`
	PostalCode   string `json:"shipping_postal_code"`
	Country      string `json:"shipping_country"`
}

type Order struct {
	ID         uint    `json:"id"`
	UserID     *uint   `json:"user_id,omitempty"`
	TotalPrice float64 `json:"total_price"`
	ShippingDetails
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Items      []OrderItem `json:"items"`
}

// ProductRef is the slice of product data an order item exposes.
type ProductRef struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url,omitempty"`
}

// OrderItem carries the price captured at purchase time; it never tracks
// later product price changes.
type OrderItem struct {
	ID              uint       `json:"id"`
	OrderID         uint       `json:"-"`
	ProductID       uint       `json:"product_id"`
	Quantity        int        `json:"quantity"`
	PriceAtPurchase float64    `json:"price_at_time_of_purchase"`
	Product         ProductRef `json:"product"`
}

// ProductInfo is what the coordinator snapshots from the live catalog.
type ProductInfo struct {
	ID       uint
	Name     string
	Price    float64
	ImageURL *string
}
