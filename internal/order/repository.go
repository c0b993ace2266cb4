package order

import (
	"context"
	"database/sql"

	"mercato-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetProductsByIDs(ctx context.Context, ids []uint) (map[uint]ProductInfo, error)
	CreateOrderTx(ctx context.Context, o *Order) error
	GetOrdersByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetOrderForUser(ctx context.Context, orderID, userID uint) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetProductsByIDs fetches every referenced product in one batch lookup.
func (r *repository) GetProductsByIDs(ctx context.Context, ids []uint) (map[uint]ProductInfo, error) {
	int64IDs := make([]int64, len(ids))
	for i, id := range ids {
		int64IDs[i] = int64(id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, image_url
		FROM products
		WHERE id = ANY($1)`,
		pq.Array(int64IDs),
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: batch product lookup failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make(map[uint]ProductInfo, len(ids))
	for rows.Next() {
		var p ProductInfo
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL); err != nil {
			return nil, err
		}
		products[p.ID] = p
	}

	return products, rows.Err()
}

// CreateOrderTx persists the order and all of its items as one atomic unit.
// On any failure the deferred rollback leaves no partial rows visible.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, total_price,
			shipping_address_line1, shipping_city, shipping_postal_code, shipping_country,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		o.UserID, o.TotalPrice,
		o.AddressLine1, o.City, o.PostalCode, o.Country,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("db: failed to insert order", zap.Error(err))
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price_at_time_of_purchase)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.PriceAtPurchase,
		).Scan(&item.ID)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.Uint("order_id", o.ID),
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	return tx.Commit()
}

const orderWithItemsQuery = `
	SELECT o.id, o.user_id, o.total_price,
	       o.shipping_address_line1, o.shipping_city, o.shipping_postal_code, o.shipping_country,
	       o.status, o.created_at, o.updated_at,
	       oi.id, oi.product_id, oi.quantity, oi.price_at_time_of_purchase,
	       p.name, p.image_url
	FROM orders o
	JOIN order_items oi ON oi.order_id = o.id
	JOIN products p ON p.id = oi.product_id`

func (r *repository) GetOrdersByUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		orderWithItemsQuery+` WHERE o.user_id = $1 ORDER BY o.created_at DESC, o.id DESC, oi.id`,
		userID,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list orders",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *repository) GetOrderForUser(ctx context.Context, orderID, userID uint) (*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		orderWithItemsQuery+` WHERE o.id = $1 AND o.user_id = $2 ORDER BY oi.id`,
		orderID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return orders[0], nil
}

// collectOrders folds the joined rows back into orders owning their items.
func collectOrders(rows *sql.Rows) ([]*Order, error) {
	var orders []*Order
	byID := make(map[uint]*Order)

	for rows.Next() {
		var o Order
		var item OrderItem
		err := rows.Scan(
			&o.ID, &o.UserID, &o.TotalPrice,
			&o.AddressLine1, &o.City, &o.PostalCode, &o.Country,
			&o.Status, &o.CreatedAt, &o.UpdatedAt,
			&item.ID, &item.ProductID, &item.Quantity, &item.PriceAtPurchase,
			&item.Product.Name, &item.Product.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		item.OrderID = o.ID
		item.Product.ID = item.ProductID

		current, ok := byID[o.ID]
		if !ok {
			current = &o
			byID[o.ID] = current
			orders = append(orders, current)
		}
		current.Items = append(current.Items, item)
	}

	return orders, rows.Err()
}
