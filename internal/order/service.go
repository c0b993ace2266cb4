package order

import (
	"context"
	"sort"

	"mercato-be/internal/logger"
	"mercato-be/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID uint, shipping ShippingDetails, cart []CartItem) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetForUser(ctx context.Context, orderID, userID uint) (*Order, error)
}

type service struct {
	repo    Repository
	created metrics.Counter
	failed  metrics.Counter
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create runs the order transaction: validate the cart against the live
// catalog, snapshot prices into line items, and persist everything
// atomically. Product rows are not locked; a racing price update may or may
// not be reflected, and the snapshot taken here is the contract.
func (s *service) Create(ctx context.Context, userID uint, shipping ShippingDetails, cart []CartItem) (*Order, error) {
	log := logger.FromCtx(ctx)

	if len(cart) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := uniqueProductIDs(cart)

	products, err := s.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(products) < len(ids) {
		missing := make([]uint, 0, len(ids)-len(products))
		for _, id := range ids {
			if _, ok := products[id]; !ok {
				missing = append(missing, id)
			}
		}
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return nil, &ProductsNotFoundError{IDs: missing}
	}

	var total float64
	items := make([]OrderItem, 0, len(cart))
	for _, line := range cart {
		p := products[line.ProductID]
		total += p.Price * float64(line.Quantity)
		items = append(items, OrderItem{
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: p.Price,
			Product: ProductRef{
				ID:       p.ID,
				Name:     p.Name,
				ImageURL: p.ImageURL,
			},
		})
	}

	o := &Order{
		UserID:          &userID,
		TotalPrice:      total,
		ShippingDetails: shipping,
		Status:          StatusPending,
		Items:           items,
	}

	timer := metrics.StartTimer()
	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		s.failed.Inc()
		log.Error("order persistence failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	s.created.Inc()

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Uint("user_id", userID),
		zap.Float64("total_price", o.TotalPrice),
		zap.Int("items", len(o.Items)),
		zap.Duration("tx_duration", timer.Duration()),
		zap.Uint64("orders_total", s.created.Load()),
	)

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.GetOrdersByUser(ctx, userID)
}

func (s *service) GetForUser(ctx context.Context, orderID, userID uint) (*Order, error) {
	return s.repo.GetOrderForUser(ctx, orderID, userID)
}

// uniqueProductIDs dedupes cart lines so the batch lookup and the missing-id
// check both operate on a set.
func uniqueProductIDs(cart []CartItem) []uint {
	seen := make(map[uint]struct{}, len(cart))
	ids := make([]uint, 0, len(cart))
	for _, line := range cart {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}
