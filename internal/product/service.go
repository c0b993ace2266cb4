package product

import (
	"context"
	"strings"

	"mercato-be/internal/logger"
	"mercato-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Get(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, actor *user.User, params CreateParams) (*Product, error)
	Update(ctx context.Context, actor *user.User, id uint, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, actor *user.User, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Search(ctx context.Context, query string) ([]Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Product{}, nil
	}
	return s.repo.Search(ctx, query)
}

func (s *service) Get(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor *user.User, params CreateParams) (*Product, error) {
	p, err := s.repo.Create(ctx, actor.ID, params)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Uint("product_id", p.ID),
		zap.Uint("owner_id", actor.ID),
		zap.String("name", p.Name),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, actor *user.User, id uint, params UpdateParams) (*Product, error) {
	if params.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.checkOwnership(ctx, actor, id); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, actor *user.User, id uint) error {
	if err := s.checkOwnership(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product deleted",
		zap.Uint("product_id", id),
		zap.Uint("actor_id", actor.ID),
	)

	return nil
}

// checkOwnership lets admins mutate anything; vendors only their own rows.
func (s *service) checkOwnership(ctx context.Context, actor *user.User, id uint) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if actor.Role == user.RoleVendor && p.OwnerID != actor.ID {
		logger.FromCtx(ctx).Warn("vendor attempted to modify foreign product",
			zap.Uint("product_id", id),
			zap.Uint("owner_id", p.OwnerID),
			zap.Uint("actor_id", actor.ID),
		)
		return ErrNotOwner
	}

	return nil
}
