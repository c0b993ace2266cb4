package category

import (
	"context"
	"strings"

	"mercato-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, name string) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Create(ctx context.Context, name string) (*Category, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	c, err := s.repo.Create(ctx, name)
	if err != nil {
		// A concurrent insert can still trip the unique index.
		if strings.Contains(err.Error(), "categories_name_key") {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	logger.FromCtx(ctx).Info("category created",
		zap.Uint("category_id", c.ID),
		zap.String("name", c.Name),
	)

	return c, nil
}
