package category

import (
	"context"
	"database/sql"

	"mercato-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, name string) (*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, slug
		FROM categories
		ORDER BY name ASC`)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *repository) FindByName(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, slug
		FROM categories
		WHERE name = $1`,
		name,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Slug)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, description, slug`,
		name,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Slug)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert category",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, err
	}

	return &c, nil
}
