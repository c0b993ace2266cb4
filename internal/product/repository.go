package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mercato-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, ownerID uint, params CreateParams) (*Product, error)
	Update(ctx context.Context, id uint, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productWithOwnerQuery = `
	SELECT p.id, p.name, p.description, p.price, p.image_url, p.category_id, p.owner_id,
	       u.id, u.full_name, u.email
	FROM products p
	JOIN users u ON u.id = p.owner_id`

func scanProductWithOwner(rows *sql.Rows) (Product, error) {
	var p Product
	var o Owner
	err := rows.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.OwnerID,
		&o.ID, &o.FullName, &o.Email,
	)
	if err != nil {
		return Product{}, err
	}
	p.Owner = &o
	return p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, productWithOwnerQuery+" ORDER BY p.id")
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *repository) Search(ctx context.Context, query string) ([]Product, error) {
	term := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx,
		productWithOwnerQuery+` WHERE p.name ILIKE $1 OR p.description ILIKE $1 ORDER BY p.id`,
		term,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: product search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		p, err := scanProductWithOwner(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	var o Owner
	err := r.db.QueryRowContext(ctx, productWithOwnerQuery+" WHERE p.id = $1", id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.OwnerID,
		&o.ID, &o.FullName, &o.Email,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Owner = &o
	return &p, nil
}

func (r *repository) Create(ctx context.Context, ownerID uint, params CreateParams) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, image_url, category_id, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, price, image_url, category_id, owner_id`,
		params.Name, params.Description, params.Price, params.ImageURL, params.CategoryID, ownerID,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.OwnerID)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product",
			zap.String("name", params.Name),
			zap.Uint("owner_id", ownerID),
			zap.Error(err),
		)
		return nil, err
	}

	return &p, nil
}

// Update builds the SET clause from the provided fields only.
func (r *repository) Update(ctx context.Context, id uint, params UpdateParams) (*Product, error) {
	set := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if params.Name != nil {
		addSet("name", *params.Name)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.Price != nil {
		addSet("price", *params.Price)
	}
	if params.ImageURL != nil {
		addSet("image_url", *params.ImageURL)
	}
	if params.CategoryID != nil {
		addSet("category_id", *params.CategoryID)
	}

	if len(set) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $%d
		RETURNING id, name, description, price, image_url, category_id, owner_id`,
		strings.Join(set, ", "), len(args)+1)
	args = append(args, id)

	var p Product
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.OwnerID)

	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update product",
			zap.Uint("product_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete product",
			zap.Uint("product_id", id),
			zap.Error(err),
		)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
