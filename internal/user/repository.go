package user

import (
	"context"
	"database/sql"

	"mercato-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, email, hashedPassword string, fullName *string, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateFullName(ctx context.Context, userID uint, fullName string) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, hashedPassword string, fullName *string, role string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, hashed_password, full_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, hashed_password, full_name, is_active, role`,
		email, hashedPassword, fullName, role,
	).Scan(&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.IsActive, &u.Role)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, hashed_password, full_name, is_active, role
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.IsActive, &u.Role)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) UpdateFullName(ctx context.Context, userID uint, fullName string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET full_name = $1
		WHERE id = $2
		RETURNING id, email, hashed_password, full_name, is_active, role`,
		fullName, userID,
	).Scan(&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.IsActive, &u.Role)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update user profile",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	return &u, nil
}
