package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "hashed_password", "full_name", "is_active", "role"}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	email := "john@example.com"
	hashed := "hashed_password"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users \(email, hashed_password, full_name, role\)`).
			WithArgs(email, hashed, nil, "customer").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, email, hashed, nil, true, "customer"))

		u, err := repo.Create(ctx, email, hashed, nil, "customer")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, email, u.Email)
		assert.True(t, u.IsActive)
		assert.Equal(t, RoleCustomer, u.Role)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "users_email_key"`))

		_, err := repo.Create(ctx, email, hashed, nil, "customer")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "users_email_key")
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, email, hashed, nil, "customer")
		assert.Error(t, err)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	email := "john@example.com"

	t.Run("Success", func(t *testing.T) {
		name := "John Doe"
		mock.ExpectQuery(`SELECT id, email, hashed_password, full_name, is_active, role\s+FROM users\s+WHERE email = \$1`).
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, email, "hashed", name, true, "vendor"))

		u, err := repo.FindByEmail(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, email, u.Email)
		assert.Equal(t, RoleVendor, u.Role)
		require.NotNil(t, u.FullName)
		assert.Equal(t, name, *u.FullName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users`).
			WithArgs(email).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByEmail(ctx, email)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users`).
			WithArgs(email).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FindByEmail(ctx, email)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_UpdateFullName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users\s+SET full_name = \$1\s+WHERE id = \$2`).
			WithArgs("New Name", 1).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "john@example.com", "hashed", "New Name", true, "customer"))

		u, err := repo.UpdateFullName(ctx, 1, "New Name")
		assert.NoError(t, err)
		require.NotNil(t, u.FullName)
		assert.Equal(t, "New Name", *u.FullName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users`).
			WithArgs("New Name", 99).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateFullName(ctx, 99, "New Name")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
