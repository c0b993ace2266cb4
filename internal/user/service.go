package user

import (
	"context"
	"errors"
	"strings"

	"mercato-be/internal/auth"
	"mercato-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password string, fullName *string, role Role) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	Authenticate(ctx context.Context, token string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, params UpdateProfileParams) (*User, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenIssuer
}

func NewService(repo Repository, tokens *auth.TokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, email, password string, fullName *string, role Role) (*User, error) {
	log := logger.FromCtx(ctx)

	if role == "" {
		role = RoleCustomer
	}
	// Admin accounts are provisioned out of band, never via registration.
	if role != RoleCustomer && role != RoleVendor {
		return nil, ErrInvalidRole
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, email, hashed, fullName, string(role))
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	log.Info("user registered",
		zap.Uint("user_id", u.ID),
		zap.String("email", u.Email),
		zap.String("role", string(u.Role)),
	)

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("login failed: email not found", zap.String("email", email))
			return "", nil, ErrInvalidCredentials
		}
		log.Error("login failed: user lookup", zap.String("email", email), zap.Error(err))
		return "", nil, err
	}

	if !auth.CheckPasswordHash(password, u.HashedPassword) {
		log.Warn("login failed: password mismatch", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Email)
	if err != nil {
		log.Error("failed to issue token", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	return token, u, nil
}

// Authenticate resolves a bearer token to an active user record. Token
// failures and unknown subjects both collapse to ErrUnauthorized so callers
// cannot distinguish them.
func (s *service) Authenticate(ctx context.Context, token string) (*User, error) {
	log := logger.FromCtx(ctx)

	subject, err := s.tokens.Validate(token)
	if err != nil {
		log.Warn("token validation failed", zap.Error(err))
		return nil, ErrUnauthorized
	}

	u, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("token subject not found", zap.String("subject", subject))
			return nil, ErrUnauthorized
		}
		log.Error("user lookup failed", zap.String("subject", subject), zap.Error(err))
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrInactiveAccount
	}

	return u, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, params UpdateProfileParams) (*User, error) {
	if params.FullName == nil {
		return nil, ErrNoFieldsToUpdate
	}
	return s.repo.UpdateFullName(ctx, userID, *params.FullName)
}

// RequireRole checks the authenticated user against an allowed role set.
func RequireRole(u *User, allowed ...Role) error {
	for _, role := range allowed {
		if u.Role == role {
			return nil
		}
	}
	return ErrInsufficientRole
}
