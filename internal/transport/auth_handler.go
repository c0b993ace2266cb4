package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"mercato-be/internal/transport/response"
	"mercato-be/internal/user"

	"go.uber.org/zap"
)

type AuthHandler struct {
	users user.Service
	log   *zap.Logger
}

func NewAuthHandler(users user.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: log}
}

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name"`
	Role     string  `json:"role" validate:"omitempty,oneof=customer vendor"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	IsActive bool    `json:"is_active"`
	Role     string  `json:"role"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		IsActive: u.IsActive,
		Role:     string(u.Role),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		response.BadRequest(w, "Validation failed", validationErrors)
		return
	}

	u, err := h.users.Register(r.Context(), req.Email, req.Password, req.FullName, user.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailExists):
			response.BadRequest(w, "Email already registered", nil)
		case errors.Is(err, user.ErrInvalidRole):
			response.BadRequest(w, "Role cannot be assigned at registration", nil)
		default:
			h.log.Error("registration failed", zap.Error(err))
			response.InternalError(w, "Internal server error")
		}
		return
	}

	response.Created(w, "Registration successful", toUserResponse(u))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		response.BadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized(w, "Incorrect email or password")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, "Login successful", struct {
		TokenResponse
		User UserResponse `json:"user"`
	}{
		TokenResponse: TokenResponse{AccessToken: token, TokenType: "bearer"},
		User:          toUserResponse(u),
	})
}
