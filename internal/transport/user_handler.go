package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"mercato-be/internal/middleware"
	"mercato-be/internal/transport/response"
	"mercato-be/internal/user"

	"go.uber.org/zap"
)

type UserHandler struct {
	users user.Service
	log   *zap.Logger
}

func NewUserHandler(users user.Service, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=255"`
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	response.Success(w, "Profile retrieved", toUserResponse(u))
}

// UpdateMe handles PUT /api/users/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		response.BadRequest(w, "Validation failed", validationErrors)
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), u.ID, user.UpdateProfileParams{FullName: req.FullName})
	if err != nil {
		if errors.Is(err, user.ErrNoFieldsToUpdate) {
			response.BadRequest(w, "No fields to update", nil)
			return
		}
		h.log.Error("profile update failed", zap.Uint("user_id", u.ID), zap.Error(err))
		response.InternalError(w, "Internal server error")
		return
	}

	response.Success(w, "Profile updated", toUserResponse(updated))
}
