package middleware

import (
	"context"
	"errors"
	"net/http"

	"mercato-be/internal/auth"
	"mercato-be/internal/transport/response"
	"mercato-be/internal/user"
	"mercato-be/internal/utils"
)

type contextKey string

const currentUserKey contextKey = "currentUser"

// CurrentUser returns the authenticated user placed in the context by
// RequireAuth.
func CurrentUser(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(currentUserKey).(*user.User)
	return u, ok
}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// RequireAuth resolves the bearer token to an active user and stores it in
// the request context. Missing, invalid or expired tokens get a 401 with a
// WWW-Authenticate challenge; inactive accounts a 400.
func RequireAuth(users user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractAccessToken(r)
			if token == "" {
				response.Unauthorized(w, "Missing authorization token")
				return
			}

			u, err := users.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, user.ErrInactiveAccount):
					response.BadRequest(w, user.ErrInactiveAccount.Error(), nil)
				case errors.Is(err, user.ErrUnauthorized):
					response.Unauthorized(w, "Could not validate credentials")
				default:
					// Lookup infrastructure failed; not a credentials problem.
					response.InternalError(w, "Internal server error")
				}
				return
			}

			ctx := WithUser(r.Context(), u)
			ctx = utils.SetUserContext(ctx, u.ID, u.Email, string(u.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles gates a route to the given role set. Must run after
// RequireAuth.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}

			if err := user.RequireRole(u, roles...); err != nil {
				response.Forbidden(w, "Insufficient privileges")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
