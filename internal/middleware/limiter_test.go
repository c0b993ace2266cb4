package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mercato-be/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	send := func(path, remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", path, nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("StrictTierExhausts", func(t *testing.T) {
		addr := "10.0.0.1:1234"
		for i := 0; i < burstStrict; i++ {
			rr := send("/api/auth/login", addr)
			assert.Equal(t, http.StatusOK, rr.Code, "request %d should pass", i)
		}

		rr := send("/api/auth/login", addr)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})

	t.Run("GeneralTierHasLargerBurst", func(t *testing.T) {
		addr := "10.0.0.2:1234"
		for i := 0; i < burstGeneral; i++ {
			rr := send("/api/products", addr)
			assert.Equal(t, http.StatusOK, rr.Code, "request %d should pass", i)
		}

		rr := send("/api/products", addr)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})

	t.Run("ClientsDoNotShareBuckets", func(t *testing.T) {
		for i := 0; i < burstStrict; i++ {
			send("/api/auth/login", "10.0.0.3:1234")
		}

		rr := send("/api/auth/login", "10.0.0.4:1234")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("AuthenticatedUsersHaveOwnQuota", func(t *testing.T) {
		addr := "10.0.0.6:1234"
		for i := 0; i < burstGeneral; i++ {
			send("/api/products", addr)
		}
		assert.Equal(t, http.StatusTooManyRequests, send("/api/products", addr).Code)

		// Same address, but authenticated: bucketed by user id, not IP.
		req := httptest.NewRequest("GET", "/api/orders", nil)
		req.RemoteAddr = addr
		req = req.WithContext(utils.SetUserContext(req.Context(), 42, "amira@example.com", "customer"))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("TiersAreIndependent", func(t *testing.T) {
		addr := "10.0.0.5:1234"
		for i := 0; i < burstStrict; i++ {
			send("/api/auth/login", addr)
		}

		// Auth quota is gone, the general quota is untouched.
		assert.Equal(t, http.StatusTooManyRequests, send("/api/auth/login", addr).Code)
		assert.Equal(t, http.StatusOK, send("/api/products", addr).Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	authReq := httptest.NewRequest("POST", "/api/auth/register", nil)
	limit, burst, tier := resolveRateTier(authReq)
	assert.Equal(t, limitStrict, limit)
	assert.Equal(t, burstStrict, burst)
	assert.Equal(t, "strict", tier)

	generalReq := httptest.NewRequest("GET", "/api/orders", nil)
	limit, burst, tier = resolveRateTier(generalReq)
	assert.Equal(t, limitGeneral, limit)
	assert.Equal(t, burstGeneral, burst)
	assert.Equal(t, "general", tier)
}
