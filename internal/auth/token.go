package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aldisn/contactbook-be/internal/models"
	"github.com/rs/zerolog/log"
)

// UserResolver looks up the account holding a session token.
type UserResolver interface {
	GetUserByToken(token string) (models.User, error)
}

// UserContextKey is the context key for the authenticated user.
type contextKey string

const UserContextKey = contextKey("authUser")

// Middleware creates a middleware for protecting routes. The raw Authorization
// header value is compared byte-for-byte against the stored session token; no
// "Bearer " prefix is stripped.
func Middleware(users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				unauthorized(w)
				return
			}

			user, err := users.GetUserByToken(token)
			if err != nil {
				log.Debug().Err(err).Msg("Rejected request with unknown token")
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFrom returns the authenticated user attached by Middleware.
func CallerFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(models.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"errors": map[string][]string{"message": {"unauthorized"}},
	})
}
