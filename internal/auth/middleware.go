// internal/auth/middleware.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"webhooks-api/internal/httperr"
	"webhooks-api/internal/model"
)

type contextKey string

const UserKey contextKey = "current_user"

var (
	ErrNotAuthenticated = httperr.New(http.StatusUnauthorized, "Not authenticated").WithHeader("WWW-Authenticate", "Bearer")
	ErrBadCredentials   = httperr.New(http.StatusForbidden, "Could not validate credentials")
	ErrUserNotFound     = httperr.New(http.StatusNotFound, "User not found")
	ErrInactiveUser     = httperr.New(http.StatusBadRequest, "Inactive user")
)

// UserStore resolves token subjects to users.
type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// JWTAuthMiddleware resolves the bearer token to an active user and stores it in the context.
// Failures that are not auth outcomes are logged with their cause before the 500 is written.
func JWTAuthMiddleware(users UserStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := CurrentUser(r, users)
			if err != nil {
				if httperr.Status(err) >= http.StatusInternalServerError {
					logger.Error("current user lookup failed", zap.String("path", r.URL.Path), zap.Error(err))
				}
				httperr.Write(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser authenticates r against users.
func CurrentUser(r *http.Request, users UserStore) (*model.User, error) {
	header := r.Header.Get("Authorization")
	scheme, tokenStr, _ := strings.Cut(header, " ")
	if header == "" || !strings.EqualFold(scheme, "Bearer") {
		return nil, ErrNotAuthenticated
	}

	// An empty bearer token is a credential failure, not a missing header.
	userID, err := ValidateToken(tokenStr)
	if err != nil {
		return nil, ErrBadCredentials
	}

	user, err := users.GetUser(r.Context(), userID)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

// GetUser extracts the authenticated user from context
func GetUser(ctx context.Context) *model.User {
	if user, ok := ctx.Value(UserKey).(*model.User); ok {
		return user
	}
	return nil
}
