package storage

import (
	"context"
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"webhooks-api/internal/httperr"
)

type contextKey string

const SessionKey contextKey = "db_session"

var ErrDatabaseUnavailable = httperr.New(http.StatusServiceUnavailable, "Database unavailable")

// Session is a database connection reserved for one request. *sql.Conn implements it.
type Session interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Close() error
}

type SessionOpener interface {
	OpenSession(ctx context.Context) (Session, error)
}

// OpenSession reserves a pooled connection.
func (s *Storage) OpenSession(ctx context.Context) (Session, error) {
	conn, err := s.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// SessionMiddleware attaches a session to every request and releases it afterwards
func SessionMiddleware(opener SessionOpener, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := opener.OpenSession(r.Context())
			if err != nil {
				logger.Error("open db session failed", zap.String("path", r.URL.Path), zap.Error(err))
				httperr.Write(w, ErrDatabaseUnavailable)
				return
			}
			defer sess.Close()

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(SessionKey).(Session)
	return sess, ok
}
