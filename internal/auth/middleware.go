package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/redmonkez12/goals-api/internal/httputil"
	"github.com/redmonkez12/goals-api/internal/logging"
	"github.com/redmonkez12/goals-api/internal/token"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const UserIDContextKey ContextKey = "user_id"

// Middleware authenticates requests to protected routes
type Middleware struct {
	tokens token.Verifier
	verify *VerifyUser
}

func NewMiddleware(tokens token.Verifier, verify *VerifyUser) *Middleware {
	return &Middleware{tokens: tokens, verify: verify}
}

// RequireAuth checks the bearer token, then runs VerifyUser on its subject so
// tokens for deleted users stop working before they expire.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		scheme, tokenStr, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenStr) == "" {
			httputil.RespondErrorWithCode(w, "invalid authorization header format", httputil.CodeInvalidAuthHeader, http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.Verify(strings.TrimSpace(tokenStr))
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				httputil.RespondErrorWithCode(w, "token has expired", httputil.CodeTokenExpired, http.StatusUnauthorized)
				return
			}
			httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		if err := m.verify.Execute(r.Context(), claims.UserID); err != nil {
			logger.Warn("token subject rejected", "user_id", claims.UserID, "error", err.Error())
			httputil.RespondAppError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}
