package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/goals-api/internal/app"
	"github.com/redmonkez12/goals-api/internal/auth"
	"github.com/redmonkez12/goals-api/internal/config"
	"github.com/redmonkez12/goals-api/internal/goal"
	"github.com/redmonkez12/goals-api/internal/logging"
	"github.com/redmonkez12/goals-api/internal/ratelimit"
)

type fixedLimiter struct{ allowed bool }

func (l fixedLimiter) Allow(context.Context, string, string) (ratelimit.Decision, error) {
	return ratelimit.Decision{Allowed: l.allowed}, nil
}

func newTestRouter(t *testing.T, env string, limiter ratelimit.Limiter) http.Handler {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{
		"APP_ENV":            env,
		"STORE":              "memory",
		"PASETO_KEY":         "0123456789abcdef0123456789abcdef",
		"PASSWORD_HASHER":    "bcrypt",
		"BCRYPT_COST":        "4",
		"RATE_LIMIT_ENABLED": "false",
	})
	require.NoError(t, err)

	a, err := app.Build(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	return NewRouter(cfg, Handlers{
		Auth:           auth.NewHandler(a.SignUp, a.SignIn),
		AuthMiddleware: auth.NewMiddleware(a.Tokens, a.Verify),
		Goal:           goal.NewHandler(a.AddGoal, auth.GetUserIDFromContext),
		Limiter:        limiter,
	}, logging.Nop())
}

func send(t *testing.T, h http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_GoalFlow(t *testing.T) {
	r := newTestRouter(t, "prod", nil)

	rec := send(t, r, http.MethodPost, "/users/signup", `{"name":"John Doe","email":"john@doe.com","password":"1234"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = send(t, r, http.MethodPost, "/users/signin", `{"email":"john@doe.com","password":"1234"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var signed auth.SignedUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signed))

	rec = send(t, r, http.MethodGet, "/users/me", "", signed.Token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = send(t, r, http.MethodPost, "/goals", `{"text":"NEW GOAL TEXT"}`, signed.Token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = send(t, r, http.MethodPost, "/goals", `{"text":"NEW GOAL TEXT"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = send(t, r, http.MethodPost, "/goals", `{"text":""}`, signed.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"text required","code":"invalid_goal"}`, rec.Body.String())
}

func TestRouter_HealthAndHeaders(t *testing.T) {
	r := newTestRouter(t, "prod", nil)

	rec := send(t, r, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"api is running"}`, rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'", rec.Header().Get("Content-Security-Policy"))
}

func TestRouter_SwaggerOnlyInDevelopment(t *testing.T) {
	prod := newTestRouter(t, "prod", nil)
	assert.Equal(t, http.StatusNotFound, send(t, prod, http.MethodGet, "/swagger/index.html", "", "").Code)

	dev := newTestRouter(t, "dev", nil)
	assert.Equal(t, http.StatusOK, send(t, dev, http.MethodGet, "/swagger/index.html", "", "").Code)
}

func TestRouter_RateLimitedAuthRoutes(t *testing.T) {
	r := newTestRouter(t, "prod", fixedLimiter{allowed: false})

	rec := send(t, r, http.MethodPost, "/users/signin", `{"email":"john@doe.com","password":"1234"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = send(t, r, http.MethodPost, "/users/signup", `{"name":"John Doe","email":"john@doe.com","password":"1234"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = send(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code, "health is never limited")
}
