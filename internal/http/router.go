package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/goals-api/internal/auth"
	"github.com/redmonkez12/goals-api/internal/config"
	"github.com/redmonkez12/goals-api/internal/goal"
	"github.com/redmonkez12/goals-api/internal/httputil"
	"github.com/redmonkez12/goals-api/internal/logging"
	"github.com/redmonkez12/goals-api/internal/ratelimit"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth           *auth.Handler
	AuthMiddleware *auth.Middleware
	Goal           *goal.Handler
	Limiter        ratelimit.Limiter
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.TrustedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Content-Length", "Retry-After"},
			MaxAge:         300, // 5 minutes
		}))
	}

	r.Use(SecurityHeaders(cfg.Server.IsDevelopment()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Compress(5))

	r.Get("/health", handleHealth)

	// Swagger UI is only mounted in development
	if cfg.Server.IsDevelopment() {
		logger.Info("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	limiter := h.Limiter
	if limiter == nil {
		limiter = ratelimit.Noop{}
	}

	r.Route("/users", func(r chi.Router) {
		r.With(ratelimit.PerIP(limiter, "signup")).Post("/signup", h.Auth.SignUp)
		r.With(ratelimit.PerIP(limiter, "signin")).Post("/signin", h.Auth.SignIn)
		r.With(h.AuthMiddleware.RequireAuth).Get("/me", h.Auth.Me)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware.RequireAuth)
		r.Post("/goals", h.Goal.Create)
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
