package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/profolio/profolio/internal/health"
	"github.com/profolio/profolio/internal/http/handler"
	"github.com/profolio/profolio/internal/http/middleware"
	"github.com/profolio/profolio/internal/http/response"
	"github.com/profolio/profolio/internal/security"
)

// AuthRateLimiterFunc wraps the auth route group with its stricter limit.
type AuthRateLimiterFunc func(http.Handler) http.Handler

type Dependencies struct {
	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	LookupHandler    *handler.LookupHandler
	JWTManager       *security.JWTManager
	CORSOrigins      []string
	AuthRateLimitRPM int
	APIRateLimitRPM  int
	AuthRateLimiter  AuthRateLimiterFunc
	Readiness        *health.ProbeRunner
	EnableOTelHTTP   bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute).Middleware())

	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(dep.AuthRateLimitRPM, time.Minute).Middleware()
	}

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter).Post("/verify/request", dep.AuthHandler.RequestCode)
			r.With(authLimiter).Post("/verify/confirm", dep.AuthHandler.ConfirmCode)
			r.With(authLimiter).Post("/register", dep.AuthHandler.Register)
			r.With(authLimiter).Post("/login", dep.AuthHandler.Login)
			r.With(middleware.RequireRefresh(dep.JWTManager), authLimiter).Post("/refresh", dep.AuthHandler.Refresh)
		})

		r.Get("/positions", dep.LookupHandler.Positions)
		r.Get("/technologies", dep.LookupHandler.Technologies)

		r.With(middleware.OptionalAuth(dep.JWTManager)).Get("/profiles/{email}", dep.ProfileHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(dep.JWTManager))
			r.Get("/me", dep.ProfileHandler.Me)
			r.Put("/me/profile", dep.ProfileHandler.Update)
			// Image upload needs a higher body limit (6MB) than the global default (1MB)
			r.With(middleware.BodyLimit(6<<20)).Post("/me/profile/image", dep.ProfileHandler.UploadImage)
			r.Delete("/me/profile/image", dep.ProfileHandler.DeleteImage)
		})
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
