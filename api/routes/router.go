package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/terramasterhub/hub-backend/api/controllers"
	"github.com/terramasterhub/hub-backend/api/middleware"
	"github.com/terramasterhub/hub-backend/internal/approvals"
	"github.com/terramasterhub/hub-backend/internal/auth"
	"github.com/terramasterhub/hub-backend/internal/bookings"
	"github.com/terramasterhub/hub-backend/internal/directory"
	"github.com/terramasterhub/hub-backend/internal/profile"
	"github.com/terramasterhub/hub-backend/pkg/auth/session"
	"github.com/terramasterhub/hub-backend/pkg/config"
	"github.com/terramasterhub/hub-backend/pkg/db"
	"github.com/terramasterhub/hub-backend/pkg/enums"
	"github.com/terramasterhub/hub-backend/pkg/logger"
	"github.com/terramasterhub/hub-backend/pkg/metrics"
	pkgredis "github.com/terramasterhub/hub-backend/pkg/redis"
)

// Deps carries everything the router mounts.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *pkgredis.Client
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler

	AuthService      auth.Service
	DirectoryService directory.Service
	ApprovalsService approvals.Service
	BookingsService  bookings.Service
	ProfileService   profile.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis))
	})

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.AuthService, cfg.JWT, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
		r.Use(middleware.RequireUserType(enums.UserTypeAdmin, logg))
		r.Use(middleware.Idempotency(deps.Redis, logg))

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/users", controllers.DirectoryList(deps.DirectoryService, logg))
			r.Get("/summary", controllers.DirectorySummary(deps.DirectoryService, logg))
		})

		r.Route("/approvals", func(r chi.Router) {
			r.Get("/", controllers.ApprovalsList(deps.ApprovalsService, logg))
			r.Get("/{userId}", controllers.ApprovalsDetails(deps.ApprovalsService, logg))
			r.Post("/{userId}/approve", controllers.ApprovalsApprove(deps.ApprovalsService, logg))
		})

		r.Get("/bookings", controllers.BookingsList(deps.BookingsService, logg))
		r.Get("/profile", controllers.ProfileMe(deps.ProfileService, logg))
	})

	return r
}
