package finher

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/finher/docs"
	"github.com/magabrotheeeer/finher/internal/config"
	"github.com/magabrotheeeer/finher/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/finher/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/finher/internal/http/handlers/auth/sendotp"
	"github.com/magabrotheeeer/finher/internal/http/handlers/auth/verifyotp"
	"github.com/magabrotheeeer/finher/internal/http/handlers/credit/evaluate"
	fundingcreate "github.com/magabrotheeeer/finher/internal/http/handlers/funding/create"
	fundinglist "github.com/magabrotheeeer/finher/internal/http/handlers/funding/list"
	"github.com/magabrotheeeer/finher/internal/http/handlers/funding/mine"
	"github.com/magabrotheeeer/finher/internal/http/handlers/funding/read"
	fundingremove "github.com/magabrotheeeer/finher/internal/http/handlers/funding/remove"
	fundingupdate "github.com/magabrotheeeer/finher/internal/http/handlers/funding/update"
	"github.com/magabrotheeeer/finher/internal/http/handlers/health"
	literacycreate "github.com/magabrotheeeer/finher/internal/http/handlers/literacy/create"
	literacylist "github.com/magabrotheeeer/finher/internal/http/handlers/literacy/list"
	literacyremove "github.com/magabrotheeeer/finher/internal/http/handlers/literacy/remove"
	literacyupdate "github.com/magabrotheeeer/finher/internal/http/handlers/literacy/update"
	optionslist "github.com/magabrotheeeer/finher/internal/http/handlers/options/list"
	"github.com/magabrotheeeer/finher/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/finher/internal/services/auth"
	"github.com/magabrotheeeer/finher/internal/services/credit"
	fundingservice "github.com/magabrotheeeer/finher/internal/services/funding"
	literacyservice "github.com/magabrotheeeer/finher/internal/services/literacy"
	optionsservice "github.com/magabrotheeeer/finher/internal/services/options"
)

// Services собирает зависимости, нужные маршрутам.
type Services struct {
	Auth     *authservice.AuthService
	Funding  *fundingservice.FundingService
	Options  *optionsservice.OptionsService
	Literacy *literacyservice.LiteracyService
	Health   map[string]health.Pinger
	Metrics  *middlewarectx.Metrics
	Exporter http.Handler
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, s Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(cfg.TimeoutHTTP),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           int((5 * time.Minute).Seconds()),
		}),
	)
	if s.Metrics != nil {
		r.Use(s.Metrics.Middleware)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "FinHER API is Running!")
	})
	r.Get("/health", health.New(logger, s.Health).ServeHTTP)

	jwtAuth := middlewarectx.JWTMiddleware(s.Auth, logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RateLimit.Requests, cfg.RateLimit.Window))
			r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
			r.Post("/login", login.New(logger, s.Auth).ServeHTTP)
			r.Post("/send-otp", sendotp.New(logger, s.Auth).ServeHTTP)
			r.Post("/verify-otp", verifyotp.New(logger, s.Auth).ServeHTTP)
		})

		// Открытые конечные точки
		r.Get("/funding-requests", fundinglist.New(logger, s.Funding).ServeHTTP)
		r.Get("/funding-requests/{id}", read.New(logger, s.Funding).ServeHTTP)
		r.Get("/funding-options", optionslist.New(logger, s.Options).ServeHTTP)
		r.Get("/financial-literacy", literacylist.New(logger, s.Literacy).ServeHTTP)
		r.Post("/credit-evaluation", evaluate.New(logger, credit.Evaluate).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(jwtAuth)
			r.Get("/my-funding-requests", mine.New(logger, s.Funding).ServeHTTP)
			r.Post("/funding-requests", fundingcreate.New(logger, s.Funding).ServeHTTP)
			r.Put("/funding-requests/{id}", fundingupdate.New(logger, s.Funding).ServeHTTP)
			r.Delete("/funding-requests/{id}", fundingremove.New(logger, s.Funding).ServeHTTP)

			r.Post("/financial-literacy", literacycreate.New(logger, s.Literacy).ServeHTTP)
			r.Put("/financial-literacy/{id}", literacyupdate.New(logger, s.Literacy).ServeHTTP)
			r.Delete("/financial-literacy/{id}", literacyremove.New(logger, s.Literacy).ServeHTTP)
		})
	})

	exporter := s.Exporter
	if exporter == nil {
		exporter = promhttp.Handler()
	}
	r.Handle("/metrics", exporter)
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
