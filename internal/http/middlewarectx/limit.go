package middlewarectx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finher/internal/http/response"
)

// RateLimitMiddleware ограничивает число запросов с одного адреса за окно window.
// Адрес берётся из RemoteAddr, поэтому перед ним должен стоять middleware.RealIP.
func RateLimitMiddleware(log *slog.Logger, requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			log.Warn("too many requests", slog.String("client", r.RemoteAddr), slog.String("path", r.URL.Path))
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, response.Error("too many requests"))
		}),
	)
}
