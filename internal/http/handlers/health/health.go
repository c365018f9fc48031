// Package health отдаёт состояние сервиса и его зависимостей.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
)

// Pinger проверяет доступность зависимости.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	log    *slog.Logger
	checks map[string]Pinger
}

// New создаёт обработчик. checks может быть пустым, тогда проверяется только сам процесс.
func New(log *slog.Logger, checks map[string]Pinger) *Handler {
	return &Handler{
		log:    log,
		checks: checks,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	statuses := make(map[string]string, len(h.checks))
	healthy := true
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.log.Error("dependency is unavailable", slog.String("op", op), slog.String("dependency", name), sl.Err(err))
			statuses[name] = "unavailable"
			healthy = false
			continue
		}
		statuses[name] = "ok"
	}

	if !healthy {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, response.Response{Status: response.StatusError, Error: "service unavailable", Data: statuses})
		return
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status":       "ok",
		"dependencies": statuses,
	}))
}
