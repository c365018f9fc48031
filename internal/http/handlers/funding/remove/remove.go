// Package remove реализует HTTP-обработчик для удаления заявки на финансирование по ID.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/models"
)

// Handler обрабатывает запросы на удаление заявки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления заявки.
type Service interface {
	Delete(ctx context.Context, id string, actor access.Actor) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление заявки
// @Tags FundingRequests
// @Security BearerAuth
// @Produce  json
// @Param id path string true "ID заявки"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Нет прав на удаление"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/funding-requests/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.funding.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor, ok := middlewarectx.ActorFromContext(r.Context())
	if !ok {
		log.Error("user identification missing")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	id := chi.URLParam(r, "id")
	err := h.service.Delete(r.Context(), id, actor)
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.Info("funding request not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Funding request not found"))
		return
	case errors.Is(err, models.ErrNotAuthorized):
		log.Warn("delete forbidden", slog.String("id", id), slog.String("user_id", actor.UserID))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("Not authorized to delete this request"))
		return
	case err != nil:
		log.Error("failed to delete funding request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error deleting funding request"))
		return
	}

	log.Info("funding request deleted", slog.String("id", id))
	render.JSON(w, r, response.OKWithMessage("Funding request deleted successfully"))
}
