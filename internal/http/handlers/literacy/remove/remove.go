// Package remove реализует HTTP-обработчик удаления обучающего материала.
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

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Delete(ctx context.Context, id string, actor access.Actor) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление обучающего материала
// @Tags FinancialLiteracy
// @Security BearerAuth
// @Produce  json
// @Param id path string true "ID материала"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/financial-literacy/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.literacy.remove"

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
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Resource not found"))
		return
	case errors.Is(err, models.ErrNotAuthorized):
		log.Warn("delete forbidden", slog.String("id", id), slog.String("user_id", actor.UserID))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("Not authorized to delete this resource"))
		return
	case err != nil:
		log.Error("failed to delete literacy resource", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error deleting financial literacy resource"))
		return
	}

	log.Info("literacy resource deleted", slog.String("id", id))
	render.JSON(w, r, response.OKWithMessage("Resource deleted successfully"))
}
