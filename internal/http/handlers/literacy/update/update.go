// Package update реализует HTTP-обработчик изменения обучающего материала.
//
// Материал может изменить его автор или администратор. Материалы из сидера
// не имеют автора и доступны для изменения только администратору.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/finher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finher/internal/http/request"
	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/models"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	Update(ctx context.Context, id string, in models.LiteracyResourceInput, actor access.Actor) (*models.LiteracyResource, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: request.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Изменение обучающего материала
// @Tags FinancialLiteracy
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path string true "ID материала"
// @Param request body models.LiteracyResourceInput true "Материал"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/financial-literacy/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.literacy.update"

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

	var req models.LiteracyResourceInput
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	res, err := h.service.Update(r.Context(), id, req, actor)
	switch {
	case errors.Is(err, models.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Resource not found"))
		return
	case errors.Is(err, models.ErrNotAuthorized):
		log.Warn("update forbidden", slog.String("id", id), slog.String("user_id", actor.UserID))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("Not authorized to update this resource"))
		return
	case err != nil:
		log.Error("failed to update literacy resource", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error updating financial literacy resource"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(res))
}
