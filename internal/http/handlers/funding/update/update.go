// Package update реализует HTTP-обработчик для обновления заявки на финансирование.
//
// Изменять заявку может её владелец или администратор.
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

// Handler обрабатывает запросы на обновление заявки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления заявки.
type Service interface {
	Update(ctx context.Context, id string, in models.FundingRequestInput, actor access.Actor) (*models.FundingRequest, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: request.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Обновление заявки
// @Tags FundingRequests
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path string true "ID заявки"
// @Param request body models.FundingRequestInput true "Новые данные заявки"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Нет прав на изменение"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/funding-requests/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.funding.update"

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

	var req models.FundingRequestInput
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	res, err := h.service.Update(r.Context(), id, req, actor)
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.Info("funding request not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Funding request not found"))
		return
	case errors.Is(err, models.ErrNotAuthorized):
		log.Warn("update forbidden", slog.String("id", id), slog.String("user_id", actor.UserID))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("Not authorized to update this request"))
		return
	case err != nil:
		log.Error("failed to update funding request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error updating funding request"))
		return
	}

	log.Info("funding request updated", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(res))
}
