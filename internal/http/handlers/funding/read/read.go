// Package read реализует HTTP-обработчик для получения конкретной заявки по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику для чтения заявки
// и возвращает её в JSON-формате. Отсутствующая заявка даёт 404.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/models"
)

// Handler обрабатывает запросы на получение заявки по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения заявки по ID
}

// Service описывает интерфейс бизнес-логики чтения заявки.
type Service interface {
	Read(ctx context.Context, id string) (*models.FundingRequest, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Заявка по ID
// @Tags FundingRequests
// @Produce  json
// @Param id path string true "ID заявки"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/funding-requests/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.funding.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	res, err := h.service.Read(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.Info("funding request not found", slog.String("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Funding request not found"))
		return
	case err != nil:
		log.Error("failed to read funding request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error fetching funding request details"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(res))
}
