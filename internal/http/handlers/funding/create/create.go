// Package create реализует HTTP-обработчик для создания заявки на финансирование.
//
// Handler принимает JSON с полями заявки, валидирует его и передаёт сервису
// вместе с пользователем из JWT. Создатель заявки становится её владельцем.
package create

import (
	"context"
	"log/slog"
	"net/http"

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

// Handler обрабатывает запросы на создание заявки.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис заявок на финансирование
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики создания заявки.
type Service interface {
	Create(ctx context.Context, in models.FundingRequestInput, actor access.Actor) (*models.FundingRequest, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: request.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Создание заявки на финансирование
// @Tags FundingRequests
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.FundingRequestInput true "Данные заявки"
// @Success 201 {object} response.Response "Созданная заявка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/funding-requests [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.funding.create"

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

	res, err := h.service.Create(r.Context(), req, actor)
	if err != nil {
		log.Error("failed to create funding request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error creating funding request"))
		return
	}

	log.Info("funding request created", slog.String("id", res.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(res))
}
