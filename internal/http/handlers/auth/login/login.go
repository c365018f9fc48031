// Package login реализует HTTP-обработчик для запросов аутентификации пользователей.
//
// В нём определяется структура Request для входных данных, выполняется декодирование JSON,
// проверка и валидация полей, а также делегирование операции входа сервису аутентификации.
// При успешной аутентификации возвращается JSON с JWT и публичными данными пользователя.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/finher/internal/http/request"
	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/models"
)

// Request — структура входных данных для авторизации.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис аутентификации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики аутентификации.
//
// Login возвращает подписанный токен и публичные данные пользователя.
type Service interface {
	Login(ctx context.Context, email, password string) (string, *models.PublicUser, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: request.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по email и паролю. Возвращает JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Успешная авторизация"
// @Failure 400 {object} response.ErrorResponse "Неверные учетные данные или некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		log.Info("login rejected")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid credentials"))
		return
	case err != nil:
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Server error"))
		return
	}

	log.Info("login success", slog.String("user_id", user.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	}))
}
