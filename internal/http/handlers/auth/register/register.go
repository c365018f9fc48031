// Package register реализует HTTP-обработчик регистрации пользователя.
package register

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

// Request — входные данные для регистрации
type Request struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*models.PublicUser, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: request.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Имя, email и пароль"
// @Success 201 {object} response.Response "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Пользователь уже существует или некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		log.Info("registration rejected", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("User already exists"))
		return
	case err != nil:
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Server error"))
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "User registered successfully",
		"user":    user,
	}))
}
