// Package sendotp реализует HTTP-обработчик запроса одноразового кода для сброса пароля.
package sendotp

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

type Request struct {
	Email string `json:"email" validate:"required,email"`
}

type Service interface {
	RequestPasswordReset(ctx context.Context, email string) error
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
// @Summary Отправка кода для сброса пароля
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Email пользователя"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 429 {object} response.ErrorResponse "Код уже отправлен недавно"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/auth/send-otp [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.sendotp"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}

	err := h.service.RequestPasswordReset(r.Context(), req.Email)
	switch {
	case errors.Is(err, models.ErrUnknownEmail):
		log.Info("passcode requested for unknown email")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("User not found"))
		return
	case errors.Is(err, models.ErrPasscodeThrottled):
		log.Info("passcode request throttled")
		render.Status(r, http.StatusTooManyRequests)
		render.JSON(w, r, response.Error("OTP was sent recently, please try again later"))
		return
	case err != nil:
		log.Error("failed to issue passcode", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error sending OTP"))
		return
	}

	log.Info("passcode issued")
	render.JSON(w, r, response.OKWithMessage("OTP sent successfully"))
}
