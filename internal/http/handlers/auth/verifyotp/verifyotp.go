// Package verifyotp реализует HTTP-обработчик подтверждения сброса пароля одноразовым кодом.
package verifyotp

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
	Email       string `json:"email" validate:"required,email"`
	OTPCode     string `json:"otpCode" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,maxbytes=72"`
}

type Service interface {
	ConfirmPasswordReset(ctx context.Context, email, passcode, newPassword string) error
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
// @Summary Сброс пароля по одноразовому коду
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Email, код и новый пароль"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Неверный или просроченный код"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/auth/verify-otp [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verifyotp"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}

	err := h.service.ConfirmPasswordReset(r.Context(), req.Email, req.OTPCode, req.NewPassword)
	switch {
	case errors.Is(err, models.ErrPasscodeExpired):
		log.Info("passcode expired")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("OTP expired"))
		return
	case errors.Is(err, models.ErrInvalidPasscode), errors.Is(err, models.ErrUnknownEmail):
		log.Info("passcode rejected", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid OTP"))
		return
	case err != nil:
		log.Error("failed to reset password", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error verifying OTP"))
		return
	}

	log.Info("password reset")
	render.JSON(w, r, response.OKWithMessage("Password reset successful"))
}
