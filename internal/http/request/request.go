// Package request декодирует и валидирует JSON-тела запросов.
//
// Неизвестные поля отклоняются. Некорректный JSON превращается в ответ 400,
// нарушение правил валидации в ответ 422 с перечислением полей.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/models"
)

// ErrBadBody возвращается, если тело запроса не удалось разобрать как JSON.
var ErrBadBody = errors.New("invalid request body")

// maxBodyBytes ограничивает размер тела запроса.
const maxBodyBytes = 1 << 20

// NewValidator возвращает валидатор, который называет поля по их json-тегам.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// bcrypt принимает не больше 72 байт, а max считает руны
	_ = v.RegisterValidation("maxbytes", maxBytes)
	return v
}

// maxBytes проверяет, что длина строки в байтах не превышает параметр тега.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Decode читает тело запроса в dst и проверяет его валидатором.
// Возвращает ошибку, обёрнутую в ErrBadBody или models.ErrValidation.
func Decode(r *http.Request, validate *validator.Validate, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrBadBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON object", ErrBadBody)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %w", models.ErrValidation, err)
	}
	return nil
}

// Bind вызывает Decode и при ошибке сам пишет ответ клиенту.
// Возвращает false, если обработчик должен завершиться.
func Bind(w http.ResponseWriter, r *http.Request, log *slog.Logger, validate *validator.Validate, dst any) bool {
	err := Decode(r, validate, dst)
	if err == nil {
		log.Debug("request body decoded and validated")
		return true
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(verrs))
	case errors.Is(err, models.ErrValidation):
		log.Error("validator failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid request"))
	default:
		log.Info("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
	}
	return false
}
