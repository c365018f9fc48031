// Package evaluate реализует HTTP-обработчик кредитной оценки предпринимателя.
//
// Оценка детерминирована и не сохраняется. Необязательные числовые поля можно не передавать.
package evaluate

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/finher/internal/http/request"
	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/models"
)

// Evaluator считает кредитный балл и рекомендацию.
type Evaluator func(in models.CreditInput) models.CreditEvaluation

type Handler struct {
	log      *slog.Logger
	evaluate Evaluator
	validate *validator.Validate
}

func New(log *slog.Logger, evaluate Evaluator) *Handler {
	return &Handler{
		log:      log,
		evaluate: evaluate,
		validate: request.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Кредитная оценка
// @Tags Credit
// @Accept  json
// @Produce  json
// @Param request body models.CreditInput true "Параметры оценки"
// @Success 200 {object} response.Response "creditScore и recommendation"
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/credit-evaluation [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.credit.evaluate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("credit evaluation panicked", slog.Any("panic", rec))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error evaluating credit"))
		}
	}()

	var req models.CreditInput
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}

	res := h.evaluate(req)
	log.Info("credit evaluated", slog.Int("score", res.CreditScore), slog.String("recommendation", res.Recommendation))
	render.JSON(w, r, response.StatusOKWithData(res))
}
