// Package list реализует HTTP-обработчик поиска обучающих материалов.
//
// Параметр search ищет подстроку в заголовке и описании без учёта регистра.
// Пустой search возвращает все материалы, новые первыми.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finher/internal/http/response"
	"github.com/magabrotheeeer/finher/internal/lib/sl"
	"github.com/magabrotheeeer/finher/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Search(ctx context.Context, search string) ([]*models.LiteracyResource, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поиск обучающих материалов
// @Tags FinancialLiteracy
// @Produce  json
// @Param search query string false "Подстрока для поиска"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse
// @Router /api/financial-literacy [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.literacy.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	search := strings.TrimSpace(r.URL.Query().Get("search"))
	res, err := h.service.Search(r.Context(), search)
	if err != nil {
		log.Error("failed to search literacy resources", sl.Err(err), slog.String("search", search))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error fetching financial literacy resources"))
		return
	}
	if res == nil {
		res = []*models.LiteracyResource{}
	}

	render.JSON(w, r, response.StatusOKWithData(res))
}
