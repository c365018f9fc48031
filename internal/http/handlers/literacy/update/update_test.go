package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/finher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id string, in models.LiteracyResourceInput, actor access.Actor) (*models.LiteracyResource, error) {
	args := m.Called(ctx, id, in, actor)
	res, _ := args.Get(0).(*models.LiteracyResource)
	return res, args.Error(1)
}

func TestLiteracyUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	actor := access.Actor{UserID: "u-1", Role: models.RoleUser}
	const body = `{"title":"Credit basics","description":"What is a score"}`
	input := models.LiteracyResourceInput{Title: "Credit basics", Description: "What is a score"}

	tests := []struct {
		name           string
		body           string
		actor          *access.Actor
		mockRes        *models.LiteracyResource
		mockErr        error
		callService    bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "updated",
			body:           body,
			actor:          &actor,
			mockRes:        &models.LiteracyResource{ID: "l-1", Title: "Credit basics", ResourceType: models.ResourceArticle},
			callService:    true,
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Credit basics"`,
		},
		{name: "unauthenticated", body: body, expectedStatus: http.StatusUnauthorized, expectedBody: "user identification missing"},
		{
			name: "seeded resource is admin only", body: body, actor: &actor, mockErr: models.ErrNotAuthorized, callService: true,
			expectedStatus: http.StatusForbidden, expectedBody: "Not authorized to update this resource",
		},
		{
			name: "not found", body: body, actor: &actor, mockErr: models.ErrNotFound, callService: true,
			expectedStatus: http.StatusNotFound, expectedBody: "Resource not found",
		},
		{
			name: "storage error", body: body, actor: &actor, mockErr: errors.New("db"), callService: true,
			expectedStatus: http.StatusInternalServerError, expectedBody: "Error updating financial literacy resource",
		},
		{
			name: "bad url", body: `{"title":"t","description":"d","url":"not a url"}`, actor: &actor,
			expectedStatus: http.StatusUnprocessableEntity, expectedBody: "field url must be a valid url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.callService {
				svc.On("Update", mock.Anything, "l-1", input, actor).Return(tt.mockRes, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPut, "/api/financial-literacy/l-1", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "l-1")
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.actor != nil {
				ctx = middlewarectx.WithActor(ctx, *tt.actor)
			}

			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
