package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/finher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, in models.LiteracyResourceInput, actor access.Actor) (*models.LiteracyResource, error) {
	args := m.Called(ctx, in, actor)
	res, _ := args.Get(0).(*models.LiteracyResource)
	return res, args.Error(1)
}

func TestLiteracyCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	actor := access.Actor{UserID: "u-1", Role: models.RoleUser}
	const body = `{"title":"Saving","description":"How to save","resourceType":"video","url":"https://example.com/v"}`
	input := models.LiteracyResourceInput{Title: "Saving", Description: "How to save", ResourceType: "video", URL: "https://example.com/v"}

	tests := []struct {
		name           string
		body           string
		actor          *access.Actor
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "created",
			body:  body,
			actor: &actor,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, input, actor).
					Return(&models.LiteracyResource{ID: "l-1", Title: "Saving", ResourceType: "video", CreatedBy: "u-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"resourceType":"video"`,
		},
		{
			name:           "unauthenticated",
			body:           body,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "user identification missing",
		},
		{
			name:           "unknown resource type",
			body:           `{"title":"Saving","description":"d","resourceType":"podcast"}`,
			actor:          &actor,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field resourceType must be one of: article video course",
		},
		{
			name:           "missing description",
			body:           `{"title":"Saving"}`,
			actor:          &actor,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field description is a required field",
		},
		{
			name:  "storage error",
			body:  body,
			actor: &actor,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, input, actor).Return(nil, errors.New("db"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Error creating financial literacy resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/financial-literacy", strings.NewReader(tt.body))
			if tt.actor != nil {
				req = req.WithContext(middlewarectx.WithActor(req.Context(), *tt.actor))
			}
			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
