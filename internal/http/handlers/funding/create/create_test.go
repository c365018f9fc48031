package create

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/finher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, in models.FundingRequestInput, actor access.Actor) (*models.FundingRequest, error) {
	args := m.Called(ctx, in, actor)
	res, _ := args.Get(0).(*models.FundingRequest)
	return res, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	actor := access.Actor{UserID: "u-1", Role: models.RoleUser}
	const body = `{"entrepreneurName":"Anita","amountRequested":50000,"purpose":"growth","contactPhone":"+1 555"}`
	input := models.FundingRequestInput{EntrepreneurName: "Anita", AmountRequested: 50000, Purpose: "growth", ContactPhone: "+1 555"}

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
					Return(&models.FundingRequest{ID: "fr-1", EntrepreneurName: "Anita", CreatedBy: "u-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"createdBy":"u-1"`,
		},
		{
			name:           "no actor",
			body:           body,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "user identification missing",
		},
		{
			name:           "owner cannot be forged",
			body:           `{"entrepreneurName":"Anita","amountRequested":1,"purpose":"x","createdBy":"u-2"}`,
			actor:          &actor,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request body",
		},
		{
			name:           "missing purpose",
			body:           `{"entrepreneurName":"Anita","amountRequested":1}`,
			actor:          &actor,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field purpose is a required field",
		},
		{
			name:  "storage error",
			body:  body,
			actor: &actor,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, input, actor).Return(nil, errors.New("db"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Error creating funding request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/funding-requests", strings.NewReader(tt.body))
			if tt.actor != nil {
				req = req.WithContext(middlewarectx.WithActor(req.Context(), *tt.actor))
			}
			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			svc.AssertExpectations(t)
		})
	}
}
