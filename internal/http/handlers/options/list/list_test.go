package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/finher/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]*models.FundingOption, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*models.FundingOption)
	return res, args.Error(1)
}

func TestOptionsListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		mockRes        []*models.FundingOption
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "options",
			mockRes:        []*models.FundingOption{{ID: "o-1", Name: "Mudra Yojana", ApplicationLink: "https://www.mudra.org.in/"}},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Mudra Yojana"`,
		},
		{
			name:           "no options",
			expectedStatus: http.StatusOK,
			expectedBody:   `"data":[]`,
		},
		{
			name:           "storage error",
			mockErr:        errors.New("db"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Error fetching alternative funding options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("List", mock.Anything).Return(tt.mockRes, tt.mockErr).Once()

			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/funding-options", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
