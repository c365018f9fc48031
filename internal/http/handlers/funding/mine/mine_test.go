package mine

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

	"github.com/magabrotheeeer/finher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finher/internal/lib/access"
	"github.com/magabrotheeeer/finher/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListMine(ctx context.Context, actor access.Actor) ([]*models.FundingRequest, error) {
	args := m.Called(ctx, actor)
	res, _ := args.Get(0).([]*models.FundingRequest)
	return res, args.Error(1)
}

func TestMineHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	actor := access.Actor{UserID: "u-1", Role: models.RoleUser}

	newReq := func(withActor bool) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/my-funding-requests", nil)
		if withActor {
			req = req.WithContext(middlewarectx.WithActor(req.Context(), actor))
		}
		return req
	}

	t.Run("returns caller's requests", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListMine", mock.Anything, actor).Return([]*models.FundingRequest{{ID: "a", CreatedBy: "u-1"}}, nil)

		w := httptest.NewRecorder()
		New(logger, svc).ServeHTTP(w, newReq(true))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"createdBy":"u-1"`)
		svc.AssertExpectations(t)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := new(MockService)
		w := httptest.NewRecorder()
		New(logger, svc).ServeHTTP(w, newReq(false))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "ListMine", mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListMine", mock.Anything, actor).Return(nil, errors.New("db"))

		w := httptest.NewRecorder()
		New(logger, svc).ServeHTTP(w, newReq(true))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error fetching user funding requests")
	})
}
