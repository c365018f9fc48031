package verifyotp

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

	"github.com/magabrotheeeer/finher/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ConfirmPasswordReset(ctx context.Context, email, passcode, newPassword string) error {
	return m.Called(ctx, email, passcode, newPassword).Error(0)
}

func TestVerifyOTPHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	const validBody = `{"email":"ada@example.com","otpCode":"123456","newPassword":"n3wpassword"}`

	tests := []struct {
		name        string
		body        string
		callService bool
		mockErr     error
		wantStatus  int
		wantBody    string
	}{
		{"reset", validBody, true, nil, http.StatusOK, "Password reset successful"},
		{"wrong code", validBody, true, models.ErrInvalidPasscode, http.StatusBadRequest, "Invalid OTP"},
		{"unknown email", validBody, true, models.ErrUnknownEmail, http.StatusBadRequest, "Invalid OTP"},
		{"expired", validBody, true, models.ErrPasscodeExpired, http.StatusBadRequest, "OTP expired"},
		{"storage failure", validBody, true, errors.New("timeout"), http.StatusInternalServerError, "Error verifying OTP"},
		{
			"malformed code is a wrong code",
			`{"email":"ada@example.com","otpCode":"12ab","newPassword":"n3wpassword"}`,
			true, models.ErrInvalidPasscode, http.StatusBadRequest, "Invalid OTP",
		},
		{
			"missing code",
			`{"email":"ada@example.com","newPassword":"n3wpassword"}`,
			false, nil, http.StatusUnprocessableEntity, "field otpCode is a required field",
		},
		{
			"password longer than 72 bytes",
			`{"email":"ada@example.com","otpCode":"123456","newPassword":"` + strings.Repeat("п", 40) + `"}`,
			false, nil, http.StatusUnprocessableEntity, "field newPassword must be at most 72 bytes long",
		},
		{
			"short password",
			`{"email":"ada@example.com","otpCode":"123456","newPassword":"abc"}`,
			false, nil, http.StatusUnprocessableEntity, "field newPassword must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.callService {
				svc.On("ConfirmPasswordReset", mock.Anything, "ada@example.com", mock.Anything, "n3wpassword").
					Return(tt.mockErr).Once()
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-otp", strings.NewReader(tt.body))
			New(log, svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
