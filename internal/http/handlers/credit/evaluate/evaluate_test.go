package evaluate

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/finher/internal/models"
	"github.com/magabrotheeeer/finher/internal/services/credit"
)

func TestEvaluateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(logger, credit.Evaluate)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		wantScore      int
		wantRec        string
		wantError      string
	}{
		{
			name: "strong applicant",
			body: `{"entrepreneurName":"Anita Verma","amountRequested":50000,"purpose":"business growth",
				"businessRevenue":2000000,"businessAge":6,"collateralValue":80000}`,
			expectedStatus: http.StatusOK,
			wantScore:      850,
			wantRec:        credit.RecommendationEligible,
		},
		{
			name:           "large startup request",
			body:           `{"entrepreneurName":"Jo","amountRequested":900000,"purpose":"new startup"}`,
			expectedStatus: http.StatusOK,
			wantScore:      390,
			wantRec:        credit.RecommendationAlternative,
		},
		{
			name:           "missing amount",
			body:           `{"entrepreneurName":"Jo","purpose":"x"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			wantError:      "field amountRequested is a required field",
		},
		{
			name:           "negative revenue",
			body:           `{"entrepreneurName":"Jo","amountRequested":10,"purpose":"x","businessRevenue":-1}`,
			expectedStatus: http.StatusUnprocessableEntity,
			wantError:      "field businessRevenue must not be less than 0",
		},
		{
			name:           "amount as string",
			body:           `{"entrepreneurName":"Jo","amountRequested":"lots","purpose":"x"}`,
			expectedStatus: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/credit-evaluation", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp struct {
				Status string                   `json:"status"`
				Error  string                   `json:"error"`
				Data   *models.CreditEvaluation `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Equal(t, "Error", resp.Status)
				assert.Equal(t, tt.wantError, resp.Error)
				return
			}
			require.NotNil(t, resp.Data)
			assert.Equal(t, tt.wantScore, resp.Data.CreditScore)
			assert.Equal(t, tt.wantRec, resp.Data.Recommendation)
		})
	}
}

func TestEvaluateHandler_Panic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(logger, func(models.CreditInput) models.CreditEvaluation { panic("boom") })

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/credit-evaluation",
		strings.NewReader(`{"entrepreneurName":"Jo","amountRequested":1,"purpose":"x"}`)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error evaluating credit")
}
