package adaptor

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandlerTestService(t *testing.T) *usecase.Service {
	t.Helper()

	repo := repository.NewRepository(zap.NewNop())
	config := &utils.Config{
		Pricing: utils.PricingConfig{
			PricePerSeat: 10,
			Coupons:      map[string]float64{"SAVE10": 10},
		},
	}
	return usecase.NewService(repo, config, zap.NewNop())
}

// decodeEnvelope unpacks the standard JSON response envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, string, json.RawMessage) {
	t.Helper()

	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Status, envelope.Message, envelope.Data
}
