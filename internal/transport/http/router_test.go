package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/receipt/handler"
	"tally/internal/receipt/service"
	"tally/internal/receipt/store"
	"tally/pkg/testutil"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(store.NewInMemory(), logger, nil)
	return NewRouter(handler.New(svc, logger), logger, nil)
}

func TestHealthz(t *testing.T) {
	rr := testutil.DoRequest(newRouter(t), testutil.NewRequest(t, http.MethodGet, "/healthz"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", testutil.DecodeJSON(t, rr)["status"])
}

func TestRequestIDPropagatesToResponse(t *testing.T) {
	rr := testutil.DoRequest(newRouter(t), testutil.NewRequest(t, http.MethodGet, "/healthz"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

// Submission and points query through the full middleware chain.
func TestSubmitThenQueryPoints(t *testing.T) {
	router := newRouter(t)

	payload := map[string]any{
		"retailer":     "Target",
		"purchaseDate": "2022-01-01",
		"purchaseTime": "13:01",
		"items": []map[string]string{
			{"shortDescription": "Mountain Dew 12PK", "price": "6.49"},
			{"shortDescription": "Emils Cheese Pizza", "price": "12.25"},
			{"shortDescription": "Knorr Creamy Chicken", "price": "1.26"},
			{"shortDescription": "Doritos Nacho Cheese", "price": "3.35"},
			{"shortDescription": "   Klarbrunn 12-PK 12 FL OZ  ", "price": "12.00"},
		},
		"total": "35.35",
	}

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/receipts/process", payload))
	require.Equal(t, http.StatusCreated, rr.Code)
	id := testutil.DecodeJSON(t, rr)["id"].(string)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/receipts/"+id+"/points"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(28), testutil.DecodeJSON(t, rr)["points"])
}

func TestNonJSONContentTypeRejected(t *testing.T) {
	router := newRouter(t)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/receipts/process", "retailer=Target")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
