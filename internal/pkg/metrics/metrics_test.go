package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesLedgerCollectors(t *testing.T) {
	metrics.RecordEventAppended("Approve")
	metrics.RecordRejection("forbidden")
	metrics.RecordHTTPRequest(http.MethodPost, "/api/v1/orders/:id/events", "204", 0.01)
	metrics.SetOrdersByState(map[string]int64{"Create": 3, "Approve": 1})

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `ledger_events_appended_total{event_type="Approve"}`)
	assert.Contains(t, body, `ledger_rejections_total{class="forbidden"}`)
	assert.Contains(t, body, `ledger_orders_by_state{state="Create"} 3`)
	assert.Contains(t, body, `http_requests_total{endpoint="/api/v1/orders/:id/events",method="POST",status="204"}`)
}

func TestSetOrdersByState_DropsStaleStates(t *testing.T) {
	metrics.SetOrdersByState(map[string]int64{"Dispute": 2})
	metrics.SetOrdersByState(map[string]int64{"ResolveDispute": 2})

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.NotContains(t, rec.Body.String(), `ledger_orders_by_state{state="Dispute"}`)
	assert.Contains(t, rec.Body.String(), `ledger_orders_by_state{state="ResolveDispute"} 2`)
}
