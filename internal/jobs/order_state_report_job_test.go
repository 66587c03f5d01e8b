package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStateSummaryHandler struct {
	mock.Mock
}

func (m *MockOrderStateSummaryHandler) Handle(
	ctx context.Context,
	query queries.GetOrderStateSummaryQuery,
) ([]queries.GetOrderStateSummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOrderStateSummaryQueryResponse), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scrape(t *testing.T) string {
	t.Helper()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestOrderStateReportJob_Run(t *testing.T) {
	handler := &MockOrderStateSummaryHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetOrderStateSummaryQueryResponse{
		{State: order.Create, Orders: 4},
		{State: order.Deliver, Orders: 1},
	}, nil).Once()

	job := jobs.NewOrderStateReportJob(handler, "", discardLogger())
	job.Run(context.Background())

	body := scrape(t)
	assert.Contains(t, body, `ledger_orders_by_state{state="Create"} 4`)
	assert.Contains(t, body, `ledger_orders_by_state{state="Deliver"} 1`)
	handler.AssertExpectations(t)
}

func TestOrderStateReportJob_RunKeepsGaugeOnFailure(t *testing.T) {
	metrics.SetOrdersByState(map[string]int64{"Process": 7})

	handler := &MockOrderStateSummaryHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("database is down")).Once()

	job := jobs.NewOrderStateReportJob(handler, "", discardLogger())
	job.Run(context.Background())

	assert.Contains(t, scrape(t), `ledger_orders_by_state{state="Process"} 7`)
	handler.AssertExpectations(t)
}

func TestOrderStateReportJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewOrderStateReportJob(&MockOrderStateSummaryHandler{}, "every now and then", discardLogger())

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	handler := &MockOrderStateSummaryHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.GetOrderStateSummaryQueryResponse{}, nil).Maybe()

	manager := jobs.NewJobManager(handler, "@every 1h", discardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartFailsOnBadSchedule(t *testing.T) {
	manager := jobs.NewJobManager(&MockOrderStateSummaryHandler{}, "61 * * * * *", discardLogger())

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "order state report job")
}
