package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule is used when no schedule is configured.
const DefaultReportSchedule = "@every 30s"

type OrderStateSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStateSummaryQuery) ([]queries.GetOrderStateSummaryQueryResponse, error)
}

// OrderStateReportJob periodically publishes the number of orders in each
// state to the ledger_orders_by_state gauge.
type OrderStateReportJob struct {
	handler  OrderStateSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderStateReportJob(handler OrderStateSummaryHandler, schedule string, logger *slog.Logger) *OrderStateReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &OrderStateReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_state_report_job"),
	}
}

// Start schedules the report. An invalid schedule is returned as an error.
func (j *OrderStateReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order state report job started", "schedule", j.schedule)
	return nil
}

// Run reports once. Failures are logged and the previous gauge values kept.
func (j *OrderStateReportJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrderStateSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order state report job failed", "error", err)
		return
	}

	counts := make(map[string]int64, len(summary))
	for _, s := range summary {
		counts[s.State.String()] = s.Orders
	}
	metrics.SetOrdersByState(counts)
}

// Stop waits for a running report to finish.
func (j *OrderStateReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order state report job stopped")
}
