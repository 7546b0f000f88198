package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs how many orders are in each status.
type OrderReportJob struct {
	handler  queries.ListOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderReportJob creates a job that runs on schedule, a cron expression
// with a leading seconds field.
func NewOrderReportJob(handler queries.ListOrdersQueryHandler, schedule string, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_report_job"),
	}
}

// Start registers the report with the scheduler and starts it.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderReportJob) Run(ctx context.Context) {
	orders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
		return
	}

	counts := queries.CountByStatus(orders)
	attrs := make([]any, 0, 2*len(counts)+2)
	attrs = append(attrs, "total", len(orders))
	for status, n := range counts {
		attrs = append(attrs, status, n)
	}
	j.logger.InfoContext(ctx, "Order report", attrs...)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
