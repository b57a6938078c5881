package jobs

import (
	"context"
	"log/slog"

	"webshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// lowStockThreshold is the stock level below which the report flags a product.
const lowStockThreshold = 10

// LowStockReportJob reports products that are running low on stock.
// Runs once a day so purchasing can restock before products sell out.
type LowStockReportJob struct {
	handler queries.GetLowStockProductsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockReportJob creates a new job for the daily low stock report.
func NewLowStockReportJob(handler queries.GetLowStockProductsQueryHandler, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock report job to run daily at 06:00.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetLowStockProductsQuery(lowStockThreshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock report job misconfigured", "error", queryErr)
			return
		}

		products, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", handleErr)
			return
		}

		if len(products) == 0 {
			j.logger.InfoContext(ctx, "Low stock report: all products sufficiently stocked")
			return
		}

		for _, p := range products {
			j.logger.WarnContext(ctx, "Product running low on stock",
				"sku", p.SKU,
				"name", p.Name,
				"stock_quantity", p.StockQuantity,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running daily at 06:00)")
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
