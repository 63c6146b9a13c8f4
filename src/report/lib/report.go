package report

import (
	"context"

	"sales-report/src/common/logger"
	sales "sales-report/src/sales/lib"

	"golang.org/x/sync/errgroup"
)

var log = logger.GetLoggerWithPrefix("[REPORT]")

type Report struct {
	Months           []sales.YearMonth
	TotalSales       float64
	MonthWiseSales   map[sales.YearMonth]float64
	MostPopularItems map[sales.YearMonth]PopularItem
	MostRevenueItems map[sales.YearMonth]RevenueItem
	OrderStats       map[sales.YearMonth]OrderStats
	// TopItems is nil unless a positive k was requested
	TopItems map[sales.YearMonth][]PopularItem
}

// Generate computes every report concurrently. Each goroutine owns one
// field of the result, so no locking is needed.
func Generate(ctx context.Context, records []sales.SaleRecord, topK int) (*Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	report := &Report{}

	run := func(name string, compute func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			compute()
			log.Debugf("Computed %s over %d records", name, len(records))
			return nil
		})
	}

	run("months", func() { report.Months = Months(records) })
	run("total sales", func() { report.TotalSales = TotalSales(records) })
	run("month-wise sales", func() { report.MonthWiseSales = MonthWiseSales(records) })
	run("most popular items", func() { report.MostPopularItems = MostPopularItemsByMonth(records) })
	run("most revenue items", func() { report.MostRevenueItems = MostRevenueItemsByMonth(records) })
	run("order stats", func() { report.OrderStats = OrderStatsForMostPopularItem(records) })
	if topK > 0 {
		run("top items", func() { report.TopItems = TopItemsByMonth(records, topK) })
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("Generated reports for %d records across %d months", len(records), len(report.Months))
	return report, nil
}
