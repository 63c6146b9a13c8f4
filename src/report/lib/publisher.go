package report

import (
	"context"
	"fmt"
	"strings"

	client "sales-report/src/client/lib"
	"sales-report/src/common/logger"
	"sales-report/src/common/middleware"
)

const (
	DATA_TYPE_TOTAL_SALES        = "total_sales"
	DATA_TYPE_MONTH_WISE_SALES   = "month_wise_sales"
	DATA_TYPE_MOST_POPULAR_ITEMS = "most_popular_items"
	DATA_TYPE_MOST_REVENUE_ITEMS = "most_revenue_items"
	DATA_TYPE_ORDER_STATS        = "order_stats"
	DATA_TYPE_TOP_ITEMS          = "top_items"
)

var publisher_logger = logger.GetLoggerWithPrefix("[PUBLISH]")

type Publisher struct {
	exchange  middleware.MessageMiddleware
	clientId  string
	batchSize int
}

func NewPublisher(exchange middleware.MessageMiddleware, clientId string, batchSize int) *Publisher {
	return &Publisher{
		exchange:  exchange,
		clientId:  clientId,
		batchSize: batchSize,
	}
}

// Publish sends every report as batches of payload lines followed by an EOF
// message for that report's data type.
func (p *Publisher) Publish(ctx context.Context, r *Report) error {
	payloads := Payloads(r)

	for _, dataType := range dataTypes(r) {
		batches := client.SplitInBatches(payloads[dataType], p.batchSize)
		for _, batch := range batches {
			msg := middleware.NewMessage(dataType, p.clientId, batch.Items, false)
			if err := p.send(ctx, msg); err != nil {
				return err
			}
		}

		if err := p.send(ctx, middleware.NewEofMessage(dataType, p.clientId)); err != nil {
			return err
		}
		publisher_logger.Infof("Published %s in %d batch(es) for %s", dataType, len(batches), p.clientId)
	}

	return nil
}

func (p *Publisher) send(ctx context.Context, msg *middleware.Message) error {
	msgBytes, err := msg.ToBytes()
	if err != nil {
		return err
	}

	if result := p.exchange.Send(ctx, msgBytes); result != middleware.MessageMiddlewareSuccess {
		return fmt.Errorf("problem while publishing %s for %s: %s", msg.DataType, msg.ClientId, result)
	}
	return nil
}

func dataTypes(r *Report) []string {
	types := []string{
		DATA_TYPE_TOTAL_SALES,
		DATA_TYPE_MONTH_WISE_SALES,
		DATA_TYPE_MOST_POPULAR_ITEMS,
		DATA_TYPE_MOST_REVENUE_ITEMS,
		DATA_TYPE_ORDER_STATS,
	}
	if r.TopItems != nil {
		types = append(types, DATA_TYPE_TOP_ITEMS)
	}
	return types
}

// Payloads flattens each report into comma separated lines, one per month.
// Example: most_popular_items -> ["2024-01,Pen,8"]
func Payloads(r *Report) map[string][]string {
	payloads := map[string][]string{
		DATA_TYPE_TOTAL_SALES:        {formatNumber(r.TotalSales)},
		DATA_TYPE_MONTH_WISE_SALES:   {},
		DATA_TYPE_MOST_POPULAR_ITEMS: {},
		DATA_TYPE_MOST_REVENUE_ITEMS: {},
		DATA_TYPE_ORDER_STATS:        {},
	}
	if r.TopItems != nil {
		payloads[DATA_TYPE_TOP_ITEMS] = []string{}
	}

	for _, ym := range r.Months {
		month := string(ym)
		if total, ok := r.MonthWiseSales[ym]; ok {
			payloads[DATA_TYPE_MONTH_WISE_SALES] = append(payloads[DATA_TYPE_MONTH_WISE_SALES], joinFields(month, formatNumber(total)))
		}
		if item, ok := r.MostPopularItems[ym]; ok {
			payloads[DATA_TYPE_MOST_POPULAR_ITEMS] = append(payloads[DATA_TYPE_MOST_POPULAR_ITEMS], joinFields(month, item.Item, formatNumber(item.Quantity)))
		}
		if item, ok := r.MostRevenueItems[ym]; ok {
			payloads[DATA_TYPE_MOST_REVENUE_ITEMS] = append(payloads[DATA_TYPE_MOST_REVENUE_ITEMS], joinFields(month, item.Item, formatNumber(item.Revenue)))
		}
		if stats, ok := r.OrderStats[ym]; ok {
			payloads[DATA_TYPE_ORDER_STATS] = append(payloads[DATA_TYPE_ORDER_STATS], joinFields(month, formatNumber(stats.Min), formatNumber(stats.Max), formatNumber(stats.Avg)))
		}
		for _, item := range r.TopItems[ym] {
			payloads[DATA_TYPE_TOP_ITEMS] = append(payloads[DATA_TYPE_TOP_ITEMS], joinFields(month, item.Item, formatNumber(item.Quantity)))
		}
	}

	return payloads
}

func joinFields(fields ...string) string {
	return strings.Join(fields, ",")
}
