package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	sales "sales-report/src/sales/lib"
)

const (
	TOTAL_SALES_LABEL        = "Total Sales"
	MONTH_WISE_SALES_LABEL   = "Month-wise Sales Totals"
	MOST_POPULAR_ITEMS_LABEL = "Most Popular Items"
	MOST_REVENUE_ITEMS_LABEL = "Most Revenue Generating Items"
	ORDER_STATS_LABEL        = "Order Stats for Most Popular Items"
	TOP_ITEMS_LABEL          = "Top Items"
)

// Render formats the report as labelled lines, months in first-seen order.
func Render(r *Report) []string {
	lines := []string{
		fmt.Sprintf("%s: %s", TOTAL_SALES_LABEL, formatNumber(r.TotalSales)),
		fmt.Sprintf("%s: %s", MONTH_WISE_SALES_LABEL, renderMonths(r.Months, func(ym sales.YearMonth) (string, bool) {
			total, ok := r.MonthWiseSales[ym]
			return formatNumber(total), ok
		})),
		fmt.Sprintf("%s: %s", MOST_POPULAR_ITEMS_LABEL, renderMonths(r.Months, func(ym sales.YearMonth) (string, bool) {
			item, ok := r.MostPopularItems[ym]
			return fmt.Sprintf("{item: %q, quantity: %s}", item.Item, formatNumber(item.Quantity)), ok
		})),
		fmt.Sprintf("%s: %s", MOST_REVENUE_ITEMS_LABEL, renderMonths(r.Months, func(ym sales.YearMonth) (string, bool) {
			item, ok := r.MostRevenueItems[ym]
			return fmt.Sprintf("{item: %q, revenue: %s}", item.Item, formatNumber(item.Revenue)), ok
		})),
		fmt.Sprintf("%s: %s", ORDER_STATS_LABEL, renderMonths(r.Months, func(ym sales.YearMonth) (string, bool) {
			stats, ok := r.OrderStats[ym]
			return fmt.Sprintf("{min: %s, max: %s, avg: %s}", formatNumber(stats.Min), formatNumber(stats.Max), formatNumber(stats.Avg)), ok
		})),
	}

	if r.TopItems != nil {
		lines = append(lines, fmt.Sprintf("%s: %s", TOP_ITEMS_LABEL, renderMonths(r.Months, func(ym sales.YearMonth) (string, bool) {
			items, ok := r.TopItems[ym]
			ranked := make([]string, 0, len(items))
			for _, item := range items {
				ranked = append(ranked, fmt.Sprintf("{item: %q, quantity: %s}", item.Item, formatNumber(item.Quantity)))
			}
			return "[" + strings.Join(ranked, ", ") + "]", ok
		})))
	}

	return lines
}

func Present(out io.Writer, r *Report) error {
	for _, line := range Render(r) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func renderMonths(months []sales.YearMonth, value func(sales.YearMonth) (string, bool)) string {
	entries := []string{}
	for _, ym := range months {
		rendered, ok := value(ym)
		if !ok {
			continue
		}
		entries = append(entries, fmt.Sprintf("%q: %s", ym, rendered))
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

// formatNumber prints the shortest exact form; NaN and +Inf are spelled out.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
