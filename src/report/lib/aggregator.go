package report

import (
	"math"

	group "sales-report/src/group/lib"
	sales "sales-report/src/sales/lib"
	quantityandrevenue "sales-report/src/sum/quantity_and_revenue"
	topk "sales-report/src/topk/lib"
)

type PopularItem struct {
	Item     string
	Quantity float64
}

type RevenueItem struct {
	Item    string
	Revenue float64
}

type OrderStats struct {
	Min float64
	Max float64
	Avg float64
}

// TotalSales sums quantity * price over every record.
func TotalSales(records []sales.SaleRecord) float64 {
	total := 0.0
	for _, record := range records {
		total += record.Revenue()
	}
	return total
}

// Months lists the month keys present in records in first-seen order.
func Months(records []sales.SaleRecord) []sales.YearMonth {
	return group.FromRecords(records).Months()
}

func MonthWiseSales(records []sales.SaleRecord) map[sales.YearMonth]float64 {
	totals := make(map[sales.YearMonth]float64)
	for _, record := range records {
		totals[record.YearMonth()] += record.Revenue()
	}
	return totals
}

func MostPopularItemsByMonth(records []sales.SaleRecord) map[sales.YearMonth]PopularItem {
	result := make(map[sales.YearMonth]PopularItem)
	for _, sum := range sumsByMonth(records) {
		top := mostPopular(sum)
		result[sum.YearMonth()] = PopularItem{Item: top.Item, Quantity: top.Value}
	}
	return result
}

func MostRevenueItemsByMonth(records []sales.SaleRecord) map[sales.YearMonth]RevenueItem {
	result := make(map[sales.YearMonth]RevenueItem)
	for _, sum := range sumsByMonth(records) {
		top := mostByValue(sum, totalRevenue)
		result[sum.YearMonth()] = RevenueItem{Item: top.Item, Revenue: top.Value}
	}
	return result
}

// OrderStatsForMostPopularItem computes min, max and average of the
// per-line quantities of each month's most popular item. A month whose
// selected item has no lines (the empty default) is left out.
func OrderStatsForMostPopularItem(records []sales.SaleRecord) map[sales.YearMonth]OrderStats {
	result := make(map[sales.YearMonth]OrderStats)
	for _, sum := range sumsByMonth(records) {
		top := mostPopular(sum)
		item, exists := sum.Get(top.Item)
		if !exists || len(item.Quantities) == 0 {
			continue
		}
		result[sum.YearMonth()] = computeOrderStats(item.Quantities)
	}
	return result
}

// TopItemsByMonth ranks up to k items per month by summed quantity, best
// first. Ties keep first-seen order and NaN sums rank last.
func TopItemsByMonth(records []sales.SaleRecord, k int) map[sales.YearMonth][]PopularItem {
	result := make(map[sales.YearMonth][]PopularItem)
	if k <= 0 {
		return result
	}

	for _, sum := range sumsByMonth(records) {
		toper := topk.NewToper(k, topk.CmpItemRegisters)
		for order, name := range sum.Items() {
			item, _ := sum.Get(name)
			toper.Add(topk.NewItemRegister(name, item.TotalQuantity, order))
		}

		ranked := []PopularItem{}
		for _, reg := range toper.GetTopK() {
			ranked = append(ranked, PopularItem{Item: reg.Item, Quantity: reg.Value})
		}
		result[sum.YearMonth()] = ranked
	}
	return result
}

func sumsByMonth(records []sales.SaleRecord) []*quantityandrevenue.YearMonthSum {
	g := group.FromRecords(records)

	sums := make([]*quantityandrevenue.YearMonthSum, 0, g.Len())
	for _, ym := range g.Months() {
		sums = append(sums, quantityandrevenue.FromRecords(ym, g.Get(ym)))
	}
	return sums
}

func totalQuantity(item quantityandrevenue.Item) float64 {
	return item.TotalQuantity
}

func totalRevenue(item quantityandrevenue.Item) float64 {
	return item.TotalRevenue
}

func mostPopular(sum *quantityandrevenue.YearMonthSum) topk.ItemRegister {
	return mostByValue(sum, totalQuantity)
}

// mostByValue starts from the {"", 0} seed and only lets an item take over
// with a strictly greater value, so the first item to reach the max wins.
func mostByValue(sum *quantityandrevenue.YearMonthSum, value func(quantityandrevenue.Item) float64) topk.ItemRegister {
	seed := topk.NewItemRegister("", 0, topk.SEED_ORDER)
	toper := topk.NewToperWithSource(1, []topk.ItemRegister{seed}, topk.CmpItemRegisters)

	for order, name := range sum.Items() {
		item, _ := sum.Get(name)
		toper.Add(topk.NewItemRegister(name, value(item), order))
	}
	return toper.GetTopK()[0]
}

func computeOrderStats(quantities []float64) OrderStats {
	lowest, highest, total := math.Inf(1), math.Inf(-1), 0.0
	for _, q := range quantities {
		lowest = math.Min(lowest, q)
		highest = math.Max(highest, q)
		total += q
	}

	return OrderStats{
		Min: lowest,
		Max: highest,
		Avg: total / float64(len(quantities)),
	}
}
