package group

import (
	sales "sales-report/src/sales/lib"
)

// Group buckets sale records by YearMonth and remembers the order in which
// each month was first seen.
type Group struct {
	months  []sales.YearMonth
	records map[sales.YearMonth][]sales.SaleRecord
}

func New() *Group {
	return &Group{
		months:  []sales.YearMonth{},
		records: make(map[sales.YearMonth][]sales.SaleRecord),
	}
}

func FromRecords(records []sales.SaleRecord) *Group {
	g := New()
	g.AddRecords(records)
	return g
}

func (g *Group) AddRecords(records []sales.SaleRecord) {
	for _, record := range records {
		g.Add(record)
	}
}

func (g *Group) Add(record sales.SaleRecord) {
	ym := record.YearMonth()
	if _, exists := g.records[ym]; !exists {
		g.months = append(g.months, ym)
	}
	g.records[ym] = append(g.records[ym], record)
}

func (g *Group) Get(yearMonth sales.YearMonth) []sales.SaleRecord {
	return g.records[yearMonth]
}

// Months returns a copy of the month keys in first-seen order.
func (g *Group) Months() []sales.YearMonth {
	months := make([]sales.YearMonth, len(g.months))
	copy(months, g.months)
	return months
}

func (g *Group) Len() int {
	return len(g.months)
}
