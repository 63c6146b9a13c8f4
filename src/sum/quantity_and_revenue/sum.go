package quantityandrevenue

import (
	sales "sales-report/src/sales/lib"
)

type Item struct {
	TotalQuantity float64
	TotalRevenue  float64
	// Quantities holds every per-line quantity, in input order
	Quantities []float64
}

type ItemName = string

type YearMonthSum struct {
	yearMonth sales.YearMonth
	order     []ItemName
	items     map[ItemName]Item
}

func New(yearMonth sales.YearMonth) *YearMonthSum {
	return &YearMonthSum{
		yearMonth: yearMonth,
		order:     []ItemName{},
		items:     make(map[ItemName]Item),
	}
}

func FromRecords(yearMonth sales.YearMonth, records []sales.SaleRecord) *YearMonthSum {
	s := New(yearMonth)
	s.AddRecords(records)
	return s
}

// addRecord folds one line into its item, appending to the quantity history
// in place.
func (s *YearMonthSum) addRecord(record sales.SaleRecord) {
	item, exists := s.items[record.Item]
	if !exists {
		s.order = append(s.order, record.Item)
	}

	item.TotalQuantity += record.Quantity
	item.TotalRevenue += record.Revenue()
	item.Quantities = append(item.Quantities, record.Quantity)
	s.items[record.Item] = item
}

func (s *YearMonthSum) AddRecords(records []sales.SaleRecord) {
	for _, record := range records {
		s.addRecord(record)
	}
}

func (s *YearMonthSum) Get(item ItemName) (Item, bool) {
	found, exists := s.items[item]
	return found, exists
}

// Items returns item names in first-seen order.
func (s *YearMonthSum) Items() []ItemName {
	items := make([]ItemName, len(s.order))
	copy(items, s.order)
	return items
}

func (s *YearMonthSum) YearMonth() sales.YearMonth {
	return s.yearMonth
}
