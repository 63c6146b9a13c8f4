package group

import (
	"testing"

	sales "sales-report/src/sales/lib"
)

func TestGroup_AddAndGet(t *testing.T) {
	g := New()
	record1 := sales.SaleRecord{Date: "2023-07-01", Item: "Latte", Price: 9.5, Quantity: 3}
	record2 := sales.SaleRecord{Date: "2023-07-14", Item: "Mocha", Price: 9.0, Quantity: 3}
	ym := sales.YearMonth("2023-07")

	g.Add(record1)
	g.Add(record2)

	records := g.Get(ym)
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}
	if records[0] != record1 || records[1] != record2 {
		t.Errorf("Expected records in insertion order, got %+v", records)
	}
}

func TestFromRecords(t *testing.T) {
	records := []sales.SaleRecord{
		{Date: "2023-07-01", Item: "Latte", Price: 9.5, Quantity: 3},
		{Date: "2023-07-01", Item: "Mocha", Price: 9.0, Quantity: 3},
		{Date: "2023-08-01", Item: "Latte", Price: 9.0, Quantity: 3},
	}
	g := FromRecords(records)

	if g.Len() != 2 {
		t.Errorf("Expected 2 year-month groups, got %d", g.Len())
	}

	if len(g.Get("2023-07")) != 2 {
		t.Errorf("Expected 2 records for 2023-07, got %d", len(g.Get("2023-07")))
	}

	if len(g.Get("2023-08")) != 1 {
		t.Errorf("Expected 1 record for 2023-08, got %d", len(g.Get("2023-08")))
	}
}

func TestMonths_FirstSeenOrder(t *testing.T) {
	g := FromRecords([]sales.SaleRecord{
		{Date: "2024-03-01", Item: "Pen"},
		{Date: "2024-01-01", Item: "Pen"},
		{Date: "2024-03-09", Item: "Ink"},
		{Date: "2023-12-31", Item: "Ink"},
	})

	expected := []sales.YearMonth{"2024-03", "2024-01", "2023-12"}
	months := g.Months()
	if len(months) != len(expected) {
		t.Fatalf("Expected %d months, got %d", len(expected), len(months))
	}
	for i := range expected {
		if months[i] != expected[i] {
			t.Errorf("Month %d: expected %s, got %s", i, expected[i], months[i])
		}
	}

	months[0] = "mutated"
	if g.Months()[0] != "2024-03" {
		t.Errorf("Months must return a copy")
	}
}

func TestGet_UnknownMonth(t *testing.T) {
	g := New()
	if records := g.Get("1999-01"); len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}
