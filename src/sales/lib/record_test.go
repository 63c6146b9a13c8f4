package sales

import (
	"testing"
)

func TestExtractYearMonth(t *testing.T) {
	expected := YearMonth("2023-07")
	result := ExtractYearMonth("2023-07-01")
	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestExtractYearMonth_NoDay(t *testing.T) {
	expected := YearMonth("2023-07")
	result := ExtractYearMonth("2023-07")
	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestExtractYearMonth_NoHyphen(t *testing.T) {
	expected := YearMonth("20230701-")
	result := ExtractYearMonth("20230701")
	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestSaleRecord_Revenue(t *testing.T) {
	record := SaleRecord{Date: "2024-01-03", Item: "Pen", Price: 2.5, Quantity: 4}
	if record.Revenue() != 10 {
		t.Errorf("Revenue = %f, expected 10", record.Revenue())
	}
	if record.YearMonth() != "2024-01" {
		t.Errorf("YearMonth = %s, expected 2024-01", record.YearMonth())
	}
}
