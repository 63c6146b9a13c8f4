package sales

import "strings"

type YearMonth string
type Line = string

type SaleRecord struct {
	Date     string
	Item     string
	Price    float64
	Quantity float64
}

func (r SaleRecord) YearMonth() YearMonth {
	return ExtractYearMonth(r.Date)
}

func (r SaleRecord) Revenue() float64 {
	return r.Quantity * r.Price
}

// ExtractYearMonth keeps the first two hyphen separated components of the
// date. A date without a hyphen keeps an empty month component.
// Example: "2024-01-15" -> "2024-01"
func ExtractYearMonth(date string) YearMonth {
	parts := strings.SplitN(date, "-", 3)
	year := parts[0]
	month := ""
	if len(parts) > 1 {
		month = parts[1]
	}
	return YearMonth(year + "-" + month)
}
