package sales_test

import (
	"math"
	"testing"

	sales "sales-report/src/sales/lib"

	"github.com/stretchr/testify/require"
)

var linesExample = []string{
	"Date,SKU,Unit Price,Quantity,Total Price",
	"2019-01-01,Death by Chocolate,180,5,900",
	"2019-01-01, Cake Fudge ,150, 1 ,150",
	"2019-02-05,Vanilla Double Scoop,80,4,320",
	"",
}

func TestParseLinesSkipsHeader(t *testing.T) {
	records := sales.ParseLines(linesExample)
	require.Len(t, records, 3)
	require.Equal(t, "Death by Chocolate", records[0].Item)
}

func TestParseLinesTrimsFields(t *testing.T) {
	records := sales.ParseLines(linesExample)
	require.Equal(t, sales.SaleRecord{Date: "2019-01-01", Item: "Cake Fudge", Price: 150, Quantity: 1}, records[1])
}

func TestParseLinesDropsWrongFieldCount(t *testing.T) {
	lines := []string{
		"header",
		"2019-01-01,Pen,2,3",
		"2019-01-01,Pen,2,3,6,extra",
		"2019-01-01,Pen,2,3,6",
	}
	records := sales.ParseLines(lines)
	require.Len(t, records, 1)
}

func TestParseLinesEmpty(t *testing.T) {
	require.Empty(t, sales.ParseLines([]string{}))
	require.Empty(t, sales.ParseLines([]string{"header only"}))
}

func TestParseTextKeepsCarriageReturnInIgnoredField(t *testing.T) {
	records := sales.ParseText("header\r\n2024-03-01,Ink,10,1,10\r\n")
	require.Len(t, records, 1)
	require.Equal(t, float64(1), records[0].Quantity)
}

func TestParseLineNumericPrefixes(t *testing.T) {
	record, ok := sales.ParseLine("2024-01-01,Pen,2.5kg,12abc,x")
	require.True(t, ok)
	require.Equal(t, 2.5, record.Price)
	require.Equal(t, float64(12), record.Quantity)

	record, ok = sales.ParseLine("2024-01-01,Pen,.5,3.9,x")
	require.True(t, ok)
	require.Equal(t, 0.5, record.Price)
	require.Equal(t, float64(3), record.Quantity)

	record, ok = sales.ParseLine("2024-01-01,Pen,-1e2,-7,x")
	require.True(t, ok)
	require.Equal(t, -100.0, record.Price)
	require.Equal(t, float64(-7), record.Quantity)
}

func TestParseLineInfinity(t *testing.T) {
	record, ok := sales.ParseLine("2024-01-01,Pen,Infinity,1,x")
	require.True(t, ok)
	require.True(t, math.IsInf(record.Price, 1))

	record, ok = sales.ParseLine("2024-01-01,Pen,-Infinity,1,x")
	require.True(t, ok)
	require.True(t, math.IsInf(record.Price, -1))
}

func TestParseLineNonNumericBecomesNaN(t *testing.T) {
	record, ok := sales.ParseLine("2024-01-01,Pen,abc,,x")
	require.True(t, ok)
	require.True(t, math.IsNaN(record.Price))
	require.True(t, math.IsNaN(record.Quantity))
	require.True(t, math.IsNaN(record.Revenue()))
}
