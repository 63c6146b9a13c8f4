package sales

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"sales-report/src/common/logger"
)

const (
	FIELDS_PER_LINE = 5

	DATE_FIELD     = 0
	ITEM_FIELD     = 1
	PRICE_FIELD    = 2
	QUANTITY_FIELD = 3
)

var (
	parser_logger = logger.GetLoggerWithPrefix("[PARSER]")

	floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseLines skips the header line and parses every following line.
// Lines without exactly five comma separated fields are dropped.
func ParseLines(lines []Line) []SaleRecord {
	records := make([]SaleRecord, 0, len(lines))
	for i := 1; i < len(lines); i++ {
		record, ok := ParseLine(lines[i])
		if !ok {
			parser_logger.Debugf("Skipping line %d: expected %d fields", i, FIELDS_PER_LINE)
			continue
		}
		records = append(records, record)
	}

	parser_logger.Debugf("Parsed %d sale records out of %d lines", len(records), len(lines))
	return records
}

// ParseText splits raw file contents on newlines and parses them.
func ParseText(data string) []SaleRecord {
	return ParseLines(strings.Split(data, "\n"))
}

// ParseLine parses a single "date,item,price,quantity,<ignored>" line.
// Numeric fields are never rejected: a field without a numeric prefix
// becomes NaN.
func ParseLine(line Line) (SaleRecord, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != FIELDS_PER_LINE {
		return SaleRecord{}, false
	}

	return SaleRecord{
		Date:     strings.TrimSpace(fields[DATE_FIELD]),
		Item:     strings.TrimSpace(fields[ITEM_FIELD]),
		Price:    toFloat(fields[PRICE_FIELD]),
		Quantity: toInt(fields[QUANTITY_FIELD]),
	}, true
}

func toFloat(s string) float64 {
	// Longest leading decimal, "2.5kg" -> 2.5
	prefix := floatPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return math.NaN()
	}
	if strings.HasSuffix(prefix, "Infinity") {
		if strings.HasPrefix(prefix, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	return parsePrefix(prefix)
}

func toInt(s string) float64 {
	// Longest leading integer, "3.9" -> 3
	prefix := intPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return math.NaN()
	}

	// Parsed as float so that values beyond int64 keep their magnitude
	return parsePrefix(prefix)
}

func parsePrefix(prefix string) float64 {
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
