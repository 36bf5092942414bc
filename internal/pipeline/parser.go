// Package pipeline implements the sales data transformation stages: parsing
// raw lines into transactions, validating and filtering them, enriching them
// with catalog metadata and writing the enriched output file.
package pipeline

import (
	"strconv"
	"strings"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// fieldCount is the number of pipe-delimited fields in a sales line.
const fieldCount = 8

// LineResult is the outcome of parsing a single line. Lines that cannot be
// parsed are skipped silently by the pipeline but stay visible here so
// tests can observe the reason.
type LineResult struct {
	Tx      domain.Transaction
	Skipped bool
	Reason  string
}

// ParseLines turns raw pipe-delimited lines into transaction candidates,
// preserving input order. Lines with the wrong field count or non-numeric
// quantity/price are skipped without any error or counter; business-rule
// validation happens later in ValidateAndFilter.
func ParseLines(lines []string) ([]domain.Transaction, []LineResult) {
	results := make([]LineResult, 0, len(lines))
	candidates := make([]domain.Transaction, 0, len(lines))

	for _, line := range lines {
		result := parseLine(line)
		results = append(results, result)
		if !result.Skipped {
			candidates = append(candidates, result.Tx)
		}
	}
	return candidates, results
}

func parseLine(line string) LineResult {
	fields := strings.Split(line, "|")
	if len(fields) != fieldCount {
		return LineResult{Skipped: true, Reason: "wrong field count"}
	}

	quantity, err := strconv.Atoi(cleanNumeric(fields[4]))
	if err != nil {
		return LineResult{Skipped: true, Reason: "non-numeric quantity"}
	}
	unitPrice, err := strconv.ParseFloat(cleanNumeric(fields[5]), 64)
	if err != nil {
		return LineResult{Skipped: true, Reason: "non-numeric unit price"}
	}

	// Commas inside product names are unescaped delimiters upstream; strip
	// them rather than guessing at the intended value.
	productName := strings.TrimSpace(strings.ReplaceAll(fields[3], ",", ""))

	return LineResult{Tx: domain.Transaction{
		TransactionID: strings.TrimSpace(fields[0]),
		Date:          strings.TrimSpace(fields[1]),
		ProductID:     strings.TrimSpace(fields[2]),
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    strings.TrimSpace(fields[6]),
		Region:        strings.TrimSpace(fields[7]),
	}}
}

// cleanNumeric strips surrounding whitespace and embedded thousands
// separators before numeric conversion.
func cleanNumeric(field string) string {
	return strings.TrimSpace(strings.ReplaceAll(field, ",", ""))
}
