package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// enrichedHeader is the column layout of the enriched output file.
var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
	"API_Category", "API_Brand", "API_Rating", "API_Match",
}

// WriteEnriched saves enriched transactions to a pipe-delimited UTF-8 file,
// one header line then one line per record. Nil enrichment fields render as
// empty strings.
func WriteEnriched(enriched []domain.EnrichedTransaction, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(enrichedHeader, "|"))
	b.WriteByte('\n')

	for _, e := range enriched {
		row := []string{
			e.TransactionID,
			e.Date,
			e.ProductID,
			e.ProductName,
			strconv.Itoa(e.Quantity),
			formatFloat(e.UnitPrice),
			e.CustomerID,
			e.Region,
			stringOrEmpty(e.APICategory),
			stringOrEmpty(e.APIBrand),
			floatOrEmpty(e.APIRating),
			strconv.FormatBool(e.APIMatch),
		}
		b.WriteString(strings.Join(row, "|"))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write enriched file: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
