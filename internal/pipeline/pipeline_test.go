package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvloznov/sales-analytics/internal/catalog"
	"github.com/dvloznov/sales-analytics/internal/logger"
	"github.com/dvloznov/sales-analytics/internal/report"
)

// stubCatalog is a CatalogService returning canned products or an error.
type stubCatalog struct {
	products []catalog.Product
	err      error
}

func (s *stubCatalog) ListProducts(ctx context.Context, limit int) ([]catalog.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func writeSalesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales_data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestState(t *testing.T, inputPath string) *State {
	t.Helper()
	dir := t.TempDir()
	return &State{
		RunID:        "test-run",
		InputPath:    inputPath,
		EnrichedPath: filepath.Join(dir, "enriched_sales_data.txt"),
		ReportPath:   filepath.Join(dir, "sales_report.txt"),
	}
}

const sampleSalesData = `TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
T001|2024-12-01|P1|Laptop|2|45000.0|C001|North
T002|2024-12-02|P2|Mouse|5|500.0|C002|South
X003|2024-12-02|P3|Keyboard|3|1500.0|C003|East
T004|2024-12-03|P999|Desk|1|2500.0|C004|North
bad line without pipes
`

func TestPipeline_FullRun(t *testing.T) {
	log := logger.NewWithWriter(os.Stderr)
	svc := &stubCatalog{products: []catalog.Product{
		{ID: 1, Title: "iPhone 9", Category: "smartphones", Brand: "Apple", Rating: 4.69},
		{ID: 2, Title: "Wireless Mouse", Category: "peripherals", Brand: "Logi", Rating: 4.2},
	}}

	state := newTestState(t, writeSalesFile(t, sampleSalesData))
	p := NewSalesReportPipeline(log, svc, 100, report.NewRenderer("₹", 5, 10))
	require.NoError(t, p.Execute(context.Background(), state))

	// One malformed line skipped, one invalid prefix rejected.
	assert.Len(t, state.Candidates, 4)
	assert.Len(t, state.Valid, 3)
	assert.Equal(t, 1, state.Summary.Invalid)
	assert.Equal(t, 3, state.Summary.FinalCount)

	// P1 and P2 match the catalog, P999 does not.
	require.Len(t, state.Enriched, 3)
	assert.True(t, state.Enriched[0].APIMatch)
	assert.True(t, state.Enriched[1].APIMatch)
	assert.False(t, state.Enriched[2].APIMatch)

	// Both output files exist and carry the expected shape.
	enrichedData, err := os.ReadFile(state.EnrichedPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(enrichedData), "\n"), "\n"), 4)

	reportData, err := os.ReadFile(state.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(reportData), "SALES ANALYTICS REPORT")
	assert.Contains(t, string(reportData), "Records Processed: 3")
}

func TestPipeline_CatalogFailureDegrades(t *testing.T) {
	log := logger.NewWithWriter(os.Stderr)
	svc := &stubCatalog{err: errors.New("connection refused")}

	state := newTestState(t, writeSalesFile(t, sampleSalesData))
	p := NewSalesReportPipeline(log, svc, 100, report.NewRenderer("₹", 5, 10))
	require.NoError(t, p.Execute(context.Background(), state), "catalog failure must not abort the run")

	require.Len(t, state.Enriched, 3)
	for _, e := range state.Enriched {
		assert.False(t, e.APIMatch)
		assert.Nil(t, e.APICategory)
	}

	reportData, err := os.ReadFile(state.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(reportData), "Total Products Enriched: 0")
}

func TestPipeline_MissingInputFile(t *testing.T) {
	log := logger.NewWithWriter(os.Stderr)
	svc := &stubCatalog{}

	state := newTestState(t, filepath.Join(t.TempDir(), "missing.txt"))
	p := NewSalesReportPipeline(log, svc, 100, report.NewRenderer("₹", 5, 10))
	require.NoError(t, p.Execute(context.Background(), state), "missing input degrades to an empty run")

	assert.Empty(t, state.Valid)

	reportData, err := os.ReadFile(state.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(reportData), "Records Processed: 0")
	assert.Contains(t, string(reportData), "Date Range:           N/A")
}

func TestPipeline_RegionFilter(t *testing.T) {
	log := logger.NewWithWriter(os.Stderr)
	svc := &stubCatalog{}

	state := newTestState(t, writeSalesFile(t, sampleSalesData))
	state.Filters = Filters{Region: "North"}
	p := NewSalesReportPipeline(log, svc, 100, report.NewRenderer("₹", 5, 10))
	require.NoError(t, p.Execute(context.Background(), state))

	require.Len(t, state.Valid, 2)
	for _, txn := range state.Valid {
		assert.Equal(t, "North", txn.Region)
	}
	assert.Equal(t, 1, state.Summary.FilteredByRegion)
}
