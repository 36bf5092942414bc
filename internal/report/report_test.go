package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)
}

func testRenderer() *Renderer {
	r := NewRenderer("₹", 5, 10)
	r.Now = fixedClock
	return r
}

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{TransactionID: "T001", Date: "2024-12-01", ProductID: "P1", ProductName: "Laptop", Quantity: 2, UnitPrice: 45000, CustomerID: "C001", Region: "North"},
		{TransactionID: "T002", Date: "2024-12-02", ProductID: "P2", ProductName: "Mouse", Quantity: 5, UnitPrice: 500, CustomerID: "C002", Region: "South"},
	}
}

func sampleEnriched() []domain.EnrichedTransaction {
	category := "laptops"
	brand := "Apple"
	rating := 4.7
	return []domain.EnrichedTransaction{
		{Transaction: sampleTransactions()[0], APICategory: &category, APIBrand: &brand, APIRating: &rating, APIMatch: true},
		{Transaction: sampleTransactions()[1], APIMatch: false},
	}
}

func TestRender_Sections(t *testing.T) {
	out := testRenderer().Render(sampleTransactions(), sampleEnriched())

	for _, section := range []string{
		"SALES ANALYTICS REPORT",
		"OVERALL SUMMARY",
		"REGION-WISE PERFORMANCE",
		"TOP 5 PRODUCTS",
		"TOP 5 CUSTOMERS",
		"DAILY SALES TREND",
		"PRODUCT PERFORMANCE ANALYSIS",
		"API ENRICHMENT SUMMARY",
	} {
		assert.Contains(t, out, section)
	}

	assert.Contains(t, out, "Generated: 2024-12-15 10:30:00")
	assert.Contains(t, out, "Records Processed: 2")
}

func TestRender_Values(t *testing.T) {
	out := testRenderer().Render(sampleTransactions(), sampleEnriched())

	// 2×45000 + 5×500 = 92,500 total, 46,250 average.
	assert.Contains(t, out, "Total Revenue:        ₹92,500.00")
	assert.Contains(t, out, "Average Order Value:  ₹46,250.00")
	assert.Contains(t, out, "Date Range:           2024-12-01 to 2024-12-02")
	assert.Contains(t, out, "Best Selling Day: 2024-12-01")

	// North: 90000/92500 = 97.30%, South: 2.70%.
	assert.Contains(t, out, "97.30%")
	assert.Contains(t, out, "2.70%")

	// Both products sold under 10 units; Laptop (2) sorts before Mouse (5).
	assert.Contains(t, out, "Low Performing Products (<10 units): Laptop, Mouse")

	assert.Contains(t, out, "Total Products Enriched: 1")
	assert.Contains(t, out, "Success Rate: 50.00%")
	assert.Contains(t, out, "Products Not Enriched: P2")
}

func TestRender_RegionOrder(t *testing.T) {
	out := testRenderer().Render(sampleTransactions(), nil)

	northIdx := strings.Index(out, "North")
	southIdx := strings.Index(out, "South")
	require.Greater(t, northIdx, -1)
	require.Greater(t, southIdx, -1)
	assert.Less(t, northIdx, southIdx, "regions must be ordered by sales descending")
}

func TestRender_Empty(t *testing.T) {
	out := testRenderer().Render(nil, nil)

	assert.Contains(t, out, "Records Processed: 0")
	assert.Contains(t, out, "Total Revenue:        ₹0.00")
	assert.Contains(t, out, "Date Range:           N/A")
	assert.Contains(t, out, "Best Selling Day: N/A")
	assert.Contains(t, out, "Low Performing Products (<10 units): None")
	assert.Contains(t, out, "Success Rate: 0.00%")
	assert.Contains(t, out, "Products Not Enriched: None")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "sales_report.txt")
	require.NoError(t, Save("report body\n", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body\n", string(data))
}
