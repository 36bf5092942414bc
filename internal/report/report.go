// Package report renders the fixed-layout sales analytics report. The
// renderer recomputes every aggregation from the transaction set it is
// given and never fails on empty input; undefined values render as
// "N/A" or "None".
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dvloznov/sales-analytics/internal/analytics"
	"github.com/dvloznov/sales-analytics/internal/domain"
)

const sectionWidth = 50

// Renderer produces the plain-text sales report.
type Renderer struct {
	Currency     string
	TopN         int
	LowThreshold int

	// Now supplies the generation timestamp; overridable in tests.
	Now func() time.Time

	printer *message.Printer
}

// NewRenderer creates a renderer with the given formatting knobs.
func NewRenderer(currency string, topN, lowThreshold int) *Renderer {
	return &Renderer{
		Currency:     currency,
		TopN:         topN,
		LowThreshold: lowThreshold,
		Now:          time.Now,
		printer:      message.NewPrinter(language.English),
	}
}

// Render builds the full report from the validated transaction set and its
// enriched counterpart.
func (r *Renderer) Render(txns []domain.Transaction, enriched []domain.EnrichedTransaction) string {
	var lines []string
	add := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	banner := strings.Repeat("=", sectionWidth)
	rule := strings.Repeat("-", sectionWidth)

	add("%s", banner)
	add("%s", strings.Repeat(" ", 10)+"SALES ANALYTICS REPORT")
	add("Generated: %s", r.Now().Format("2006-01-02 15:04:05"))
	add("Records Processed: %d", len(txns))
	add("%s", banner)
	add("")

	// Overall summary.
	totalRevenue := analytics.TotalRevenue(txns)
	avgOrder := 0.0
	if len(txns) > 0 {
		avgOrder = totalRevenue / float64(len(txns))
	}

	add("OVERALL SUMMARY")
	add("%s", rule)
	add("Total Revenue:        %s%s", r.Currency, r.money(totalRevenue))
	add("Total Transactions:   %d", len(txns))
	add("Average Order Value:  %s%s", r.Currency, r.money(avgOrder))
	add("Date Range:           %s", dateRange(txns))
	add("")

	// Region-wise performance.
	regions := analytics.RegionSales(txns)

	add("REGION-WISE PERFORMANCE")
	add("%s", rule)
	add("%-10s%15s%12s%15s", "Region", "Sales", "% of Total", "Transactions")
	for _, reg := range regions {
		add("%-10s%s%14s%11.2f%%%15d",
			reg.Region, r.Currency, r.money(reg.TotalSales), reg.Percentage, reg.TransactionCount)
	}
	add("")

	// Top products.
	add("TOP %d PRODUCTS", r.TopN)
	add("%s", rule)
	add("%-5s%-20s%10s%15s", "Rank", "Product Name", "Quantity", "Revenue")
	for i, p := range analytics.TopProducts(txns, r.TopN) {
		add("%-5d%-20s%10d%15s", i+1, p.ProductName, p.TotalQuantity, r.money(p.TotalRevenue))
	}
	add("")

	// Top customers.
	add("TOP %d CUSTOMERS", r.TopN)
	add("%s", rule)
	add("%-5s%-15s%15s%15s", "Rank", "Customer ID", "Total Spent", "Order Count")
	customers := analytics.CustomerAnalysis(txns)
	if len(customers) > r.TopN {
		customers = customers[:r.TopN]
	}
	for i, c := range customers {
		add("%-5d%-15s%15s%15d", i+1, c.CustomerID, r.money(c.TotalSpent), c.PurchaseCount)
	}
	add("")

	// Daily trend.
	add("DAILY SALES TREND")
	add("%s", rule)
	add("%-12s%12s%15s%20s", "Date", "Revenue", "Transactions", "Unique Customers")
	for _, d := range analytics.DailyTrend(txns) {
		add("%-12s%12s%15d%20d", d.Date, r.money(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}
	add("")

	// Product performance analysis.
	bestDay := "N/A"
	if peak, ok := analytics.PeakDay(txns); ok {
		bestDay = peak.Date
	}

	lowNames := make([]string, 0)
	for _, p := range analytics.LowProducts(txns, r.LowThreshold) {
		lowNames = append(lowNames, p.ProductName)
	}

	add("PRODUCT PERFORMANCE ANALYSIS")
	add("%s", rule)
	add("Best Selling Day: %s", bestDay)
	add("Low Performing Products (<%d units): %s", r.LowThreshold, joinOrNone(lowNames))
	add("Average Transaction Value per Region:")
	for _, reg := range regions {
		avg := 0.0
		if reg.TransactionCount > 0 {
			avg = reg.TotalSales / float64(reg.TransactionCount)
		}
		add("  %s: %s%s", reg.Region, r.Currency, r.money(avg))
	}
	add("")

	// API enrichment summary.
	matched := 0
	failed := make([]string, 0)
	for _, e := range enriched {
		if e.APIMatch {
			matched++
		} else {
			failed = append(failed, e.ProductID)
		}
	}
	successRate := 0.0
	if len(enriched) > 0 {
		successRate = float64(matched) / float64(len(enriched)) * 100
	}

	add("API ENRICHMENT SUMMARY")
	add("%s", rule)
	add("Total Products Enriched: %d", matched)
	add("Success Rate: %.2f%%", successRate)
	add("Products Not Enriched: %s", joinOrNone(failed))

	return strings.Join(lines, "\n") + "\n"
}

// Save writes a rendered report to path as UTF-8 text, creating the parent
// directory when needed.
func Save(content, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// money formats an amount with two decimals and thousands grouping.
func (r *Renderer) money(v float64) string {
	return r.printer.Sprintf("%.2f", v)
}

func dateRange(txns []domain.Transaction) string {
	if len(txns) == 0 {
		return "N/A"
	}
	min, max := txns[0].Date, txns[0].Date
	for _, txn := range txns[1:] {
		if txn.Date < min {
			min = txn.Date
		}
		if txn.Date > max {
			max = txn.Date
		}
	}
	return min + " to " + max
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
