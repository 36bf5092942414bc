package analytics

import (
	"sort"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// RegionSales groups transactions by region and returns per-region totals
// ordered by TotalSales descending, ties kept in first-encounter order.
func RegionSales(txns []domain.Transaction) []RegionStats {
	groups := newGroupIndex[RegionStats]()
	grandTotal := 0.0

	for _, txn := range txns {
		amount := txn.Amount()
		stats := groups.get(txn.Region)
		stats.TotalSales += amount
		stats.TransactionCount++
		grandTotal += amount
	}

	result := make([]RegionStats, 0, len(groups.order))
	for _, region := range groups.order {
		stats := *groups.items[region]
		stats.Region = region
		if grandTotal != 0 {
			stats.Percentage = round2(stats.TotalSales / grandTotal * 100)
		}
		result = append(result, stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSales > result[j].TotalSales
	})
	return result
}
