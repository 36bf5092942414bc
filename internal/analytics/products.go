package analytics

import (
	"sort"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// groupByProduct accumulates quantity and revenue per product name,
// preserving first-encounter order.
func groupByProduct(txns []domain.Transaction) []ProductStats {
	groups := newGroupIndex[ProductStats]()
	for _, txn := range txns {
		stats := groups.get(txn.ProductName)
		stats.TotalQuantity += txn.Quantity
		stats.TotalRevenue += txn.Amount()
	}

	result := make([]ProductStats, 0, len(groups.order))
	for _, name := range groups.order {
		stats := *groups.items[name]
		stats.ProductName = name
		result = append(result, stats)
	}
	return result
}

// TopProducts returns the first n products by total quantity sold,
// descending, ties kept in first-encounter order.
func TopProducts(txns []domain.Transaction, n int) []ProductStats {
	result := groupByProduct(txns)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalQuantity > result[j].TotalQuantity
	})
	if n < 0 {
		n = 0
	}
	if n > len(result) {
		n = len(result)
	}
	return result[:n]
}

// LowProducts returns products whose total quantity is strictly below the
// threshold, ascending by quantity. This is its own view, not the
// complement of TopProducts.
func LowProducts(txns []domain.Transaction, threshold int) []ProductStats {
	grouped := groupByProduct(txns)

	result := make([]ProductStats, 0)
	for _, stats := range grouped {
		if stats.TotalQuantity < threshold {
			result = append(result, stats)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalQuantity < result[j].TotalQuantity
	})
	return result
}
