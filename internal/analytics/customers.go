package analytics

import (
	"sort"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

type customerAccumulator struct {
	totalSpent    float64
	purchaseCount int
	products      map[string]bool
}

// CustomerAnalysis groups transactions by customer and returns per-customer
// statistics ordered by TotalSpent descending, ties kept in
// first-encounter order.
func CustomerAnalysis(txns []domain.Transaction) []CustomerStats {
	groups := newGroupIndex[customerAccumulator]()

	for _, txn := range txns {
		acc := groups.get(txn.CustomerID)
		if acc.products == nil {
			acc.products = make(map[string]bool)
		}
		acc.totalSpent += txn.Amount()
		acc.purchaseCount++
		acc.products[txn.ProductName] = true
	}

	result := make([]CustomerStats, 0, len(groups.order))
	for _, cid := range groups.order {
		acc := groups.items[cid]

		products := make([]string, 0, len(acc.products))
		for name := range acc.products {
			products = append(products, name)
		}
		sort.Strings(products)

		avg := 0.0
		if acc.purchaseCount > 0 {
			avg = round2(acc.totalSpent / float64(acc.purchaseCount))
		}

		result = append(result, CustomerStats{
			CustomerID:     cid,
			TotalSpent:     acc.totalSpent,
			PurchaseCount:  acc.purchaseCount,
			AvgOrderValue:  avg,
			ProductsBought: products,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpent > result[j].TotalSpent
	})
	return result
}
