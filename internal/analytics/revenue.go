package analytics

import "github.com/dvloznov/sales-analytics/internal/domain"

// TotalRevenue sums Quantity × UnitPrice over the whole set.
func TotalRevenue(txns []domain.Transaction) float64 {
	total := 0.0
	for _, txn := range txns {
		total += txn.Amount()
	}
	return total
}
