package analytics

import (
	"sort"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

type dailyAccumulator struct {
	revenue          float64
	transactionCount int
	customers        map[string]bool
}

// groupByDate accumulates revenue, counts and distinct customers per date,
// preserving first-encounter order.
func groupByDate(txns []domain.Transaction) *groupIndex[dailyAccumulator] {
	groups := newGroupIndex[dailyAccumulator]()
	for _, txn := range txns {
		acc := groups.get(txn.Date)
		if acc.customers == nil {
			acc.customers = make(map[string]bool)
		}
		acc.revenue += txn.Amount()
		acc.transactionCount++
		acc.customers[txn.CustomerID] = true
	}
	return groups
}

// DailyTrend returns per-date sales statistics ordered by date ascending.
// Dates are ISO-like strings, so lexicographic order is chronological.
func DailyTrend(txns []domain.Transaction) []DailyStats {
	groups := groupByDate(txns)

	dates := make([]string, len(groups.order))
	copy(dates, groups.order)
	sort.Strings(dates)

	result := make([]DailyStats, 0, len(dates))
	for _, date := range dates {
		acc := groups.items[date]
		result = append(result, DailyStats{
			Date:             date,
			Revenue:          acc.revenue,
			TransactionCount: acc.transactionCount,
			UniqueCustomers:  len(acc.customers),
		})
	}
	return result
}

// PeakDay returns the date with the highest summed revenue. Ties resolve to
// the first-encountered maximum in input order, not the earliest date.
// ok is false when the set is empty.
func PeakDay(txns []domain.Transaction) (DailyStats, bool) {
	groups := groupByDate(txns)
	if len(groups.order) == 0 {
		return DailyStats{}, false
	}

	best := groups.order[0]
	for _, date := range groups.order[1:] {
		if groups.items[date].revenue > groups.items[best].revenue {
			best = date
		}
	}

	acc := groups.items[best]
	return DailyStats{
		Date:             best,
		Revenue:          acc.revenue,
		TransactionCount: acc.transactionCount,
		UniqueCustomers:  len(acc.customers),
	}, true
}
