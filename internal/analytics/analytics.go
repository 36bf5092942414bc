// Package analytics computes the aggregation views over a validated
// transaction set: region totals, product rankings, customer statistics and
// daily trends. Every function derives amounts as Quantity × UnitPrice on
// the fly and builds its grouping state locally, so repeated calls over the
// same input always produce identical results.
package analytics

import "math"

// RegionStats summarizes sales for one region.
type RegionStats struct {
	Region           string
	TotalSales       float64
	TransactionCount int
	// Percentage of the grand total, rounded to 2 decimals. Zero when the
	// grand total itself is zero.
	Percentage float64
}

// ProductStats summarizes quantity and revenue for one product name.
type ProductStats struct {
	ProductName   string
	TotalQuantity int
	TotalRevenue  float64
}

// CustomerStats summarizes purchase behaviour for one customer.
type CustomerStats struct {
	CustomerID     string
	TotalSpent     float64
	PurchaseCount  int
	AvgOrderValue  float64
	ProductsBought []string // deduplicated, order not significant
}

// DailyStats summarizes sales for one date.
type DailyStats struct {
	Date             string
	Revenue          float64
	TransactionCount int
	UniqueCustomers  int
}

// round2 rounds half away from zero at 2 decimal places. Used for every
// percentage and average in this package.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// groupIndex is an insertion-ordered map used as the grouping accumulator.
// Keys are remembered in first-encounter order so descending sorts can
// break ties stably by encounter.
type groupIndex[T any] struct {
	order []string
	items map[string]*T
}

func newGroupIndex[T any]() *groupIndex[T] {
	return &groupIndex[T]{items: make(map[string]*T)}
}

// get returns the accumulator for key, inserting a zero value on first use.
func (g *groupIndex[T]) get(key string) *T {
	if item, ok := g.items[key]; ok {
		return item
	}
	item := new(T)
	g.items[key] = item
	g.order = append(g.order, key)
	return item
}
