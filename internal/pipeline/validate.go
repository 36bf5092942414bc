package pipeline

import (
	"sort"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// Filters are the optional record filters applied after validation.
// Nil pointer fields mean "no filter".
type Filters struct {
	Region    string // empty means no region filter
	MinAmount *float64
	MaxAmount *float64
}

// Summary is the write-once accounting of one validate-and-filter pass.
type Summary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}

// ValidateAndFilter validates transaction candidates and applies the
// optional filters in fixed order: region first, then amount range.
// Validation failures count as invalid; filter exclusions are counted
// separately and are not invalid records.
func ValidateAndFilter(candidates []domain.Transaction, filters Filters) ([]domain.Transaction, int, Summary) {
	valid := make([]domain.Transaction, 0, len(candidates))
	invalid := 0

	for _, txn := range candidates {
		if !isValid(txn) {
			invalid++
			continue
		}
		valid = append(valid, txn)
	}

	summary := Summary{
		TotalInput: len(candidates),
		Invalid:    invalid,
	}

	if filters.Region != "" {
		before := len(valid)
		filtered := valid[:0]
		for _, txn := range valid {
			if txn.Region == filters.Region {
				filtered = append(filtered, txn)
			}
		}
		valid = filtered
		summary.FilteredByRegion = before - len(valid)
	}

	if filters.MinAmount != nil || filters.MaxAmount != nil {
		before := len(valid)
		filtered := valid[:0]
		for _, txn := range valid {
			amount := txn.Amount()
			if filters.MinAmount != nil && amount < *filters.MinAmount {
				continue
			}
			if filters.MaxAmount != nil && amount > *filters.MaxAmount {
				continue
			}
			filtered = append(filtered, txn)
		}
		valid = filtered
		summary.FilteredByAmount = before - len(valid)
	}

	summary.FinalCount = len(valid)
	return valid, invalid, summary
}

// isValid applies the validation rules in order: required fields, id
// prefixes, positive quantity and price. A record either passes all rules
// or is excluded whole.
func isValid(txn domain.Transaction) bool {
	if txn.TransactionID == "" || txn.Date == "" || txn.ProductID == "" ||
		txn.ProductName == "" || txn.CustomerID == "" || txn.Region == "" {
		return false
	}
	if txn.TransactionID[0] != 'T' || txn.ProductID[0] != 'P' || txn.CustomerID[0] != 'C' {
		return false
	}
	if txn.Quantity <= 0 || txn.UnitPrice <= 0 {
		return false
	}
	return true
}

// RegionsObserved returns the sorted distinct regions of a transaction set.
// It is a side observation over the pre-filter valid set.
func RegionsObserved(txns []domain.Transaction) []string {
	seen := make(map[string]bool)
	regions := make([]string, 0)
	for _, txn := range txns {
		if !seen[txn.Region] {
			seen[txn.Region] = true
			regions = append(regions, txn.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// AmountRange returns the minimum and maximum transaction amount of a set.
// ok is false for an empty set.
func AmountRange(txns []domain.Transaction) (min, max float64, ok bool) {
	if len(txns) == 0 {
		return 0, 0, false
	}
	min = txns[0].Amount()
	max = min
	for _, txn := range txns[1:] {
		amount := txn.Amount()
		if amount < min {
			min = amount
		}
		if amount > max {
			max = amount
		}
	}
	return min, max, true
}
