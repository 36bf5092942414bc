package pipeline

import (
	"strconv"
	"strings"

	"github.com/dvloznov/sales-analytics/internal/catalog"
	"github.com/dvloznov/sales-analytics/internal/domain"
)

// Enrich joins each transaction to catalog metadata by the numeric part of
// its product id. A missing entry, a product id without digits, or an empty
// mapping all yield an unmatched record; enrichment never fails.
func Enrich(txns []domain.Transaction, mapping catalog.Mapping) []domain.EnrichedTransaction {
	enriched := make([]domain.EnrichedTransaction, 0, len(txns))

	for _, txn := range txns {
		e := domain.EnrichedTransaction{Transaction: txn}

		if key, ok := productKey(txn.ProductID); ok {
			if entry, found := mapping[key]; found {
				category := entry.Category
				brand := entry.Brand
				rating := entry.Rating
				e.APICategory = &category
				e.APIBrand = &brand
				e.APIRating = &rating
				e.APIMatch = true
			}
		}

		enriched = append(enriched, e)
	}
	return enriched
}

// productKey extracts the catalog lookup key from a product id by keeping
// only its digits. ok is false when the id contains no digits at all.
func productKey(productID string) (int, bool) {
	var digits strings.Builder
	for _, r := range productID {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	key, err := strconv.Atoi(digits.String())
	if err != nil {
		// Digit runs long enough to overflow int cannot be catalog ids.
		return 0, false
	}
	return key, true
}
