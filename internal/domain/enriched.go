package domain

// EnrichedTransaction is a Transaction joined to catalog metadata.
// The API fields are nil when the catalog had no entry for the product;
// an unmatched transaction is an expected outcome, not an error.
type EnrichedTransaction struct {
	Transaction

	APICategory *string
	APIBrand    *string
	APIRating   *float64
	APIMatch    bool
}
