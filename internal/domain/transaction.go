package domain

// Transaction represents one structurally parsed sales record.
// This is a domain struct, not a file row; the pipeline parser builds it
// from a pipe-delimited line and it is treated as immutable afterwards.
type Transaction struct {
	TransactionID string // must start with "T" once validated
	Date          string // "YYYY-MM-DD", compared lexicographically, never parsed
	ProductID     string // must start with "P", carries a numeric suffix
	ProductName   string // embedded commas stripped by the parser
	Quantity      int    // > 0 once validated
	UnitPrice     float64
	CustomerID    string // must start with "C"
	Region        string
}

// Amount is the transaction value, recomputed on every use rather than
// stored, so all aggregations derive it identically.
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}
