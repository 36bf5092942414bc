package catalog

// Entry is the metadata kept per catalog id for enrichment.
type Entry struct {
	Title    string
	Category string
	Brand    string
	Rating   float64
}

// Mapping indexes catalog entries by their numeric id. An empty mapping is
// valid and simply produces no enrichment matches.
type Mapping map[int]Entry

// BuildMapping indexes a product listing by id. Items without a usable id
// are skipped; later duplicates overwrite earlier ones.
func BuildMapping(products []Product) Mapping {
	mapping := make(Mapping, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			continue
		}
		mapping[p.ID] = Entry{
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}
