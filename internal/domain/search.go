package domain

// ParsedFilter is the structured form of a free-text search query.
// It is rebuilt on every search and never stored.
type ParsedFilter struct {
	PriceMin      *int     `json:"priceMin"`
	PriceMax      *int     `json:"priceMax"`
	Season        Season   `json:"season,omitempty"`
	ScentProfiles []string `json:"scentProfiles"`
	Notes         []string `json:"notes"`
	Keywords      []string `json:"keywords"`
}

// IsEmpty reports whether no structured constraint was recognized.
func (f *ParsedFilter) IsEmpty() bool {
	return f.PriceMin == nil &&
		f.PriceMax == nil &&
		f.Season == "" &&
		len(f.ScentProfiles) == 0 &&
		len(f.Notes) == 0 &&
		len(f.Keywords) == 0
}

// SearchResult is what the search endpoint returns
type SearchResult struct {
	Query           string       `json:"query"`
	Filter          ParsedFilter `json:"filter"`
	Products        []Product    `json:"products"`
	Count           int          `json:"count"`
	Source          string       `json:"source"` // "catalog" or "cache"
	CatalogRevision uint64       `json:"catalogRevision"`
	DidYouMean      string       `json:"didYouMean,omitempty"` // set only when nothing matched
}
