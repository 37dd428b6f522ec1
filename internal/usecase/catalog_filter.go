package usecase

import (
	"slices"
	"strings"

	"github.com/aromax/storefront/internal/domain"
	"github.com/rs/zerolog"
)

// CatalogFilter applies parsed queries to a catalog snapshot
type CatalogFilter struct {
	parser             *QueryParser
	logger             zerolog.Logger
	enableDebugLogging bool
}

// NewCatalogFilter creates a filter that parses queries with parser
func NewCatalogFilter(parser *QueryParser, logger zerolog.Logger, enableDebugLogging bool) *CatalogFilter {
	return &CatalogFilter{
		parser:             parser,
		logger:             logger,
		enableDebugLogging: enableDebugLogging,
	}
}

// Search returns the products matching query, in catalog order.
// A blank query returns no products. A query with no recognizable structure
// falls back to a raw substring match.
func (f *CatalogFilter) Search(query string, catalog *domain.Catalog) []domain.Product {
	results, _ := f.SearchWithFilter(query, catalog)
	return results
}

// SearchWithFilter is Search that also returns the filter it applied.
func (f *CatalogFilter) SearchWithFilter(query string, catalog *domain.Catalog) ([]domain.Product, domain.ParsedFilter) {
	results := []domain.Product{}
	if strings.TrimSpace(query) == "" || catalog == nil {
		return results, domain.ParsedFilter{ScentProfiles: []string{}, Notes: []string{}, Keywords: []string{}}
	}

	filter := f.parser.ParseQuery(query, catalog)
	lowerQuery := strings.ToLower(query)
	fallback := filter.IsEmpty()

	catalog.Each(func(p *domain.Product) bool {
		var ok bool
		if fallback {
			ok = matchesRawQuery(p, lowerQuery)
		} else {
			ok = matchesFilter(p, &filter)
		}
		if ok {
			results = append(results, cloneProduct(p))
		}
		return true
	})

	if f.enableDebugLogging {
		f.logger.Debug().
			Str("query", query).
			Bool("fallback", fallback).
			Int("matched", len(results)).
			Int("catalog_size", catalog.Len()).
			Msg("filtered catalog")
	}

	return results, filter
}

// matchesFilter applies every set constraint with AND semantics
func matchesFilter(p *domain.Product, filter *domain.ParsedFilter) bool {
	if filter.PriceMax != nil && p.Price > float64(*filter.PriceMax) {
		return false
	}
	if filter.PriceMin != nil && p.Price < float64(*filter.PriceMin) {
		return false
	}

	if filter.Season != "" && p.Season != filter.Season {
		return false
	}

	if len(filter.ScentProfiles) > 0 {
		profile := strings.ToLower(p.ScentProfile)
		if !anyContained(profile, filter.ScentProfiles) {
			return false
		}
	}

	if len(filter.Notes) > 0 && !notesMatch(p.Notes, filter.Notes) {
		return false
	}

	if len(filter.Keywords) > 0 && !keywordsMatch(p, filter.Keywords) {
		return false
	}

	return true
}

// matchesRawQuery is the fallback used when the query carries no structure
func matchesRawQuery(p *domain.Product, lowerQuery string) bool {
	if containsFold(p.Name, lowerQuery) ||
		containsFold(p.Description, lowerQuery) ||
		containsFold(p.ScentProfile, lowerQuery) ||
		containsFold(string(p.Season), lowerQuery) {
		return true
	}
	for _, note := range p.Notes {
		if containsFold(note, lowerQuery) {
			return true
		}
	}
	return false
}

// notesMatch reports whether any product note contains any filter note
func notesMatch(productNotes, filterNotes []string) bool {
	for _, want := range filterNotes {
		wantLower := strings.ToLower(want)
		for _, n := range productNotes {
			if containsFold(n, wantLower) {
				return true
			}
		}
	}
	return false
}

// keywordsMatch reports whether any keyword appears in a searchable field
func keywordsMatch(p *domain.Product, keywords []string) bool {
	for _, kw := range keywords {
		if containsFold(p.Name, kw) ||
			containsFold(p.Description, kw) ||
			containsFold(p.ScentProfile, kw) {
			return true
		}
		for _, n := range p.Notes {
			if containsFold(n, kw) {
				return true
			}
		}
	}
	return false
}

// anyContained reports whether any tag, lowercased, is a substring of lowerText
func anyContained(lowerText string, tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(lowerText, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

// containsFold reports whether lowerNeedle occurs in text, ignoring text's case.
// The needle must already be lowercase.
func containsFold(text, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(text), lowerNeedle)
}

func cloneProduct(p *domain.Product) domain.Product {
	cp := *p
	cp.Notes = slices.Clone(p.Notes)
	return cp
}
