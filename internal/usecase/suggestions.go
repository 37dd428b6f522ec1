package usecase

import (
	"fmt"
	"strings"

	"github.com/aromax/storefront/internal/domain"
)

// Price thresholds shared by suggestions and recommendations
const (
	budgetPriceLimit = 80.0 // strictly below is budget
	premiumPriceFrom = 85.0 // at or above is premium
	maxSuggestions   = 4
)

// SuggestionGenerator derives hint text from the catalog
type SuggestionGenerator struct{}

// NewSuggestionGenerator creates a new suggestion generator
func NewSuggestionGenerator() *SuggestionGenerator {
	return &SuggestionGenerator{}
}

// suggestionRule emits a suggestion when at least one product matches
type suggestionRule struct {
	match func(p *domain.Product) bool
	text  func(first *domain.Product) string
}

func fixedText(s string) func(*domain.Product) string {
	return func(*domain.Product) string { return s }
}

// suggestionRules are checked in this order
var suggestionRules = []suggestionRule{
	{
		match: func(p *domain.Product) bool { return strings.Contains(p.ScentProfile, "Fresh") },
		text: func(first *domain.Product) string {
			return fmt.Sprintf("Show me fresh %s fragrances", strings.ToLower(first.ScentProfile))
		},
	},
	{
		match: func(p *domain.Product) bool { return p.Season == domain.SeasonEvening },
		text:  fixedText("Best perfumes for evening wear"),
	},
	{
		match: func(p *domain.Product) bool { return p.Price < budgetPriceLimit },
		text:  fixedText("Quality fragrances under $80"),
	},
	{
		match: func(p *domain.Product) bool { return p.Price >= premiumPriceFrom },
		text:  fixedText("Luxury fragrances over $85"),
	},
	{
		match: func(p *domain.Product) bool { return strings.Contains(p.ScentProfile, "Floral") },
		text:  fixedText("Explore our floral collection"),
	},
	{
		match: func(p *domain.Product) bool {
			return strings.Contains(p.ScentProfile, "Warm") || strings.Contains(p.ScentProfile, "Amber")
		},
		text: fixedText("Warm and cozy fragrances"),
	},
	{
		match: func(p *domain.Product) bool {
			return strings.Contains(p.ScentProfile, "Spicy") || strings.Contains(p.ScentProfile, "Oriental")
		},
		text: fixedText("Bold and exotic scents"),
	},
	{
		match: func(p *domain.Product) bool { return p.Season == domain.SeasonDay },
		text:  fixedText("Perfect fragrances for daytime wear"),
	},
}

// GenerateSuggestions returns up to four canned prompts for categories the
// catalog actually stocks.
func (g *SuggestionGenerator) GenerateSuggestions(catalog *domain.Catalog) []string {
	suggestions := []string{}
	if catalog == nil {
		return suggestions
	}

	for _, rule := range suggestionRules {
		if first := firstMatch(catalog, rule.match); first != nil {
			suggestions = append(suggestions, rule.text(first))
		}
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// ContextualRecommendations returns one sentence per check the query triggers.
func (g *SuggestionGenerator) ContextualRecommendations(query string, catalog *domain.Catalog) []string {
	recommendations := []string{}
	if catalog == nil {
		catalog = domain.EmptyCatalog()
	}
	lowerQuery := strings.ToLower(query)

	matching := countWhere(catalog, func(p *domain.Product) bool {
		if containsFold(p.ScentProfile, lowerQuery) {
			return true
		}
		for _, n := range p.Notes {
			if containsFold(n, lowerQuery) {
				return true
			}
		}
		return false
	})
	if matching > 0 {
		plural := ""
		if matching > 1 {
			plural = "s"
		}
		recommendations = append(recommendations,
			fmt.Sprintf(`Found %d fragrance%s matching "%s"`, matching, plural, query))
	}

	if strings.Contains(lowerQuery, "day") || strings.Contains(lowerQuery, "daytime") {
		n := countWhere(catalog, func(p *domain.Product) bool { return p.Season == domain.SeasonDay })
		recommendations = append(recommendations, fmt.Sprintf("%d daytime fragrances available", n))
	}

	if strings.Contains(lowerQuery, "evening") || strings.Contains(lowerQuery, "night") {
		n := countWhere(catalog, func(p *domain.Product) bool { return p.Season == domain.SeasonEvening })
		recommendations = append(recommendations, fmt.Sprintf("%d evening fragrances available", n))
	}

	if strings.Contains(lowerQuery, "under") || strings.Contains(lowerQuery, "budget") {
		n := countWhere(catalog, func(p *domain.Product) bool { return p.Price < budgetPriceLimit })
		recommendations = append(recommendations, fmt.Sprintf("%d fragrances under $80", n))
	}

	if strings.Contains(lowerQuery, "premium") || strings.Contains(lowerQuery, "luxury") {
		n := countWhere(catalog, func(p *domain.Product) bool { return p.Price >= premiumPriceFrom })
		recommendations = append(recommendations, fmt.Sprintf("%d premium fragrances available", n))
	}

	return recommendations
}

func firstMatch(catalog *domain.Catalog, match func(p *domain.Product) bool) *domain.Product {
	var found *domain.Product
	catalog.Each(func(p *domain.Product) bool {
		if match(p) {
			cp := cloneProduct(p)
			found = &cp
			return false
		}
		return true
	})
	return found
}

func countWhere(catalog *domain.Catalog, match func(p *domain.Product) bool) int {
	n := 0
	catalog.Each(func(p *domain.Product) bool {
		if match(p) {
			n++
		}
		return true
	})
	return n
}
