package remote

import (
	"fmt"
	"strings"

	"github.com/aromax/storefront/internal/domain"
)

// ProductListResponse is the upstream product list payload
type ProductListResponse struct {
	Products []RemoteProduct `json:"products"`
	Total    int             `json:"total"`
}

// RemoteProduct is a product as the upstream service describes it
type RemoteProduct struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	ScentProfile string   `json:"scent_profile"`
	Season       string   `json:"season"`
	Notes        []string `json:"notes"`
	ImageURL     string   `json:"image_url,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// MapToProduct converts an upstream record into a validated domain product
func MapToProduct(rp *RemoteProduct) (domain.Product, error) {
	p := domain.Product{
		ID:           rp.ID,
		Name:         strings.TrimSpace(rp.Name),
		Description:  strings.TrimSpace(rp.Description),
		Price:        rp.Price,
		ScentProfile: strings.TrimSpace(rp.ScentProfile),
		Season:       domain.Season(rp.Season),
		Notes:        cleanNotes(rp.Notes),
		Image:        rp.ImageURL,
	}

	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// MapProducts maps every active record, returning the errors of those skipped
func MapProducts(records []RemoteProduct) ([]domain.Product, []error) {
	products := make([]domain.Product, 0, len(records))
	var skipped []error

	for i := range records {
		if records[i].Active != nil && !*records[i].Active {
			continue
		}
		p, err := MapToProduct(&records[i])
		if err != nil {
			skipped = append(skipped, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		products = append(products, p)
	}

	return products, skipped
}

// cleanNotes trims notes and drops empty ones
func cleanNotes(notes []string) []string {
	cleaned := make([]string, 0, len(notes))
	for _, n := range notes {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	return cleaned
}
