package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Season is the time of day a fragrance is intended for
type Season string

const (
	SeasonDay     Season = "Day"
	SeasonEvening Season = "Evening"
)

// ParseSeason normalizes a free-text season label.
// Accepts "day", "daytime", "evening" and "night" in any case.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daytime":
		return SeasonDay, nil
	case "evening", "night":
		return SeasonEvening, nil
	}
	return "", fmt.Errorf("%w: unknown season %q", ErrInvalidProduct, s)
}

// Product represents a single fragrance in the storefront catalog
type Product struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Price        float64  `json:"price" yaml:"price"`
	ScentProfile string   `json:"scentProfile" yaml:"scentProfile"`
	Season       Season   `json:"season" yaml:"season"`
	Notes        []string `json:"notes" yaml:"notes"`
	Image        string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Validate checks the invariants every catalog record must satisfy and
// normalizes the season label in place.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product %d has no name", ErrInvalidProduct, p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: product %d has negative price %.2f", ErrInvalidProduct, p.ID, p.Price)
	}
	season, err := ParseSeason(string(p.Season))
	if err != nil {
		return fmt.Errorf("product %d: %w", p.ID, err)
	}
	p.Season = season
	return nil
}

// ValidateProducts validates every record and rejects duplicate ids.
// Seasons are normalized in place.
func ValidateProducts(products []Product) error {
	seen := make(map[int]bool, len(products))
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return err
		}
		if seen[products[i].ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateProduct, products[i].ID)
		}
		seen[products[i].ID] = true
	}
	return nil
}

// Catalog is an immutable snapshot of the product list.
// Callers get copies; the snapshot itself is never written after construction.
type Catalog struct {
	products    []Product
	notes       []string
	fingerprint string
	revision    uint64
}

// NewCatalog builds a snapshot from products, preserving their order.
func NewCatalog(products []Product) *Catalog {
	owned := make([]Product, len(products))
	for i, p := range products {
		p.Notes = slices.Clone(p.Notes)
		owned[i] = p
	}

	return &Catalog{
		products:    owned,
		notes:       distinctNotes(owned),
		fingerprint: fingerprint(owned),
	}
}

// EmptyCatalog returns a snapshot with no products.
func EmptyCatalog() *Catalog {
	return NewCatalog(nil)
}

// WithRevision returns a copy of the snapshot stamped with rev.
func (c *Catalog) WithRevision(rev uint64) *Catalog {
	cp := *c
	cp.revision = rev
	return &cp
}

// Revision identifies the load that produced this snapshot.
func (c *Catalog) Revision() uint64 {
	return c.revision
}

// Fingerprint is a content hash of the products. Two snapshots with the same
// products in the same order share a fingerprint whatever their revision or process.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns the products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		p.Notes = slices.Clone(p.Notes)
		out[i] = p
	}
	return out
}

// Each calls fn for every product in catalog order until fn returns false.
// fn must not retain or modify p.Notes.
func (c *Catalog) Each(fn func(p *Product) bool) {
	for i := range c.products {
		if !fn(&c.products[i]) {
			return
		}
	}
}

// Notes returns the distinct note vocabulary in first-seen order.
func (c *Catalog) Notes() []string {
	return slices.Clone(c.notes)
}

// Find looks up a product by id.
func (c *Catalog) Find(id int) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			p.Notes = slices.Clone(p.Notes)
			return p, true
		}
	}
	return Product{}, false
}

func distinctNotes(products []Product) []string {
	seen := make(map[string]bool)
	var notes []string
	for _, p := range products {
		for _, n := range p.Notes {
			if strings.TrimSpace(n) == "" || seen[n] {
				continue
			}
			seen[n] = true
			notes = append(notes, n)
		}
	}
	return notes
}

func fingerprint(products []Product) string {
	d := xxhash.New()
	// Product holds only plain fields, so encoding cannot fail
	_ = json.NewEncoder(d).Encode(products)
	return fmt.Sprintf("%016x", d.Sum64())
}
