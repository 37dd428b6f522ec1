package usecase

import (
	"context"
	"time"

	"github.com/aromax/storefront/internal/domain"
)

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Midnight Bloom", Description: "Jasmine and rose over sandalwood.", Price: 89, ScentProfile: "Floral & Woody", Season: domain.SeasonEvening, Notes: []string{"Jasmine", "Rose", "Sandalwood", "Musk"}},
		{ID: 2, Name: "Citrus Dawn", Description: "Bright bergamot and lemon.", Price: 72, ScentProfile: "Citrus & Fresh", Season: domain.SeasonDay, Notes: []string{"Bergamot", "Lemon", "Neroli", "White Musk"}},
		{ID: 3, Name: "Velvet Noir", Description: "Smoky oud and dark vanilla.", Price: 110, ScentProfile: "Amber & Warm", Season: domain.SeasonEvening, Notes: []string{"Amber", "Oud", "Vanilla", "Patchouli"}},
		{ID: 4, Name: "Ocean Breeze", Description: "Sea salt and cool mint.", Price: 68, ScentProfile: "Aquatic & Fresh", Season: domain.SeasonDay, Notes: []string{"Sea Salt", "Marine Accord", "Mint", "Driftwood"}},
		{ID: 5, Name: "Lavender Dreams", Description: "Calming lavender and chamomile.", Price: 65, ScentProfile: "Herbal & Floral", Season: domain.SeasonDay, Notes: []string{"Lavender", "Chamomile", "Tonka Bean"}},
		{ID: 6, Name: "Rose Garden", Description: "Garden roses and peony.", Price: 82, ScentProfile: "Floral & Romantic", Season: domain.SeasonDay, Notes: []string{"Rose", "Peony", "Lychee", "Musk"}},
		{ID: 7, Name: "Amber Nights", Description: "Amber and cinnamon by the fire.", Price: 95, ScentProfile: "Oriental & Warm", Season: domain.SeasonEvening, Notes: []string{"Amber", "Vanilla", "Cinnamon", "Benzoin"}},
		{ID: 8, Name: "Spice Route", Description: "Cardamom and saffron on leather.", Price: 98, ScentProfile: "Spicy & Oriental", Season: domain.SeasonEvening, Notes: []string{"Cardamom", "Pink Pepper", "Saffron", "Leather"}},
		{ID: 9, Name: "Cedar Mist", Description: "Cedarwood and vetiver in morning fog.", Price: 84, ScentProfile: "Woody & Fresh", Season: domain.SeasonDay, Notes: []string{"Cedarwood", "Vetiver", "Grapefruit", "Sandalwood"}},
		{ID: 10, Name: "Golden Orchard", Description: "Ripe pear and peach with honey.", Price: 76, ScentProfile: "Fruity & Floral", Season: domain.SeasonDay, Notes: []string{"Pear", "Peach", "Orange Blossom", "Honey"}},
	}
}

func fixtureCatalog() *domain.Catalog {
	return domain.NewCatalog(fixtureProducts())
}

func productIDs(products []domain.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func intPtr(n int) *int { return &n }

// staticCatalog serves a fixed snapshot
type staticCatalog struct {
	snapshot *domain.Catalog
}

func (s *staticCatalog) Snapshot() *domain.Catalog { return s.snapshot }

// mockCache is an in-memory domain.CacheRepository that records calls
type mockCache struct {
	data     map[string][]byte
	getError error
	setError error
	gets     int
	sets     int
	lastTTL  time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.gets++
	if m.getError != nil {
		return nil, m.getError
	}
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.sets++
	m.lastTTL = ttl
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}
