package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aromax/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEmbeddedSource_Load(t *testing.T) {
	products, err := NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, products, 10)
	assert.Equal(t, "Midnight Bloom", products[0].Name)
	assert.Equal(t, domain.SeasonEvening, products[0].Season)
	assert.Equal(t, []string{"Jasmine", "Rose", "Sandalwood", "Musk"}, products[0].Notes)

	seen := make(map[int]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.GreaterOrEqual(t, p.Price, 0.0)
	}
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("reads yaml and normalizes seasons", func(t *testing.T) {
		path := writeFile(t, dir, "catalog.yaml", `
products:
  - id: 1
    name: Test Bloom
    description: test
    price: 50
    scentProfile: Floral
    season: daytime
    notes: [Rose]
  - id: 2
    name: Test Night
    description: test
    price: 90
    scentProfile: Amber & Warm
    season: NIGHT
    notes: [Amber]
`)
		products, err := NewFileSource(path).Load(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, domain.SeasonDay, products[0].Season)
		assert.Equal(t, domain.SeasonEvening, products[1].Season)
	})

	t.Run("reads json", func(t *testing.T) {
		path := writeFile(t, dir, "catalog.json", `{"products":[
			{"id":7,"name":"Json Scent","description":"d","price":75.5,"scentProfile":"Citrus","season":"Day","notes":["Lemon"]}
		]}`)
		products, err := NewFileSource(path).Load(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, 75.5, products[0].Price)
	})

	t.Run("rejects unknown extension", func(t *testing.T) {
		path := writeFile(t, dir, "catalog.txt", "products: []")
		_, err := NewFileSource(path).Load(ctx)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})

	t.Run("missing file is unavailable", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(dir, "nope.yaml")).Load(ctx)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		path := writeFile(t, dir, "negative.yaml", `
products:
  - {id: 1, name: Bad, price: -1, scentProfile: Floral, season: Day}
`)
		_, err := NewFileSource(path).Load(ctx)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		path := writeFile(t, dir, "dupes.yaml", `
products:
  - {id: 1, name: One, price: 10, scentProfile: Floral, season: Day}
  - {id: 1, name: Two, price: 20, scentProfile: Floral, season: Day}
`)
		_, err := NewFileSource(path).Load(ctx)
		assert.ErrorIs(t, err, domain.ErrDuplicateProduct)
	})

	t.Run("rejects unknown season", func(t *testing.T) {
		path := writeFile(t, dir, "season.yaml", `
products:
  - {id: 1, name: One, price: 10, scentProfile: Floral, season: Winter}
`)
		_, err := NewFileSource(path).Load(ctx)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewFileSource(filepath.Join(dir, "catalog.yaml")).Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileSource_Describe(t *testing.T) {
	assert.Equal(t, "file:/tmp/x.yaml", NewFileSource("/tmp/x.yaml").Describe())
	assert.Equal(t, "embedded", NewEmbeddedSource().Describe())
}
