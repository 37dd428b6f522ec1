package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aromax/storefront/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	products []domain.Product
	err      error
	calls    int
}

func (s *stubSource) Load(ctx context.Context) ([]domain.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubSource) Describe() string { return "stub" }

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "One", Price: 50, ScentProfile: "Floral", Season: domain.SeasonDay, Notes: []string{"Rose"}},
		{ID: 2, Name: "Two", Price: 90, ScentProfile: "Amber & Warm", Season: domain.SeasonEvening, Notes: []string{"Amber"}},
	}
}

func TestStore_StartsEmpty(t *testing.T) {
	store := NewStore(&stubSource{}, zerolog.Nop())

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 0, snap.Len())
	assert.Equal(t, uint64(0), snap.Revision())
	assert.True(t, store.LoadedAt().IsZero())
}

func TestStore_Reload(t *testing.T) {
	src := &stubSource{products: sampleProducts()}
	store := NewStore(src, zerolog.Nop())
	ctx := context.Background()

	first, err := store.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Len())
	assert.Equal(t, uint64(1), first.Revision())
	assert.Same(t, first, store.Snapshot())
	assert.False(t, store.LoadedAt().IsZero())

	second, err := store.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.Revision())
	assert.Equal(t, 2, src.calls)
}

func TestStore_ReloadFailureKeepsPrevious(t *testing.T) {
	src := &stubSource{products: sampleProducts()}
	store := NewStore(src, zerolog.Nop())
	ctx := context.Background()

	before, err := store.Reload(ctx)
	require.NoError(t, err)

	src.err = errors.New("disk on fire")
	_, err = store.Reload(ctx)
	assert.Error(t, err)
	assert.Same(t, before, store.Snapshot())
}

func TestStore_ReloadWithoutSource(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())

	_, err := store.Reload(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Equal(t, "none", store.Source())
}

func TestStore_Replace(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())

	t.Run("publishes valid products", func(t *testing.T) {
		snap, err := store.Replace(sampleProducts())
		require.NoError(t, err)
		assert.Equal(t, 2, store.Snapshot().Len())
		assert.Equal(t, snap.Revision(), store.Snapshot().Revision())
	})

	t.Run("rejects invalid products without publishing", func(t *testing.T) {
		before := store.Snapshot()
		_, err := store.Replace([]domain.Product{{ID: 9, Name: "", Season: domain.SeasonDay}})
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
		assert.Same(t, before, store.Snapshot())
	})
}

func TestStore_ConcurrentReadersDuringReload(t *testing.T) {
	store := NewStore(&stubSource{products: sampleProducts()}, zerolog.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := store.Snapshot()
				n := snap.Len()
				assert.True(t, n == 0 || n == 2)
			}
		}()
	}
	for i := 0; i < 10; i++ {
		_, err := store.Reload(ctx)
		require.NoError(t, err)
	}
	wg.Wait()

	assert.Equal(t, uint64(10), store.Snapshot().Revision())
}
