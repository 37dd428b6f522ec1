package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aromax/storefront/internal/domain"
	"github.com/rs/zerolog"
)

// Store holds the live catalog snapshot. Readers never block; a reload
// builds a new snapshot and swaps it in whole.
type Store struct {
	source   domain.CatalogSource
	current  atomic.Pointer[domain.Catalog]
	revision atomic.Uint64
	reloadMu sync.Mutex
	loadedAt atomic.Int64
	logger   zerolog.Logger
}

// NewStore creates a store backed by source, starting with an empty catalog
func NewStore(source domain.CatalogSource, logger zerolog.Logger) *Store {
	s := &Store{
		source: source,
		logger: logger,
	}
	s.current.Store(domain.EmptyCatalog())
	return s
}

// Snapshot returns the current catalog
func (s *Store) Snapshot() *domain.Catalog {
	return s.current.Load()
}

// LoadedAt returns when the current snapshot was published, zero if never
func (s *Store) LoadedAt() time.Time {
	ns := s.loadedAt.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

// Source describes where reloads read from
func (s *Store) Source() string {
	if s.source == nil {
		return "none"
	}
	return s.source.Describe()
}

// Replace publishes products as a new snapshot after validating them
func (s *Store) Replace(products []domain.Product) (*domain.Catalog, error) {
	if err := domain.ValidateProducts(products); err != nil {
		return nil, err
	}
	return s.publish(products), nil
}

// Reload reads the source and publishes the result.
// On failure the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) (*domain.Catalog, error) {
	if s.source == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	products, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("source", s.source.Describe()).Msg("catalog reload failed")
		return nil, err
	}

	snapshot := s.publish(products)
	s.logger.Info().
		Str("source", s.source.Describe()).
		Int("products", snapshot.Len()).
		Uint64("revision", snapshot.Revision()).
		Msg("catalog loaded")
	return snapshot, nil
}

// Poll reloads every interval until ctx is done. Failures are logged and
// the loop keeps going.
func (s *Store) Poll(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.Reload(ctx)
		}
	}
}

func (s *Store) publish(products []domain.Product) *domain.Catalog {
	rev := s.revision.Add(1)
	snapshot := domain.NewCatalog(products).WithRevision(rev)
	s.current.Store(snapshot)
	s.loadedAt.Store(time.Now().UnixNano())
	return snapshot
}
