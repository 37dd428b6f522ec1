package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are opaque encoded bytes so memory and Redis backends are interchangeable.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogSource loads the full product list from somewhere
type CatalogSource interface {
	Load(ctx context.Context) ([]Product, error)
	Describe() string
}

// CatalogProvider hands out the current catalog snapshot
type CatalogProvider interface {
	Snapshot() *Catalog
}
