package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound is returned when a tracking number matches no order
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidProduct is returned when a catalog record fails validation
	ErrInvalidProduct = errors.New("invalid product")

	// ErrDuplicateProduct is returned when two catalog records share an id
	ErrDuplicateProduct = errors.New("duplicate product id")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrCatalogUnavailable is returned when a catalog source cannot be read
	ErrCatalogUnavailable = errors.New("catalog source unavailable")
)
