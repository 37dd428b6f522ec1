package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aromax/storefront/internal/domain"
	"github.com/rs/zerolog"
)

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// SearchService answers catalog queries against the current snapshot,
// caching filter results per catalog revision.
type SearchService struct {
	catalog   domain.CatalogProvider
	cache     domain.CacheRepository
	parser    *QueryParser
	filter    *CatalogFilter
	suggester *SuggestionGenerator
	speller   *SpellingSuggester
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

// NewSearchService creates a new search service with dependencies.
// cache may be nil to disable result caching.
func NewSearchService(
	catalog domain.CatalogProvider,
	cache domain.CacheRepository,
	logger zerolog.Logger,
	config SearchServiceConfig,
) *SearchService {
	parser := NewQueryParser(logger, config.EnableDebugLogging)

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	return &SearchService{
		catalog:   catalog,
		cache:     cache,
		parser:    parser,
		filter:    NewCatalogFilter(parser, logger, config.EnableDebugLogging),
		suggester: NewSuggestionGenerator(),
		speller:   NewSpellingSuggester(),
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Search runs query against the current catalog.
// Flow: snapshot -> check cache -> filter -> spelling hint -> cache -> return
func (s *SearchService) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := s.catalog.Snapshot()
	cacheKey := generateCacheKey(snapshot.Fingerprint(), query)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		cached.Query = query
		cached.Source = "cache"
		cached.CatalogRevision = snapshot.Revision()
		return cached, nil
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("key", cacheKey).Msg("cache read failed")
	}

	products, filter := s.filter.SearchWithFilter(query, snapshot)
	result := &domain.SearchResult{
		Query:           query,
		Filter:          filter,
		Products:        products,
		Count:           len(products),
		Source:          "catalog",
		CatalogRevision: snapshot.Revision(),
	}
	if result.Count == 0 {
		result.DidYouMean = s.speller.Suggest(query, snapshot)
	}

	if err := s.setInCache(ctx, cacheKey, result); err != nil {
		s.logger.Warn().Err(err).Str("key", cacheKey).Msg("cache write failed")
	}

	return result, nil
}

// ParseQuery exposes the structured filter for a query
func (s *SearchService) ParseQuery(ctx context.Context, query string) (domain.ParsedFilter, error) {
	if err := ctx.Err(); err != nil {
		return domain.ParsedFilter{}, err
	}
	return s.parser.ParseQuery(query, s.catalog.Snapshot()), nil
}

// Suggestions returns the canned suggestion prompts for the current catalog
func (s *SearchService) Suggestions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.suggester.GenerateSuggestions(s.catalog.Snapshot()), nil
}

// Recommendations returns contextual hint lines for query
func (s *SearchService) Recommendations(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.suggester.ContextualRecommendations(query, s.catalog.Snapshot()), nil
}

// Products lists the current catalog
func (s *SearchService) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Snapshot().Products(), nil
}

// Product looks up a single product by id
func (s *SearchService) Product(ctx context.Context, id int) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := s.catalog.Snapshot().Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrProductNotFound, id)
	}
	return &p, nil
}

// generateCacheKey creates a cache key for a query against one catalog content.
// Format: "search:{catalog fingerprint}:{lowercased query}"
// The fingerprint, not the revision, goes in the key: revisions restart in
// every process while a Redis cache outlives and is shared between them.
// Matching is case-insensitive throughout, but surrounding whitespace can
// change the fallback substring check, so the query is not trimmed.
func generateCacheKey(fingerprint, query string) string {
	return fmt.Sprintf("search:%s:%s", fingerprint, strings.ToLower(query))
}

// getFromCache retrieves a search result from cache
func (s *SearchService) getFromCache(ctx context.Context, key string) (*domain.SearchResult, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: corrupt entry: %v", domain.ErrCacheUnavailable, err)
	}
	return &result, nil
}

// setInCache stores a search result in cache
func (s *SearchService) setInCache(ctx context.Context, key string, result *domain.SearchResult) error {
	if s.cache == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}
