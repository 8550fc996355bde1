package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultCategoryMappingTTL applies when cache_ttls.category_mapping is unset or invalid.
const DefaultCategoryMappingTTL = 5 * time.Minute

// CategoryService defines the interface for category-related operations
type CategoryService interface {
	// ListCategories returns the category mapping, or a NotFound error when no category exists.
	ListCategories(ctx context.Context) (domain.CategoryMapping, error)

	// Mapping returns the category mapping, possibly empty.
	Mapping(ctx context.Context) (domain.CategoryMapping, error)
}

type categoryService struct {
	store domain.Store
	cache domain.Cache // nil when caching is disabled
	ttl   time.Duration
	group singleflight.Group
}

// NewCategoryService creates a CategoryService. Pass a nil cache to always read the database.
func NewCategoryService(store domain.Store, cache domain.Cache, ttl time.Duration) CategoryService {
	return &categoryService{
		store: store,
		cache: cache,
		ttl:   ttl,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) (mapping domain.CategoryMapping, err error) {
	ctx, span := startSpan(ctx, "CategoryService.ListCategories")
	defer func() { endSpan(span, err) }()

	mapping, err = s.Mapping(ctx)
	if err != nil {
		return nil, err
	}
	if len(mapping) == 0 {
		return nil, domain.NewNotFoundError("no categories found", domain.ErrCategoryNotFound)
	}
	return mapping, nil
}

func (s *categoryService) Mapping(ctx context.Context) (domain.CategoryMapping, error) {
	key := cache.CategoryMappingKey()

	if mapping, ok := s.fromCache(ctx, key); ok {
		return mapping, nil
	}

	// Concurrent misses share one database read, which is not cancelled with
	// the request that started it.
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		flightCtx := context.WithoutCancel(ctx)
		categories, err := s.store.Categories().List(flightCtx)
		if err != nil {
			return nil, err
		}
		mapping := domain.NewCategoryMapping(categories)
		s.toCache(flightCtx, key, mapping)
		return mapping, nil
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}
	return v.(domain.CategoryMapping), nil
}

func (s *categoryService) fromCache(ctx context.Context, key string) (domain.CategoryMapping, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("CategoryService: cache read failed, falling back to database",
				zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var byString map[string]string
	if err := json.Unmarshal([]byte(raw), &byString); err != nil {
		logger.Get().Warn("CategoryService: discarding undecodable cache entry",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}

	mapping := make(domain.CategoryMapping, len(byString))
	for id, label := range byString {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, false
		}
		mapping[n] = label
	}
	return mapping, true
}

// toCache stores non-empty mappings only, so categories seeded later show up immediately.
func (s *categoryService) toCache(ctx context.Context, key string, mapping domain.CategoryMapping) {
	if s.cache == nil || len(mapping) == 0 {
		return
	}
	raw, err := json.Marshal(mapping.StringKeys())
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		logger.Get().Warn("CategoryService: cache write failed", zap.String("key", key), zap.Error(err))
	}
}
