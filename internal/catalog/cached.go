package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prism-rei/vocatag/internal/domain"
	"github.com/prism-rei/vocatag/internal/store"
)

type Cache interface {
	GetCache(key string) ([]byte, error)
	SetCache(key string, data []byte, ttl time.Duration) error
	ClearCache() error
}

// CachedProvider wraps a Provider with a byte cache. Keys are prefixed
// with the catalog name so several catalogs can share one cache table.
type CachedProvider struct {
	provider Provider
	cache    Cache
	catalog  string
	cacheTTL time.Duration
}

func NewCachedProvider(provider Provider, cache Cache, catalog string, cacheTTL time.Duration) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
		catalog:  catalog,
		cacheTTL: cacheTTL,
	}
}

func (c *CachedProvider) GetAlbum(ctx context.Context, id string) (*domain.Album, error) {
	cacheKey := fmt.Sprintf("%s:album:%s", c.catalog, id)

	data, err := c.cache.GetCache(cacheKey)
	if err != nil {
		return nil, err
	}
	if data != nil {
		var album domain.Album
		if err := json.Unmarshal(data, &album); err == nil {
			return &album, nil
		}
	}

	album, err := c.provider.GetAlbum(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(album); err == nil {
		c.cache.SetCache(cacheKey, data, c.cacheTTL)
	}

	return album, nil
}

func (c *CachedProvider) GetSong(ctx context.Context, id string) (*domain.Track, error) {
	cacheKey := fmt.Sprintf("%s:song:%s", c.catalog, id)

	data, err := c.cache.GetCache(cacheKey)
	if err != nil {
		return nil, err
	}
	if data != nil {
		var track domain.Track
		if err := json.Unmarshal(data, &track); err == nil {
			return &track, nil
		}
	}

	track, err := c.provider.GetSong(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(track); err == nil {
		c.cache.SetCache(cacheKey, data, c.cacheTTL)
	}

	return track, nil
}

func (c *CachedProvider) SearchAlbums(ctx context.Context, query string) ([]domain.Album, error) {
	cacheKey := fmt.Sprintf("%s:search:album:%s", c.catalog, query)

	data, err := c.cache.GetCache(cacheKey)
	if err != nil {
		return nil, err
	}
	if data != nil {
		var albums []domain.Album
		if err := json.Unmarshal(data, &albums); err == nil {
			return albums, nil
		}
	}

	albums, err := c.provider.SearchAlbums(ctx, query)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(albums); err == nil {
		c.cache.SetCache(cacheKey, data, c.cacheTTL)
	}

	return albums, nil
}

func (c *CachedProvider) SearchSongs(ctx context.Context, query string) ([]domain.Track, error) {
	cacheKey := fmt.Sprintf("%s:search:song:%s", c.catalog, query)

	data, err := c.cache.GetCache(cacheKey)
	if err != nil {
		return nil, err
	}
	if data != nil {
		var tracks []domain.Track
		if err := json.Unmarshal(data, &tracks); err == nil {
			return tracks, nil
		}
	}

	tracks, err := c.provider.SearchSongs(ctx, query)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tracks); err == nil {
		c.cache.SetCache(cacheKey, data, c.cacheTTL)
	}

	return tracks, nil
}

func (c *CachedProvider) ClearCache() error {
	return c.cache.ClearCache()
}

var _ Provider = (*CachedProvider)(nil)

type storeCache struct {
	store *store.DB
}

// NewStoreCache adapts the sqlite store to the Cache interface.
func NewStoreCache(db *store.DB) Cache {
	return &storeCache{store: db}
}

func (s *storeCache) GetCache(key string) ([]byte, error) {
	return s.store.GetCache(key)
}

func (s *storeCache) SetCache(key string, data []byte, ttl time.Duration) error {
	return s.store.SetCache(key, data, ttl)
}

func (s *storeCache) ClearCache() error {
	return s.store.ClearCache()
}

var _ Cache = (*storeCache)(nil)
