package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamesfcoton/site-backend/errs"
	"github.com/jamesfcoton/site-backend/localcache"
	"github.com/jamesfcoton/site-backend/models"
)

// marqueeDoc is the wire shape of the marquee document.
type marqueeDoc struct {
	Items []models.MarqueeItem `json:"items"`
}

// MarqueeRepo persists the marquee list as its own document, with the same
// cache-first write and cache fallback as the catalog.
type MarqueeRepo struct {
	docs   *DocStore
	cache  *localcache.Store
	logger zerolog.Logger
}

func NewMarqueeRepo(docs *DocStore, cache *localcache.Store) *MarqueeRepo {
	return &MarqueeRepo{
		docs:   docs,
		cache:  cache,
		logger: log.With().Str("repo", "marquee").Logger(),
	}
}

// Load returns the persisted marquee items, or errs.ErrNotFound when no
// copy exists; the caller then seeds the default banner.
func (r *MarqueeRepo) Load(ctx context.Context) ([]models.MarqueeItem, error) {
	if r.docs == nil {
		return r.fromCache()
	}

	raw, err := r.docs.Get(ctx, CollectionAppData, DocMarquee)
	if err == nil {
		var doc marqueeDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			r.logger.Warn().Err(err).Msg("malformed marquee document, treating as absent")
			return nil, errs.ErrNotFound
		}
		return doc.Items, nil
	}
	if errs.IsNotFound(err) {
		return r.fromCache()
	}

	r.logger.Warn().Err(err).Msg("marquee load from document store failed, trying local cache")
	return r.fromCache()
}

func (r *MarqueeRepo) Save(ctx context.Context, items []models.MarqueeItem) error {
	rawItems, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal marquee: %w", err)
	}
	if err := r.cache.Set(CacheKeyMarquee, string(rawItems)); err != nil {
		r.logger.Error().Err(err).Msg("local cache write failed")
	}

	if r.docs == nil {
		return errs.ErrCloudSaveFailed
	}
	raw, err := json.Marshal(marqueeDoc{Items: items})
	if err != nil {
		return fmt.Errorf("marshal marquee document: %w", err)
	}
	if err := r.docs.Set(ctx, CollectionAppData, DocMarquee, raw); err != nil {
		r.logger.Error().Err(err).Msg("marquee save to document store failed")
		return fmt.Errorf("%w: %v", errs.ErrCloudSaveFailed, err)
	}
	return nil
}

func (r *MarqueeRepo) fromCache() ([]models.MarqueeItem, error) {
	v, ok := r.cache.Get(CacheKeyMarquee)
	if !ok {
		return nil, errs.ErrNotFound
	}
	var items []models.MarqueeItem
	if err := json.Unmarshal([]byte(v), &items); err != nil {
		return nil, errs.ErrNotFound
	}
	return items, nil
}
