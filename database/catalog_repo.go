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

// CatalogRepo persists the catalog document: remote store when available,
// local cache always. Loads prefer the remote copy and fall back to the
// cache on any remote failure; a clean remote miss means "no catalog yet".
type CatalogRepo struct {
	docs   *DocStore
	cache  *localcache.Store
	logger zerolog.Logger
}

func NewCatalogRepo(docs *DocStore, cache *localcache.Store) *CatalogRepo {
	return &CatalogRepo{
		docs:   docs,
		cache:  cache,
		logger: log.With().Str("repo", "catalog").Logger(),
	}
}

// Load returns the raw persisted catalog document. errs.ErrNotFound means
// no copy exists anywhere and the caller should generate a fresh catalog.
func (r *CatalogRepo) Load(ctx context.Context) ([]byte, error) {
	if r.docs == nil {
		return r.fromCache()
	}

	raw, err := r.docs.Get(ctx, CollectionAppData, DocCatalog)
	if err == nil {
		return raw, nil
	}
	if errs.IsNotFound(err) {
		return nil, errs.ErrNotFound
	}

	r.logger.Warn().Err(err).Msg("catalog load from document store failed, trying local cache")
	return r.fromCache()
}

// Save writes the whole catalog: cache first so the copy is never lost,
// then best-effort remote. Any save that never reaches the remote store,
// whether from a call failure or because no store is configured, comes back
// as errs.ErrCloudSaveFailed so callers report the copy as local-only; the
// state is already safe locally.
func (r *CatalogRepo) Save(ctx context.Context, c *models.CatalogData) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := r.cache.Set(CacheKeyCatalog, string(raw)); err != nil {
		r.logger.Error().Err(err).Msg("local cache write failed")
	}

	if r.docs == nil {
		return errs.ErrCloudSaveFailed
	}
	if err := r.docs.Set(ctx, CollectionAppData, DocCatalog, raw); err != nil {
		r.logger.Error().Err(err).Msg("catalog save to document store failed")
		return fmt.Errorf("%w: %v", errs.ErrCloudSaveFailed, err)
	}
	return nil
}

func (r *CatalogRepo) fromCache() ([]byte, error) {
	if v, ok := r.cache.Get(CacheKeyCatalog); ok {
		return []byte(v), nil
	}
	return nil, errs.ErrNotFound
}
