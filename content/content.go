// Package content owns the in-memory site state and its write-through
// persistence. All reads hand out copies; all writes go through Apply so
// the catalog is mutated and persisted under one lock.
package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamesfcoton/site-backend/catalog"
	"github.com/jamesfcoton/site-backend/database"
	"github.com/jamesfcoton/site-backend/errs"
	"github.com/jamesfcoton/site-backend/localcache"
	"github.com/jamesfcoton/site-backend/models"
	"github.com/jamesfcoton/site-backend/services"
)

type Service struct {
	mu      sync.RWMutex
	catalog *models.CatalogData
	marquee []models.MarqueeItem

	db              database.Database
	cache           *localcache.Store
	generator       *services.CatalogGenerator
	defaultPassword string
	logger          zerolog.Logger
}

func NewService(db database.Database, cache *localcache.Store, generator *services.CatalogGenerator, defaultPassword string) *Service {
	return &Service{
		db:              db,
		cache:           cache,
		generator:       generator,
		defaultPassword: defaultPassword,
		logger:          log.With().Str("service", "content").Logger(),
	}
}

// Load brings the catalog and marquee into memory. A missing or unreadable
// catalog is replaced by a freshly generated one, which is persisted right
// away; a missing marquee gets the default banner.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.db.CatalogRepo().Load(ctx)
	switch {
	case err == nil:
		c, nerr := catalog.Normalize(raw)
		if nerr != nil {
			s.logger.Warn().Err(nerr).Msg("stored catalog unreadable, generating a fresh one")
			c = s.generator.Generate(ctx)
		}
		s.catalog = c
	case errors.Is(err, errs.ErrNotFound):
		s.logger.Info().Msg("no stored catalog, generating a fresh one")
		s.catalog = s.generator.Generate(ctx)
	default:
		return fmt.Errorf("load catalog: %w", err)
	}

	// Persist the normalized shape so legacy documents converge.
	if serr := s.db.CatalogRepo().Save(ctx, s.catalog); serr != nil && !errors.Is(serr, errs.ErrCloudSaveFailed) {
		return fmt.Errorf("persist catalog: %w", serr)
	}

	items, err := s.db.MarqueeRepo().Load(ctx)
	if errors.Is(err, errs.ErrNotFound) {
		items = models.DefaultMarquee()
		if serr := s.db.MarqueeRepo().Save(ctx, items); serr != nil && !errors.Is(serr, errs.ErrCloudSaveFailed) {
			return fmt.Errorf("persist default marquee: %w", serr)
		}
	} else if err != nil {
		return fmt.Errorf("load marquee: %w", err)
	}
	s.marquee = items
	return nil
}

// Catalog returns a deep copy of the current catalog.
func (s *Service) Catalog() models.CatalogData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone()
}

// Search ranks the library against the query.
func (s *Service) Search(query string) []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Rank(s.catalog.Library, query)
}

// Apply runs one transform over the current catalog and, when it succeeds,
// installs and persists the result. Transforms never modify their input;
// they return the next catalog built from a deep copy. cloudOK reports
// whether the remote save went through; false means the change is
// local-only.
func (s *Service) Apply(ctx context.Context, mutate func(*models.CatalogData) (*models.CatalogData, error)) (cloudOK bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := mutate(s.catalog)
	if err != nil {
		return false, err
	}
	s.catalog = next

	if err := s.db.CatalogRepo().Save(ctx, next); err != nil {
		if errors.Is(err, errs.ErrCloudSaveFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Marquee returns a copy of the current marquee items.
func (s *Service) Marquee() []models.MarqueeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MarqueeItem, len(s.marquee))
	copy(out, s.marquee)
	return out
}

// AddMarquee appends one banner entry and persists the list.
func (s *Service) AddMarquee(ctx context.Context, text, link string) (models.MarqueeItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, item := catalog.AppendMarquee(s.marquee, text, link)
	s.marquee = next
	cloudOK, err := s.saveMarquee(ctx)
	return item, cloudOK, err
}

// RemoveMarquee deletes one banner entry by id and persists the list.
func (s *Service) RemoveMarquee(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.marquee = catalog.RemoveMarquee(s.marquee, id)
	return s.saveMarquee(ctx)
}

func (s *Service) saveMarquee(ctx context.Context) (cloudOK bool, err error) {
	if err := s.db.MarqueeRepo().Save(ctx, s.marquee); err != nil {
		if errors.Is(err, errs.ErrCloudSaveFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckPassword compares against the admin password: an override stored on
// this device wins, otherwise the configured default applies.
func (s *Service) CheckPassword(password string) bool {
	if override, ok := s.cache.Get(database.CacheKeyPassword); ok {
		return password == override
	}
	return password != "" && password == s.defaultPassword
}

// UpdatePassword replaces the admin password on this device.
func (s *Service) UpdatePassword(current, next string) error {
	if !s.CheckPassword(current) {
		return errs.NewUnauthorizedError("current password is incorrect")
	}
	if len(next) < 4 {
		return errs.NewInvalidFieldError("newPassword", "must be at least 4 characters")
	}
	if err := s.cache.Set(database.CacheKeyPassword, next); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}
