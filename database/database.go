package database

import (
	"gorm.io/gorm"

	"github.com/jamesfcoton/site-backend/localcache"
)

// Collection and document ids of the two documents this site persists.
const (
	CollectionAppData = "app_data"
	DocCatalog        = "catalog"
	DocMarquee        = "marquee"
)

// Local cache keys, shared with the original site so an existing on-device
// copy keeps working.
const (
	CacheKeyCatalog  = "jamesfcoton_catalog"
	CacheKeyMarquee  = "jamesfcoton_marquee"
	CacheKeyPassword = "jamesfcoton_password"
)

type Database struct {
	docStore    *DocStore
	catalogRepo *CatalogRepo
	marqueeRepo *MarqueeRepo
}

// New initializes the repositories over a shared document store and local
// cache. db may be nil when postgres is unconfigured; everything then runs
// cache-only.
func New(db *gorm.DB, cache *localcache.Store) Database {
	docs := NewDocStore(db)
	return Database{
		docStore:    docs,
		catalogRepo: NewCatalogRepo(docs, cache),
		marqueeRepo: NewMarqueeRepo(docs, cache),
	}
}

func (d Database) DocStore() *DocStore {
	return d.docStore
}

func (d Database) CatalogRepo() *CatalogRepo {
	return d.catalogRepo
}

func (d Database) MarqueeRepo() *MarqueeRepo {
	return d.marqueeRepo
}

// Migrate prepares the document table; a nil store is a no-op.
func (d Database) Migrate() error {
	return d.docStore.Migrate()
}
