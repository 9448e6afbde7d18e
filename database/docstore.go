package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jamesfcoton/site-backend/errs"
)

// Document is one row of the document store: a JSON blob addressed by
// collection and doc id. The whole site lives in two documents.
type Document struct {
	Collection string         `json:"collection" gorm:"type:text;primaryKey;not null"`
	DocID      string         `json:"docId" gorm:"type:text;primaryKey;not null;column:doc_id"`
	Data       datatypes.JSON `json:"data" gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// DocStore is the remote document store gateway. A nil *DocStore is legal
// and means "not configured": repos then serve the local cache only.
type DocStore struct {
	db *gorm.DB
}

func NewDocStore(db *gorm.DB) *DocStore {
	if db == nil {
		return nil
	}
	return &DocStore{db}
}

// Migrate creates the documents table when it does not exist yet.
func (s *DocStore) Migrate() error {
	if s == nil {
		return nil
	}
	return s.db.AutoMigrate(&Document{})
}

// Get returns the raw JSON of a document, or errs.ErrNotFound.
func (s *DocStore) Get(ctx context.Context, collection, docID string) ([]byte, error) {
	if s == nil {
		return nil, errs.ErrStoreUnavailable
	}

	var doc Document
	err := s.db.WithContext(ctx).
		First(&doc, "collection = ? AND doc_id = ?", collection, docID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("document %s/%s: %w", collection, docID, errs.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Data), nil
}

// Set writes the whole document, replacing any previous version. Every save
// is a full overwrite; there is no merge.
func (s *DocStore) Set(ctx context.Context, collection, docID string, raw []byte) error {
	if s == nil {
		return errs.ErrStoreUnavailable
	}

	doc := Document{
		Collection: collection,
		DocID:      docID,
		Data:       datatypes.JSON(raw),
		UpdatedAt:  time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&doc).Error
}
