// Package catalog holds the core content logic: repairing persisted catalog
// documents into the current schema, ranking the library against a search
// query, and the pure transforms behind every admin edit.
package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/jamesfcoton/site-backend/models"
)

// legacyMovie decodes a movie while keeping the gallery raw, because older
// documents stored it as a plain string array. The shadowing field wins over
// the embedded Movie's gallery during decoding.
type legacyMovie struct {
	models.Movie
	RawGallery json.RawMessage `json:"gallery"`
}

type legacyCategory struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Movies []legacyMovie `json:"movies"`
}

// legacyCatalog shadows the section fields so their movies pass through the
// gallery migration; page-content fields decode through the embedded struct.
// Library is a pointer: absence (not emptiness) triggers the rebuild.
type legacyCatalog struct {
	models.CatalogData
	Library    *[]legacyMovie   `json:"library"`
	Highlight  *legacyMovie     `json:"highlight"`
	Top10      []legacyMovie    `json:"top10"`
	Categories []legacyCategory `json:"categories"`
}

// Normalize decodes a persisted catalog document and repairs older shapes:
// string-only galleries become typed gallery items, and a missing library is
// rebuilt from the movies reachable via highlight, top10, and categories.
// It never fails on any shape a previous version of this system persisted;
// an error means the document is not a JSON object at all.
func Normalize(raw []byte) (*models.CatalogData, error) {
	var legacy legacyCatalog
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, err
	}

	out := legacy.CatalogData

	if legacy.Highlight != nil {
		out.Highlight = legacy.Highlight.toMovie()
	}
	out.Top10 = toMovies(legacy.Top10)
	out.Categories = make([]models.Category, len(legacy.Categories))
	for i, c := range legacy.Categories {
		out.Categories[i] = models.Category{ID: c.ID, Title: c.Title, Movies: toMovies(c.Movies)}
	}

	if legacy.Library == nil {
		out.Library = rebuildLibrary(&out, legacy.Highlight != nil)
	} else {
		out.Library = toMovies(*legacy.Library)
	}

	return &out, nil
}

func toMovies(in []legacyMovie) []models.Movie {
	out := make([]models.Movie, len(in))
	for i, m := range in {
		out[i] = m.toMovie()
	}
	return out
}

// toMovie resolves the raw gallery. A non-empty array whose first element is
// a JSON string is the legacy shape; each string becomes an image item.
func (m legacyMovie) toMovie() models.Movie {
	out := m.Movie

	if len(m.RawGallery) == 0 || bytes.Equal(m.RawGallery, []byte("null")) {
		return out
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(m.RawGallery, &elems); err != nil {
		return out
	}
	if len(elems) > 0 && len(elems[0]) > 0 && elems[0][0] == '"' {
		gallery := make([]models.GalleryItem, 0, len(elems))
		for _, e := range elems {
			var url string
			if err := json.Unmarshal(e, &url); err != nil {
				continue
			}
			gallery = append(gallery, models.GalleryItem{URL: url, Type: models.MediaImage})
		}
		out.Gallery = gallery
		return out
	}

	var gallery []models.GalleryItem
	if err := json.Unmarshal(m.RawGallery, &gallery); err == nil {
		out.Gallery = gallery
	}
	return out
}

// rebuildLibrary collects every movie reachable from highlight, top10, and
// categories, in that order, deduplicated by id. A repeated id keeps its
// first position but takes the field values of the last occurrence.
func rebuildLibrary(c *models.CatalogData, hasHighlight bool) []models.Movie {
	var order []string
	byID := make(map[string]models.Movie)

	collect := func(m models.Movie) {
		if _, seen := byID[m.ID]; !seen {
			order = append(order, m.ID)
		}
		byID[m.ID] = m
	}

	if hasHighlight {
		collect(c.Highlight)
	}
	for _, m := range c.Top10 {
		collect(m)
	}
	for _, cat := range c.Categories {
		for _, m := range cat.Movies {
			collect(m)
		}
	}

	library := make([]models.Movie, 0, len(order))
	for _, id := range order {
		library = append(library, byID[id])
	}
	return library
}
