package catalog

import (
	"testing"

	"github.com/jamesfcoton/site-backend/models"
)

func TestNormalizeMigratesStringGalleries(t *testing.T) {
	raw := []byte(`{
		"highlight": {"id": "h1", "title": "Hero", "gallery": ["a.jpg", "b.jpg"]},
		"top10": [{"id": "m1", "title": "One", "gallery": ["c.jpg"]}],
		"categories": [{"id": "c1", "title": "Drama", "movies": [
			{"id": "m2", "title": "Two", "gallery": []}
		]}],
		"library": [{"id": "h1", "title": "Hero", "gallery": ["a.jpg", "b.jpg"]}]
	}`)

	c, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if got := c.Highlight.Gallery; len(got) != 2 {
		t.Fatalf("highlight gallery length = %d, want 2", len(got))
	}
	if c.Highlight.Gallery[0] != (models.GalleryItem{URL: "a.jpg", Type: "image"}) {
		t.Errorf("unexpected first gallery item: %+v", c.Highlight.Gallery[0])
	}
	if c.Top10[0].Gallery[0].URL != "c.jpg" || c.Top10[0].Gallery[0].Type != "image" {
		t.Errorf("top10 gallery not migrated: %+v", c.Top10[0].Gallery)
	}
	if len(c.Library) != 1 || len(c.Library[0].Gallery) != 2 {
		t.Errorf("library gallery not migrated: %+v", c.Library)
	}
}

func TestNormalizeKeepsTypedGalleries(t *testing.T) {
	raw := []byte(`{
		"highlight": {"id": "h1", "title": "Hero",
			"gallery": [{"url": "clip.mp4", "type": "video"}]},
		"top10": [], "categories": [], "library": []
	}`)

	c, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got := c.Highlight.Gallery[0]; got.Type != "video" || got.URL != "clip.mp4" {
		t.Errorf("typed gallery altered: %+v", got)
	}
}

func TestNormalizeRebuildsMissingLibrary(t *testing.T) {
	// m1 appears in top10 and again, with different fields, in a category.
	// The rebuilt entry must carry the later (category) field values while
	// keeping m1's first-seen position.
	raw := []byte(`{
		"highlight": {"id": "h1", "title": "Hero"},
		"top10": [
			{"id": "m1", "title": "Old Title", "year": 2020},
			{"id": "m2", "title": "Second"}
		],
		"categories": [{"id": "c1", "title": "Drama", "movies": [
			{"id": "m1", "title": "New Title", "year": 2024},
			{"id": "m3", "title": "Third"}
		]}]
	}`)

	c, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	ids := make([]string, len(c.Library))
	for i, m := range c.Library {
		ids[i] = m.ID
	}
	want := []string{"h1", "m1", "m2", "m3"}
	if len(ids) != len(want) {
		t.Fatalf("library ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("library ids = %v, want %v", ids, want)
		}
	}

	if c.Library[1].Title != "New Title" || c.Library[1].Year != 2024 {
		t.Errorf("duplicate id kept early values: %+v", c.Library[1])
	}
}

func TestNormalizePreservesExistingLibrary(t *testing.T) {
	// Library present: no rebuild, even though a section references an id
	// the library does not contain.
	raw := []byte(`{
		"highlight": {"id": "h1", "title": "Hero"},
		"top10": [], "categories": [],
		"library": [{"id": "solo", "title": "Solo"}]
	}`)

	c, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(c.Library) != 1 || c.Library[0].ID != "solo" {
		t.Errorf("library rebuilt unexpectedly: %+v", c.Library)
	}
}

func TestNormalizeEmptyLibraryIsNotAbsent(t *testing.T) {
	raw := []byte(`{
		"highlight": {"id": "h1", "title": "Hero"},
		"top10": [], "categories": [], "library": []
	}`)

	c, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(c.Library) != 0 {
		t.Errorf("empty library was rebuilt: %+v", c.Library)
	}
}

func TestNormalizeCarriesPageFields(t *testing.T) {
	raw := []byte(`{
		"highlight": {"id": "h1", "title": "Hero"},
		"top10": [], "categories": [], "library": [],
		"themeColor": "#CCFF00", "aboutText": "bio", "emailAgent": "a@b.c"
	}`)

	c, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if c.ThemeColor != "#CCFF00" || c.AboutText != "bio" || c.EmailAgent != "a@b.c" {
		t.Errorf("page fields lost: %+v", c)
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	if _, err := Normalize([]byte("not json at all")); err == nil {
		t.Fatal("expected error for unparseable document")
	}
}
