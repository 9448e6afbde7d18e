package content

import (
	"context"
	"testing"

	"github.com/jamesfcoton/site-backend/catalog"
	"github.com/jamesfcoton/site-backend/database"
	"github.com/jamesfcoton/site-backend/localcache"
	"github.com/jamesfcoton/site-backend/models"
	"github.com/jamesfcoton/site-backend/services"
)

// newService wires a cache-only service: no postgres, no LLM key.
func newService(t *testing.T) (*Service, *localcache.Store) {
	t.Helper()
	cache, err := localcache.New(t.TempDir())
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	db := database.New(nil, cache)
	gen := services.NewCatalogGenerator(context.Background(), "", "")
	return NewService(db, cache, gen, "changeme"), cache
}

func TestLoadSeedsFreshState(t *testing.T) {
	svc, cache := newService(t)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	c := svc.Catalog()
	if len(c.Library) == 0 {
		t.Fatal("expected generated library")
	}
	if got := len(svc.Marquee()); got != 5 {
		t.Fatalf("marquee entries = %d, want 5", got)
	}

	// Both documents landed in the local cache.
	if _, ok := cache.Get(database.CacheKeyCatalog); !ok {
		t.Fatal("catalog not cached")
	}
	if _, ok := cache.Get(database.CacheKeyMarquee); !ok {
		t.Fatal("marquee not cached")
	}
}

func TestLoadPrefersStoredCatalog(t *testing.T) {
	svc, cache := newService(t)
	stored := `{
		"library": [{"id": "m1", "title": "STORED FILM"}],
		"highlight": {"id": "m1", "title": "STORED FILM"},
		"top10": [], "categories": []
	}`
	if err := cache.Set(database.CacheKeyCatalog, stored); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	c := svc.Catalog()
	if len(c.Library) != 1 || c.Library[0].Title != "STORED FILM" {
		t.Fatalf("library = %+v", c.Library)
	}
}

func TestApplyPersistsMutation(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	before := len(svc.Catalog().Library)
	cloudOK, err := svc.Apply(context.Background(), func(c *models.CatalogData) (*models.CatalogData, error) {
		next, _ := catalog.CreateProject(c)
		return next, nil
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	// No remote store configured, so the save is local-only.
	if cloudOK {
		t.Fatal("cloudOK = true without a remote store")
	}
	if got := len(svc.Catalog().Library); got != before+1 {
		t.Fatalf("library size = %d, want %d", got, before+1)
	}

	// A second service over the same cache sees the change.
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := len(svc.Catalog().Library); got != before+1 {
		t.Fatalf("library size after reload = %d", got)
	}
}

func TestApplyFailureLeavesStateUntouched(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	before := svc.Catalog()
	_, err := svc.Apply(context.Background(), func(c *models.CatalogData) (*models.CatalogData, error) {
		return catalog.SaveProject(c, models.Movie{ID: "nope", Title: "X"})
	})
	if err == nil {
		t.Fatal("expected mutation error")
	}
	after := svc.Catalog()
	if len(after.Library) != len(before.Library) {
		t.Fatal("failed mutation changed state")
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	c := svc.Catalog()
	c.Library[0].Title = "TAMPERED"
	if svc.Catalog().Library[0].Title == "TAMPERED" {
		t.Fatal("Catalog() aliases internal state")
	}
}

func TestMarqueeMutations(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	item, _, err := svc.AddMarquee(context.Background(), "NEW BANNER", "/news")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ID == "" || item.Text != "NEW BANNER" {
		t.Fatalf("item = %+v", item)
	}
	if got := len(svc.Marquee()); got != 6 {
		t.Fatalf("marquee size = %d", got)
	}

	if _, err := svc.RemoveMarquee(context.Background(), item.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(svc.Marquee()); got != 5 {
		t.Fatalf("marquee size after remove = %d", got)
	}
}

func TestPasswordOverride(t *testing.T) {
	svc, _ := newService(t)

	if !svc.CheckPassword("changeme") {
		t.Fatal("default password rejected")
	}
	if svc.CheckPassword("wrong") {
		t.Fatal("wrong password accepted")
	}

	if err := svc.UpdatePassword("wrong", "next-pass"); err == nil {
		t.Fatal("update with wrong current password accepted")
	}
	if err := svc.UpdatePassword("changeme", "abc"); err == nil {
		t.Fatal("short password accepted")
	}
	if err := svc.UpdatePassword("changeme", "next-pass"); err != nil {
		t.Fatalf("update: %v", err)
	}

	if svc.CheckPassword("changeme") {
		t.Fatal("old password still accepted")
	}
	if !svc.CheckPassword("next-pass") {
		t.Fatal("new password rejected")
	}
}
