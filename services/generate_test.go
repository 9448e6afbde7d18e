package services

import (
	"context"
	"testing"
)

func TestGenerateWithoutKeyServesSample(t *testing.T) {
	gen := NewCatalogGenerator(context.Background(), "", "")
	c := gen.Generate(context.Background())
	if c == nil || len(c.Library) == 0 {
		t.Fatal("expected sample catalog")
	}
	if c.Highlight.Title == "" {
		t.Fatal("sample catalog has no highlight")
	}
}

func TestParseFencedOutput(t *testing.T) {
	gen := NewCatalogGenerator(context.Background(), "", "")
	out := "```json\n" + `{
		"highlight": {"id": "h1", "title": "ASHFALL", "genre": "Drama"},
		"top10": [{"id": "h1", "title": "ASHFALL", "genre": "Drama"}],
		"categories": [{"title": "Commercials", "movies": [{"id": "m2", "title": "NEON"}]}]
	}` + "\n```"

	c, err := gen.parse(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Highlight.ID != "h1" {
		t.Fatalf("highlight = %q", c.Highlight.ID)
	}
	// Library is derived from the sections, without duplicating h1.
	if len(c.Library) != 2 {
		t.Fatalf("library size = %d", len(c.Library))
	}
	if c.Categories[0].ID == "" {
		t.Fatal("category id not filled in")
	}
	if c.Library[1].ImageUrl == "" {
		t.Fatal("placeholder art not filled in")
	}
}

func TestParseRejectsUnusableOutput(t *testing.T) {
	gen := NewCatalogGenerator(context.Background(), "", "")
	for _, out := range []string{"", "not json", `{"top10": []}`} {
		if _, err := gen.parse(out); err == nil {
			t.Errorf("parse(%q) accepted", out)
		}
	}
}
